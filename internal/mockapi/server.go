package mockapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mertsakar/wantmart/internal/logging"
)

// Server is the mock marketplace backend.
type Server struct {
	db     *gorm.DB
	secret []byte
	log    logging.Logger
}

// New builds the echo instance with every route of the marketplace
// contract registered.
func New(db *gorm.DB, secret []byte, log logging.Logger) (*Server, *echo.Echo) {
	s := &Server{db: db, secret: secret, log: log}

	e := echo.New()
	e.HideBanner = true

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/api/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/verify-email", s.VerifyEmail)
	auth.POST("/resend-verification", s.ResendVerification)

	e.GET("/products", s.ListProducts)
	e.GET("/products/:id", s.GetProduct)

	private := e.Group("")
	private.Use(s.requireAuth)
	private.POST("/products", s.CreateProduct)
	private.PUT("/products/:id", s.UpdateProduct)
	private.POST("/offer/create/:productId", s.CreateOffer)
	private.GET("/offer/user/:ownerId", s.ListOffersForOwner)

	return s, e
}

// requireAuth rejects requests without a valid bearer token and stores
// the caller's user id in the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return fail(c, http.StatusUnauthorized, "authentication required")
		}
		userID, err := parseToken(strings.TrimPrefix(header, "Bearer "), s.secret)
		if err != nil {
			return fail(c, http.StatusUnauthorized, "invalid token")
		}
		c.Set("userID", userID)
		return next(c)
	}
}

func callerID(c echo.Context) string {
	id, _ := c.Get("userID").(string)
	return id
}

// ok and fail write the {success, message?, data?} envelope every route
// uses.
func ok(c echo.Context, status int, message string, data any) error {
	body := echo.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(status, body)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}
