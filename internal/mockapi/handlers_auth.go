package mockapi

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   struct {
		CityName     string `json:"cityName"`
		CountyName   string `json:"countyName"`
		DistrictName string `json:"districtName"`
		AddressText  string `json:"addressText"`
	} `json:"address"`
}

// userDTO is the wire shape of a user, token included when freshly
// authenticated.
type userDTO struct {
	ID             string   `json:"_id"`
	Email          string   `json:"email"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Addresses      []string `json:"addresses"`
	DefaultAddress string   `json:"defaultAddress"`
	IsSeller       bool     `json:"isSeller"`
	IsVerified     bool     `json:"isVerified"`
	Token          string   `json:"token,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

const timeLayout = "2006-01-02 15:04:05"

func toUserDTO(u *User, token string) userDTO {
	return userDTO{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Addresses:  []string{},
		IsSeller:   u.IsSeller,
		IsVerified: u.IsVerified,
		Token:      token,
		CreatedAt:  u.CreatedAt.Format(timeLayout),
		UpdatedAt:  u.UpdatedAt.Format(timeLayout),
	}
}

func newVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func (s *Server) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := s.log.With("handler", "auth_register")

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	var existing User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fail(c, http.StatusConflict, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error(ctx, "hash_failed", "error", err)
		return fail(c, http.StatusInternalServerError, "could not create account")
	}

	user := User{
		ID:               uuid.NewString(),
		Email:            req.Email,
		PasswordHash:     string(hash),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		CityName:         req.Address.CityName,
		CountyName:       req.Address.CountyName,
		DistrictName:     req.Address.DistrictName,
		AddressText:      req.Address.AddressText,
		VerificationCode: newVerificationCode(),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		l.Error(ctx, "create_failed", "error", err)
		return fail(c, http.StatusInternalServerError, "could not create account")
	}

	// There is no real mailer here; the code lands in the server log.
	l.Info(ctx, "verification_code_issued", "email", user.Email, "code", user.VerificationCode)

	return ok(c, http.StatusCreated, "Verification code sent to your email", toUserDTO(&user, ""))
}

func (s *Server) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := s.log.With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	var user User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "invalid email or password")
	}

	token, err := issueToken(&user, s.secret)
	if err != nil {
		l.Error(ctx, "token_failed", "error", err)
		return fail(c, http.StatusInternalServerError, "could not log in")
	}

	l.Info(ctx, "login_successful", "user_id", user.ID)
	return ok(c, http.StatusOK, "", toUserDTO(&user, token))
}

func (s *Server) VerifyEmail(c echo.Context) error {
	ctx := c.Request().Context()
	l := s.log.With("handler", "auth_verify")

	var req struct {
		UserID string `json:"userId"`
		Code   string `json:"verificationCode"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	var user User
	if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		return fail(c, http.StatusNotFound, "user not found")
	}
	if user.VerificationCode == "" || user.VerificationCode != req.Code {
		return fail(c, http.StatusBadRequest, "invalid verification code")
	}

	user.IsVerified = true
	user.VerificationCode = ""
	user.UpdatedAt = time.Now()
	if err := s.db.Save(&user).Error; err != nil {
		l.Error(ctx, "save_failed", "error", err)
		return fail(c, http.StatusInternalServerError, "could not verify email")
	}

	token, err := issueToken(&user, s.secret)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not verify email")
	}

	l.Info(ctx, "email_verified", "user_id", user.ID)
	return ok(c, http.StatusOK, "Email verified successfully", toUserDTO(&user, token))
}

func (s *Server) ResendVerification(c echo.Context) error {
	ctx := c.Request().Context()
	l := s.log.With("handler", "auth_resend")

	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	var user User
	if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		return fail(c, http.StatusNotFound, "user not found")
	}
	if user.IsVerified {
		return fail(c, http.StatusBadRequest, "account is already verified")
	}

	user.VerificationCode = newVerificationCode()
	user.UpdatedAt = time.Now()
	if err := s.db.Save(&user).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "could not resend code")
	}

	l.Info(ctx, "verification_code_issued", "email", user.Email, "code", user.VerificationCode)
	return ok(c, http.StatusOK, "Verification code resent", nil)
}
