package mockapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type offerDTO struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	User      ownerDTO `json:"user"`
	Amount    float64  `json:"amount"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
}

func (s *Server) toOfferDTO(o *Offer) offerDTO {
	var bidder User
	username := ""
	if err := s.db.First(&bidder, "id = ?", o.UserID).Error; err == nil {
		username = bidder.FirstName + " " + bidder.LastName
	}

	return offerDTO{
		ID:        o.ID,
		ProductID: o.ProductID,
		User:      ownerDTO{ID: o.UserID, Username: username},
		Amount:    o.Amount,
		Status:    o.Status,
		CreatedAt: o.CreatedAt.Format(timeLayout),
	}
}

func (s *Server) CreateOffer(c echo.Context) error {
	ctx := c.Request().Context()
	l := s.log.With("handler", "offer_create")

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Amount <= 0 {
		return fail(c, http.StatusBadRequest, "offer amount must be positive")
	}

	var product Product
	if err := s.db.First(&product, "id = ?", c.Param("productId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "product not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load product")
	}
	if product.OwnerID == callerID(c) {
		return fail(c, http.StatusForbidden, "you cannot make an offer on your own request")
	}

	offer := Offer{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		UserID:    callerID(c),
		Amount:    req.Amount,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&offer).Error; err != nil {
		l.Error(ctx, "create_failed", "error", err)
		return fail(c, http.StatusInternalServerError, "could not create offer")
	}

	l.Info(ctx, "offer_created", "offer_id", offer.ID, "product_id", product.ID)
	return ok(c, http.StatusCreated, "", s.toOfferDTO(&offer))
}

// ListOffersForOwner returns every offer made against the given owner's
// requests, newest first. The listing is keyed by owner, not by product,
// matching the contract the storefront consumes.
func (s *Server) ListOffersForOwner(c echo.Context) error {
	ownerID := c.Param("ownerId")

	var offers []Offer
	err := s.db.
		Joins("JOIN products ON products.id = offers.product_id").
		Where("products.owner_id = ?", ownerID).
		Order("offers.created_at DESC").
		Find(&offers).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not load offers")
	}

	dtos := make([]offerDTO, 0, len(offers))
	for i := range offers {
		dtos = append(dtos, s.toOfferDTO(&offers[i]))
	}
	return ok(c, http.StatusOK, "", dtos)
}
