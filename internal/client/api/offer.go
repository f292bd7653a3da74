package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mertsakar/wantmart/internal/client/models"
)

type offerResponse struct {
	Success bool          `json:"success"`
	Data    *models.Offer `json:"data"`
}

type offerListResponse struct {
	Success bool           `json:"success"`
	Data    []models.Offer `json:"data"`
}

// OfferClient talks to the offer backend. Both operations require a live
// credential and fail fast without one.
type OfferClient struct {
	base *baseClient
}

func NewOfferClient(baseURL string, tokens *TokenHolder) *OfferClient {
	return &OfferClient{base: newBaseClient(baseURL, tokens)}
}

// CreateOffer submits an offer of the given amount against a product
// request. The amount travels in the body, the product id in the path.
func (c *OfferClient) CreateOffer(ctx context.Context, productID string, amount float64) (*models.Offer, error) {
	if err := c.base.requireToken(); err != nil {
		return nil, err
	}
	body := map[string]float64{"amount": amount}
	var resp offerResponse
	if err := c.base.doJSON(ctx, http.MethodPost, "/offer/create/"+url.PathEscape(productID), body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListOffersForOwner returns the offers submitted against the given
// owner's product requests. Note the keying: the listing is scoped to the
// owning user, not to a single product, so it spans every request that
// user has open.
func (c *OfferClient) ListOffersForOwner(ctx context.Context, ownerID string) ([]models.Offer, error) {
	if err := c.base.requireToken(); err != nil {
		return nil, err
	}
	var resp offerListResponse
	if err := c.base.doJSON(ctx, http.MethodGet, "/offer/user/"+url.PathEscape(ownerID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
