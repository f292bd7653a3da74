package request

import (
	"context"
	"fmt"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/models"
)

// ValidationError reports the first invalid field; the Fields map carries
// the messages for all of them.
type ValidationError struct {
	Field  string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Fields[e.Field])
}

// fieldOrder fixes which invalid field blocks submission first, matching
// the form's visual order.
var fieldOrder = []string{"title", "description", "category", "quantity", "price", "image"}

// ProductAPI is the slice of the product client the service needs.
type ProductAPI interface {
	CreateProduct(ctx context.Context, fields api.ProductFields) (*models.Product, error)
}

// ViewerSource yields the currently authenticated user, or nil.
type ViewerSource interface {
	User() *models.User
}

// Service creates product requests on behalf of the authenticated viewer.
type Service struct {
	products ProductAPI
	viewer   ViewerSource
}

func NewService(products ProductAPI, viewer ViewerSource) *Service {
	return &Service{products: products, viewer: viewer}
}

// Create validates the form and submits it. An unauthenticated viewer
// gets api.ErrAuthRequired before any network call (the caller should
// redirect to the auth entry point); an invalid form gets a
// *ValidationError, also without touching the network.
func (s *Service) Create(ctx context.Context, f Form) (*models.Product, error) {
	if s.viewer.User() == nil {
		return nil, api.ErrAuthRequired
	}

	if errs := Validate(f); len(errs) > 0 {
		for _, field := range fieldOrder {
			if _, ok := errs[field]; ok {
				return nil, &ValidationError{Field: field, Fields: errs}
			}
		}
	}

	return s.products.CreateProduct(ctx, api.ProductFields{
		Title:       f.Title,
		Description: f.Description,
		CategoryID:  f.CategoryID,
		Quantity:    f.Quantity,
		Price:       f.Price,
		Image:       f.Image,
	})
}
