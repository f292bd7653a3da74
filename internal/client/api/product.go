package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mertsakar/wantmart/internal/client/models"
)

// ProductFields carries the fields for creating or updating a product
// request.
type ProductFields struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CategoryID  int     `json:"categoryId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

type productResponse struct {
	Success bool            `json:"success"`
	Data    *models.Product `json:"data"`
}

type productListResponse struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
}

// ProductClient talks to the product backend. Reads are public; writes
// require a live credential and fail fast without one.
type ProductClient struct {
	base *baseClient
}

func NewProductClient(baseURL string, tokens *TokenHolder) *ProductClient {
	return &ProductClient{base: newBaseClient(baseURL, tokens)}
}

// ListProducts returns all product requests, optionally filtered by
// category slug.
func (c *ProductClient) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var resp productListResponse
	if err := c.base.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetProduct fetches a single product request by id. Returns ErrNotFound
// when no such request exists.
func (c *ProductClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var resp productResponse
	if err := c.base.doJSON(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateProduct creates a new product request owned by the caller.
func (c *ProductClient) CreateProduct(ctx context.Context, fields ProductFields) (*models.Product, error) {
	if err := c.base.requireToken(); err != nil {
		return nil, err
	}
	var resp productResponse
	if err := c.base.doJSON(ctx, http.MethodPost, "/products", fields, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateProduct replaces the mutable fields of an existing request.
func (c *ProductClient) UpdateProduct(ctx context.Context, id string, fields ProductFields) (*models.Product, error) {
	if err := c.base.requireToken(); err != nil {
		return nil, err
	}
	var resp productResponse
	if err := c.base.doJSON(ctx, http.MethodPut, "/products/"+url.PathEscape(id), fields, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
