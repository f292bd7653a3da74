package mockapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type productFields struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CategoryID  int     `json:"categoryId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

type productDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    category `json:"category"`
	Quantity    int      `json:"count"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	User        ownerDTO `json:"user"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type ownerDTO struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func (s *Server) toProductDTO(p *Product) productDTO {
	cat, _ := categoryByID(p.CategoryID)

	var owner User
	username := ""
	if err := s.db.First(&owner, "id = ?", p.OwnerID).Error; err == nil {
		username = owner.FirstName + " " + owner.LastName
	}

	return productDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    cat,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Image:       p.Image,
		User:        ownerDTO{ID: p.OwnerID, Username: username},
		CreatedAt:   p.CreatedAt.Format(timeLayout),
		UpdatedAt:   p.UpdatedAt.Format(timeLayout),
	}
}

func (s *Server) ListProducts(c echo.Context) error {
	q := s.db.Model(&Product{}).Order("created_at DESC")
	if slug := c.QueryParam("category"); slug != "" {
		cat, found := categoryBySlug(slug)
		if !found {
			return fail(c, http.StatusBadRequest, "unknown category")
		}
		q = q.Where("category_id = ?", cat.ID)
	}

	var products []Product
	if err := q.Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "could not load products")
	}

	dtos := make([]productDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, s.toProductDTO(&products[i]))
	}
	return ok(c, http.StatusOK, "", dtos)
}

func (s *Server) GetProduct(c echo.Context) error {
	var product Product
	if err := s.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "product not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load product")
	}
	return ok(c, http.StatusOK, "", s.toProductDTO(&product))
}

func (s *Server) CreateProduct(c echo.Context) error {
	var req productFields
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if _, found := categoryByID(req.CategoryID); !found {
		return fail(c, http.StatusBadRequest, "unknown category")
	}
	if req.Title == "" || req.Quantity < 1 || req.Price <= 0 {
		return fail(c, http.StatusBadRequest, "invalid product fields")
	}

	product := Product{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Image:       req.Image,
		OwnerID:     callerID(c),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.db.Create(&product).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "could not create product")
	}
	return ok(c, http.StatusCreated, "", s.toProductDTO(&product))
}

func (s *Server) UpdateProduct(c echo.Context) error {
	var product Product
	if err := s.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "product not found")
		}
		return fail(c, http.StatusInternalServerError, "could not load product")
	}
	if product.OwnerID != callerID(c) {
		return fail(c, http.StatusForbidden, "only the owner can update a request")
	}

	var req productFields
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if _, found := categoryByID(req.CategoryID); !found {
		return fail(c, http.StatusBadRequest, "unknown category")
	}

	product.Title = req.Title
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.Quantity = req.Quantity
	product.Price = req.Price
	product.Image = req.Image
	product.UpdatedAt = time.Now()

	if err := s.db.Save(&product).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "could not update product")
	}
	return ok(c, http.StatusOK, "", s.toProductDTO(&product))
}
