// Package request implements the product-request lifecycle on the client
// side: the creation form, its synchronous field-scoped validation, and
// submission through the product client.
package request

import (
	"math"
	"net/url"
	"strings"
)

// Category set is fixed; the backend rejects anything else.
type Category struct {
	ID   int
	Name string
	Slug string
}

var Categories = []Category{
	{ID: 1, Name: "Electronics", Slug: "electronics"},
	{ID: 2, Name: "Fashion", Slug: "fashion"},
	{ID: 3, Name: "Home & Garden", Slug: "home-garden"},
	{ID: 4, Name: "Sports & Outdoors", Slug: "sports-outdoors"},
	{ID: 5, Name: "Beauty & Personal Care", Slug: "beauty-personal-care"},
	{ID: 6, Name: "Automotive", Slug: "automotive"},
	{ID: 7, Name: "Books", Slug: "books"},
	{ID: 8, Name: "Toys & Games", Slug: "toys-games"},
}

// CategoryByID returns the category with the given id, or false.
func CategoryByID(id int) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Form holds the creation form fields as entered.
type Form struct {
	Title       string
	Description string
	CategoryID  int
	Quantity    int
	Price       float64
	Image       string
}

// Validate checks every field and returns a field-name → message map.
// It is pure and performs no I/O; an empty map means the form is valid.
func Validate(f Form) map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(f.Title)) < 5 {
		errs["title"] = "title must be at least 5 characters"
	}
	if len(strings.TrimSpace(f.Description)) < 10 {
		errs["description"] = "description must be at least 10 characters"
	}
	if _, ok := CategoryByID(f.CategoryID); !ok {
		errs["category"] = "please select a category"
	}
	if f.Quantity < 1 {
		errs["quantity"] = "quantity must be at least 1"
	}
	if math.IsNaN(f.Price) || math.IsInf(f.Price, 0) || f.Price <= 0.01 {
		errs["price"] = "price must be greater than 0.01"
	}
	if !validImageURL(f.Image) {
		errs["image"] = "please enter a valid image URL"
	}
	return errs
}

func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
