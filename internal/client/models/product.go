package models

// Category is one of the fixed set of product-request categories.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductOwner identifies the user who created a product request.
type ProductOwner struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Product is a buyer-initiated product request: a listing describing an
// item the owner wants to buy, which other users submit offers against.
// The owner is set at creation and never changes.
type Product struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Quantity    int          `json:"count"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	User        ProductOwner `json:"user"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}
