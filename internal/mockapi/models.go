package mockapi

import "time"

// User is a registered account. Passwords are stored bcrypt-hashed;
// VerificationCode is the current emailed 6-digit code.
type User struct {
	ID               string `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex"`
	PasswordHash     string
	FirstName        string
	LastName         string
	CityName         string
	CountyName       string
	DistrictName     string
	AddressText      string
	IsSeller         bool
	IsVerified       bool
	VerificationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Product is a buyer's product request; OwnerID never changes after
// creation.
type Product struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	CategoryID  int
	Quantity    int
	Price       float64
	Image       string
	OwnerID     string `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Offer is a bid against a product request.
type Offer struct {
	ID        string `gorm:"primaryKey"`
	ProductID string `gorm:"index"`
	UserID    string `gorm:"index"`
	Amount    float64
	Status    string
	CreatedAt time.Time
}

type category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

var categories = []category{
	{ID: 1, Name: "Electronics", Slug: "electronics"},
	{ID: 2, Name: "Fashion", Slug: "fashion"},
	{ID: 3, Name: "Home & Garden", Slug: "home-garden"},
	{ID: 4, Name: "Sports & Outdoors", Slug: "sports-outdoors"},
	{ID: 5, Name: "Beauty & Personal Care", Slug: "beauty-personal-care"},
	{ID: 6, Name: "Automotive", Slug: "automotive"},
	{ID: 7, Name: "Books", Slug: "books"},
	{ID: 8, Name: "Toys & Games", Slug: "toys-games"},
}

func categoryByID(id int) (category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return category{}, false
}

func categoryBySlug(slug string) (category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return category{}, false
}
