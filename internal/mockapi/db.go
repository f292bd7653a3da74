package mockapi

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase opens (or creates) the sqlite database and migrates the
// schema.
func OpenDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&User{}, &Product{}, &Offer{}); err != nil {
		return nil, err
	}
	return db, nil
}

// Seed inserts a couple of demo product requests when the database is
// empty, so a fresh dev environment has something to browse.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := &User{
		ID:         uuid.NewString(),
		Email:      "demo@wantmart.dev",
		FirstName:  "Demo",
		LastName:   "Requester",
		IsVerified: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := db.Create(demo).Error; err != nil {
		return err
	}

	products := []Product{
		{
			ID:          uuid.NewString(),
			Title:       "iPhone 14 Pro Max",
			Description: "Looking for a lightly used iPhone 14 Pro Max, 256GB, any color.",
			CategoryID:  1,
			Quantity:    1,
			Price:       5500,
			Image:       "https://images.unsplash.com/photo-1523206489230-c012c64b2b48",
			OwnerID:     demo.ID,
		},
		{
			ID:          uuid.NewString(),
			Title:       "MacBook Pro M1",
			Description: "Need a MacBook Pro with the M1 chip for development work.",
			CategoryID:  1,
			Quantity:    1,
			Price:       8000,
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8",
			OwnerID:     demo.ID,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Ergonomic Office Chair",
			Description: "Searching for a comfortable ergonomic chair with lumbar support.",
			CategoryID:  3,
			Quantity:    2,
			Price:       4000,
			Image:       "https://images.unsplash.com/photo-1592078615290-033ee584e267",
			OwnerID:     demo.ID,
		},
	}
	for i := range products {
		products[i].CreatedAt = time.Now()
		products[i].UpdatedAt = time.Now()
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
