package models

import "time"

const DefaultProductCategory = "General"

type Product struct {
	ID             string    `json:"id" yaml:"id" db:"id"`
	WebsiteID      string    `json:"websiteId" yaml:"website_id" db:"website_id"`
	Name           string    `json:"name" yaml:"name" db:"name"`
	Description    string    `json:"description" yaml:"description" db:"description"`
	Price          float64   `json:"price" yaml:"price" db:"price"`
	CompareAtPrice *float64  `json:"compareAtPrice,omitempty" yaml:"compare_at_price,omitempty" db:"compare_at_price"`
	ImageURL       string    `json:"imageUrl" yaml:"image_url" db:"image_url"`
	Category       string    `json:"category" yaml:"category" db:"category"`
	IsActive       bool      `json:"isActive" yaml:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" yaml:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" yaml:"updated_at" db:"updated_at"`
}

// ProductFromSeed builds an active product for websiteID from a template seed.
func ProductFromSeed(websiteID string, seed ProductSeed) Product {
	category := seed.Category
	if category == "" {
		category = DefaultProductCategory
	}
	return Product{
		WebsiteID:   websiteID,
		Name:        seed.Name,
		Description: seed.Description,
		Price:       seed.Price,
		ImageURL:    seed.ImageURL,
		Category:    category,
		IsActive:    true,
	}
}
