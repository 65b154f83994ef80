package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// ProductSeed is a product a template copies into every website created from it.
type ProductSeed struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	ImageURL    string  `json:"imageUrl" yaml:"image_url"`
	Category    string  `json:"category" yaml:"category"`
}

type ProductSeeds []ProductSeed

func (p ProductSeeds) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

func (p *ProductSeeds) Scan(src interface{}) error {
	return scanJSON(src, p)
}

type Template struct {
	ID              string       `json:"id" yaml:"id" db:"id"`
	Name            string       `json:"name" yaml:"name" db:"name"`
	Description     string       `json:"description" yaml:"description" db:"description"`
	Category        Category     `json:"category" yaml:"category" db:"category"`
	Thumbnail       string       `json:"thumbnail" yaml:"thumbnail" db:"thumbnail"`
	PreviewURL      string       `json:"previewUrl" yaml:"preview_url" db:"preview_url"`
	Features        []string     `json:"features" yaml:"features" db:"-"`
	Settings        Settings     `json:"settings" yaml:"settings" db:"settings"`
	Pages           Pages        `json:"pages" yaml:"pages" db:"pages"`
	DefaultProducts ProductSeeds `json:"defaultProducts" yaml:"default_products" db:"default_products"`
	IsActive        bool         `json:"isActive" yaml:"is_active" db:"is_active"`
	CreatedAt       time.Time    `json:"createdAt" yaml:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" yaml:"updated_at" db:"updated_at"`
}
