// Package store persists templates, websites and their products.
package store

import (
	"context"

	"github.com/ZacxDev/storefront/models"
	"github.com/pkg/errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDomainTaken = errors.New("domain already in use")
)

type Store interface {
	// ListTemplates returns active templates, newest first. An empty
	// category lists every category.
	ListTemplates(ctx context.Context, category models.Category) ([]models.Template, error)
	GetTemplate(ctx context.Context, id string) (*models.Template, error)
	CreateTemplate(ctx context.Context, t *models.Template) error
	UpdateTemplate(ctx context.Context, t *models.Template) error
	DeleteTemplate(ctx context.Context, id string) error

	// CreateWebsite fails with ErrDomainTaken when another website already
	// uses the domain, compared case-insensitively.
	CreateWebsite(ctx context.Context, w *models.Website) error
	GetWebsite(ctx context.Context, id string) (*models.Website, error)
	// GetWebsiteBySlug finds the active website whose domain is slug.
	GetWebsiteBySlug(ctx context.Context, slug string) (*models.Website, error)
	ListWebsites(ctx context.Context, ownerID string) ([]models.Website, error)
	ListPublishedWebsites(ctx context.Context) ([]models.Website, error)
	UpdateWebsite(ctx context.Context, w *models.Website) error
	DeleteWebsite(ctx context.Context, id string) error

	// ListProducts returns the active products of a website in the order
	// they were created.
	ListProducts(ctx context.Context, websiteID string) ([]models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error

	Close() error
}
