package store

import (
	"context"

	"github.com/ZacxDev/storefront/models"
	"github.com/pkg/errors"
)

// Provision creates w from tmpl. Settings and pages the caller left empty
// are taken from the template, and seeds (or the template's default
// products when seeds is nil) become the website's first products.
func Provision(ctx context.Context, s Store, w *models.Website, tmpl *models.Template, seeds []models.ProductSeed) ([]models.Product, error) {
	w.TemplateID = tmpl.ID
	w.TemplateName = tmpl.Name
	w.Category = tmpl.Category
	w.IsActive = true

	if w.Settings.IsZero() {
		w.Settings = tmpl.Settings
	}
	if len(w.Pages) == 0 {
		w.Pages = append(models.Pages(nil), tmpl.Pages...)
	}

	if err := s.CreateWebsite(ctx, w); err != nil {
		return nil, err
	}

	if seeds == nil {
		seeds = tmpl.DefaultProducts
	}

	products := make([]models.Product, 0, len(seeds))
	for _, seed := range seeds {
		p := models.ProductFromSeed(w.ID, seed)
		if err := s.CreateProduct(ctx, &p); err != nil {
			return products, errors.Wrapf(err, "copy product %q", seed.Name)
		}
		products = append(products, p)
	}

	return products, nil
}
