package store

import (
	"context"
	"os"

	"github.com/ZacxDev/storefront/logger"
	"github.com/ZacxDev/storefront/models"
	"github.com/ZacxDev/storefront/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Catalog is the YAML seed file: the template gallery plus optional demo
// websites.
type Catalog struct {
	Templates []models.Template `yaml:"templates"`
	Websites  []WebsiteSeed     `yaml:"websites"`
}

type WebsiteSeed struct {
	models.Website `yaml:",inline"`
	// Products replaces the template's default products when set.
	Products []models.ProductSeed `yaml:"products"`
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parse catalog %s", path)
	}
	return &c, nil
}

// Seed writes the catalog into s. Templates that already exist and websites
// whose domain is taken are skipped, so seeding twice is harmless. Website
// domains are normalized against the platform baseDomain.
func Seed(ctx context.Context, s Store, c *Catalog, baseDomain string, log logger.Logger) error {
	for i := range c.Templates {
		t := c.Templates[i]
		if _, err := models.ParseCategory(string(t.Category)); err != nil {
			return errors.Wrapf(err, "template %q", t.Name)
		}

		if t.ID != "" {
			_, err := s.GetTemplate(ctx, t.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				return err
			}
		}

		t.IsActive = true
		if err := s.CreateTemplate(ctx, &t); err != nil {
			return errors.Wrapf(err, "seed template %q", t.Name)
		}
		c.Templates[i].ID = t.ID
		log.Debug("seeded template", logger.String("id", t.ID), logger.String("name", t.Name))
	}

	for _, seed := range c.Websites {
		w := seed.Website
		w.Domain = utils.NormalizeDomain(w.Domain, baseDomain)

		tmpl, err := s.GetTemplate(ctx, w.TemplateID)
		if err != nil {
			return errors.Wrapf(err, "website %q references template %q", w.Name, w.TemplateID)
		}

		products, err := Provision(ctx, s, &w, tmpl, seed.Products)
		if errors.Is(err, ErrDomainTaken) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "seed website %q", w.Name)
		}
		log.Debug("seeded website",
			logger.String("domain", w.Domain),
			logger.Int("products", len(products)))
	}

	return nil
}
