package store

import (
	"context"

	"github.com/ZacxDev/storefront/config"
	"github.com/ZacxDev/storefront/logger"
	"github.com/pkg/errors"
)

// Open builds the store the config asks for and seeds it from the catalog
// file when one is set. Seeded domains are normalized against baseDomain.
func Open(ctx context.Context, cfg config.StoreConfig, baseDomain string, log logger.Logger) (Store, error) {
	var s Store

	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := ConnectPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		s = pg
	case config.DriverMemory, "":
		s = NewMemory()
	default:
		return nil, errors.Errorf("unknown store driver %q", cfg.Driver)
	}

	log.Info("store opened", logger.String("driver", cfg.Driver))

	if cfg.SeedFile == "" {
		return s, nil
	}

	catalog, err := LoadCatalog(cfg.SeedFile)
	if err == nil {
		err = Seed(ctx, s, catalog, baseDomain, log)
	}
	if err != nil {
		s.Close()
		return nil, err
	}

	log.Info("catalog seeded",
		logger.String("file", cfg.SeedFile),
		logger.Int("templates", len(catalog.Templates)),
		logger.Int("websites", len(catalog.Websites)))
	return s, nil
}
