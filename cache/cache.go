// Package cache stores rendered preview documents.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/ZacxDev/storefront/models"
	"github.com/pkg/errors"
)

const keyPrefix = "storefront:preview:"

type Cache interface {
	// Get reports a miss with ok == false and a nil error.
	Get(ctx context.Context, key string) (html string, ok bool, err error)
	Set(ctx context.Context, key, html string) error
}

// Key identifies one rendering of a website. It covers everything the
// document depends on, so an edited website, product list or renderer
// variant (year, brand, minification) never hits an old entry.
func Key(w *models.Website, products []models.Product, variant string) (string, error) {
	h := sha256.New()

	site, err := json.Marshal(w)
	if err != nil {
		return "", errors.Wrap(err, "hash website")
	}
	items, err := json.Marshal(products)
	if err != nil {
		return "", errors.Wrap(err, "hash products")
	}

	h.Write(site)
	h.Write([]byte{0})
	h.Write(items)
	h.Write([]byte{0})
	h.Write([]byte(variant))

	return keyPrefix + hex.EncodeToString(h.Sum(nil)), nil
}

type nop struct{}

// Nop never stores anything.
func Nop() Cache { return nop{} }

func (nop) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (nop) Set(context.Context, string, string) error         { return nil }
