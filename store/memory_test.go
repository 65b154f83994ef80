package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ZacxDev/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock advances a minute on every call so ordering is deterministic.
func tickingClock() func() time.Time {
	t := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Minute)
		return t
	}
}

func newTestMemory() *Memory {
	m := NewMemory()
	m.now = tickingClock()
	return m
}

func restaurantTemplate() *models.Template {
	return &models.Template{
		Name:     "Restaurant Basic",
		Category: models.CategoryRestaurant,
		IsActive: true,
		Features: []string{"Menu", "Reservations"},
		Settings: models.Settings{Colors: models.Colors{Primary: "#e53935"}},
		DefaultProducts: models.ProductSeeds{
			{Name: "Margherita", Price: 12.5},
			{Name: "Tiramisu", Price: 6, Category: "Dessert"},
		},
	}
}

func TestMemoryTemplates(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory()

	first := restaurantTemplate()
	require.NoError(t, m.CreateTemplate(ctx, first))
	assert.NotEmpty(t, first.ID)

	second := &models.Template{Name: "Shop", Category: models.CategoryEcommerce, IsActive: true}
	require.NoError(t, m.CreateTemplate(ctx, second))

	hidden := &models.Template{Name: "Old", Category: models.CategoryRestaurant}
	require.NoError(t, m.CreateTemplate(ctx, hidden))

	all, err := m.ListTemplates(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Shop", all[0].Name, "newest first")
	assert.Equal(t, "Restaurant Basic", all[1].Name)

	restaurants, err := m.ListTemplates(ctx, models.CategoryRestaurant)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, first.ID, restaurants[0].ID)

	got, err := m.GetTemplate(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = m.GetTemplate(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Menu", "Reservations"}, got.Features)
	got.Features[0] = "mutated"
	again, err := m.GetTemplate(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Menu", again.Features[0])

	first.Name = "Restaurant Deluxe"
	require.NoError(t, m.UpdateTemplate(ctx, first))
	again, err = m.GetTemplate(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Restaurant Deluxe", again.Name)
	assert.True(t, again.UpdatedAt.After(again.CreatedAt))

	require.NoError(t, m.DeleteTemplate(ctx, first.ID))
	_, err = m.GetTemplate(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.DeleteTemplate(ctx, first.ID), ErrNotFound)
	assert.ErrorIs(t, m.UpdateTemplate(ctx, &models.Template{ID: "nope"}), ErrNotFound)
}

func TestMemoryWebsites(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory()

	w := &models.Website{Name: "Pizza Palace", Domain: "pizzapalace", OwnerID: "u1", IsActive: true, IsPublished: true}
	require.NoError(t, m.CreateWebsite(ctx, w))

	dup := &models.Website{Name: "Copy", Domain: "PizzaPalace", OwnerID: "u2"}
	assert.ErrorIs(t, m.CreateWebsite(ctx, dup), ErrDomainTaken)

	other := &models.Website{Name: "Draft", Domain: "draft", OwnerID: "u1", IsActive: true}
	require.NoError(t, m.CreateWebsite(ctx, other))

	bySlug, err := m.GetWebsiteBySlug(ctx, "PIZZAPALACE")
	require.NoError(t, err)
	assert.Equal(t, w.ID, bySlug.ID)

	owned, err := m.ListWebsites(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "Draft", owned[0].Name)

	none, err := m.ListWebsites(ctx, "u9")
	require.NoError(t, err)
	assert.Empty(t, none)

	published, err := m.ListPublishedWebsites(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, w.ID, published[0].ID)

	other.Domain = "pizzapalace"
	assert.ErrorIs(t, m.UpdateWebsite(ctx, other), ErrDomainTaken)

	w.Domain = "PizzaPalace"
	require.NoError(t, m.UpdateWebsite(ctx, w), "own domain is not a conflict")

	w.IsActive = false
	require.NoError(t, m.UpdateWebsite(ctx, w))
	_, err = m.GetWebsiteBySlug(ctx, "pizzapalace")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.DeleteWebsite(ctx, w.ID))
	_, err = m.GetWebsite(ctx, w.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryProducts(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory()

	w := &models.Website{Name: "Shop", Domain: "shop", IsActive: true}
	require.NoError(t, m.CreateWebsite(ctx, w))

	price := 30.0
	for _, p := range []models.Product{
		{Name: "A", Price: 10, IsActive: true},
		{Name: "B", Price: 20, IsActive: false},
		{Name: "C", Price: 25, CompareAtPrice: &price, IsActive: true},
	} {
		p.WebsiteID = w.ID
		require.NoError(t, m.CreateProduct(ctx, &p))
	}

	assert.ErrorIs(t, m.CreateProduct(ctx, &models.Product{WebsiteID: "missing"}), ErrNotFound)

	products, err := m.ListProducts(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "C", products[1].Name)

	*products[1].CompareAtPrice = 1
	products, err = m.ListProducts(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, *products[1].CompareAtPrice)

	require.NoError(t, m.DeleteWebsite(ctx, w.ID))
	products, err = m.ListProducts(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProvision(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory()

	tmpl := restaurantTemplate()
	tmpl.Pages = models.Pages{{Name: "About", Slug: "about", IsPublished: true}}
	require.NoError(t, m.CreateTemplate(ctx, tmpl))

	w := &models.Website{Name: "Pizza Palace", Domain: "pizzapalace", OwnerID: "u1"}
	products, err := Provision(ctx, m, w, tmpl, nil)
	require.NoError(t, err)

	assert.True(t, w.IsActive)
	assert.Equal(t, tmpl.ID, w.TemplateID)
	assert.Equal(t, "Restaurant Basic", w.TemplateName)
	assert.Equal(t, models.CategoryRestaurant, w.Category)
	assert.Equal(t, "#e53935", w.Settings.Colors.Primary)
	assert.Len(t, w.Pages, 1)

	require.Len(t, products, 2)
	assert.Equal(t, models.DefaultProductCategory, products[0].Category)
	assert.Equal(t, "Dessert", products[1].Category)

	stored, err := m.ListProducts(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	custom := &models.Website{
		Name:     "Luigi's",
		Domain:   "luigis",
		Settings: models.Settings{Colors: models.Colors{Primary: "#000000"}},
	}
	products, err = Provision(ctx, m, custom, tmpl, []models.ProductSeed{{Name: "Calzone", Price: 11}})
	require.NoError(t, err)
	assert.Equal(t, "#000000", custom.Settings.Colors.Primary)
	require.Len(t, products, 1)
	assert.Equal(t, "Calzone", products[0].Name)

	_, err = Provision(ctx, m, &models.Website{Name: "Dup", Domain: "PIZZAPALACE"}, tmpl, nil)
	assert.ErrorIs(t, err, ErrDomainTaken)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	w := &models.Website{Name: "Shop", Domain: "shop", IsActive: true}
	require.NoError(t, m.CreateWebsite(ctx, w))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.CreateProduct(ctx, &models.Product{WebsiteID: w.ID, Name: "p", IsActive: true})
		}()
		go func() {
			defer wg.Done()
			_, _ = m.ListProducts(ctx, w.ID)
		}()
	}
	wg.Wait()

	products, err := m.ListProducts(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, products, 20)
}
