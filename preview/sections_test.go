package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/ZacxDev/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardMarker = `<div class="product-card">`

func price(v float64) *float64 {
	return &v
}

func testView(t *testing.T, w *models.Website, products []models.Product) *view {
	t.Helper()
	r := Renderer{Now: func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }}
	v := r.newView(w, "pizzapalace")
	v.Cards = productCards(products)
	return v
}

func TestProductCardsPlaceholders(t *testing.T) {
	cards := productCards(nil)
	require.Len(t, cards, 4)

	for i, c := range cards {
		assert.Equal(t, "19.99", c.Price)
		assert.False(t, c.HasImage)
		assert.Equal(t, c.Name, c.Placeholder)
		assert.Equal(t, i == 2, c.HasCompareAt, "card %d", i)
	}
	assert.Equal(t, "Sample Product 1", cards[0].Name)
	assert.Equal(t, "Sample Product 4", cards[3].Name)
	assert.Equal(t, "24.99", cards[2].CompareAtPrice)
	assert.True(t, cards[0].HasBadge)
	assert.False(t, cards[1].HasBadge)
}

func TestProductCardsFromProducts(t *testing.T) {
	cards := productCards([]models.Product{
		{Name: "Margherita", Description: "Tomato and basil", Price: 12.5, ImageURL: "https://img.example.com/m.jpg"},
		{Name: "Pepperoni", Description: "Spicy", Price: 14, CompareAtPrice: price(16.999)},
	})
	require.Len(t, cards, 2)

	assert.Equal(t, "Popular", cards[0].Badge)
	assert.True(t, cards[0].HasBadge)
	assert.True(t, cards[0].HasImage)
	assert.Equal(t, "12.50", cards[0].Price)
	assert.False(t, cards[0].HasCompareAt)

	assert.False(t, cards[1].HasBadge)
	assert.False(t, cards[1].HasImage)
	assert.Equal(t, "14.00", cards[1].Price)
	assert.Equal(t, "17.00", cards[1].CompareAtPrice)
}

func TestTruncate(t *testing.T) {
	exact := strings.Repeat("a", 80)
	over := strings.Repeat("b", 81)

	assert.Equal(t, exact, truncate(exact, 80))
	assert.Equal(t, strings.Repeat("b", 80)+"...", truncate(over, 80))
	assert.Equal(t, "héllo wö...", truncate("héllo wörld", 8))
	assert.Equal(t, "", truncate("", 80))
}

func TestProductsSectionCardCount(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		products := make([]models.Product, n)
		for i := range products {
			products[i] = models.Product{Name: "Item", Description: "Thing", Price: 1}
		}

		out, err := productsSection(testView(t, &models.Website{}, products))
		require.NoError(t, err)
		assert.Equal(t, n, strings.Count(out, cardMarker), "products=%d", n)
		assert.Equal(t, 1, strings.Count(out, `<span class="product-badge">Popular</span>`))
		assert.NotContains(t, out, "Sample Product")
	}
}

func TestProductsSectionPlaceholders(t *testing.T) {
	out, err := productsSection(testView(t, &models.Website{}, nil))
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, cardMarker))
	assert.Equal(t, 4, strings.Count(out, "<span>$19.99</span>"))
	assert.Equal(t, 1, strings.Count(out, "<s>$24.99</s>"))
	assert.Contains(t, out, `<span class="product-badge">Featured</span>`)
	assert.NotContains(t, out, "<img")
}

func TestProductsSectionPopularBadgeOnFirstCard(t *testing.T) {
	out, err := productsSection(testView(t, &models.Website{}, []models.Product{
		{Name: "First", Description: "one", Price: 1},
		{Name: "Second", Description: "two", Price: 2},
	}))
	require.NoError(t, err)

	badge := strings.Index(out, "Popular")
	first := strings.Index(out, "<h3>First</h3>")
	second := strings.Index(out, "<h3>Second</h3>")
	require.True(t, badge >= 0 && first >= 0 && second >= 0)
	assert.Less(t, badge, first)
	assert.Less(t, first, second)
}

func TestProductsSectionImagesAndStrikethrough(t *testing.T) {
	out, err := productsSection(testView(t, &models.Website{}, []models.Product{
		{Name: "Shirt", Description: "Cotton", Price: 20, ImageURL: "https://img.example.com/shirt.jpg", CompareAtPrice: price(25)},
		{Name: "Hat", Description: "Wool", Price: 9.5},
	}))
	require.NoError(t, err)

	assert.Contains(t, out, `<img src="https://img.example.com/shirt.jpg" alt="Shirt" class="product-image">`)
	assert.Contains(t, out, "<s>$25.00</s>")
	assert.Contains(t, out, `<div class="product-image-placeholder">No Image</div>`)
	assert.Contains(t, out, "<span>$9.50</span>")
}

func TestProductsSectionEscapesProductData(t *testing.T) {
	out, err := productsSection(testView(t, &models.Website{}, []models.Product{
		{Name: "<script>alert(1)</script>", Description: "x", Price: 1},
	}))
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestHeaderAndHeroCategoryCopy(t *testing.T) {
	tests := []struct {
		category models.Category
		nav      string
		cta      string
	}{
		{models.CategoryRestaurant, "Menu", "View Our Menu"},
		{models.CategoryServices, "Services", "Our Services"},
		{models.CategoryElectronics, "Products", "Shop Now"},
		{"", "Products", "Shop Now"},
	}

	for _, tc := range tests {
		v := testView(t, &models.Website{Name: "Shop", Category: tc.category}, nil)

		header, err := headerSection(v)
		require.NoError(t, err)
		assert.Contains(t, header, `<a href="#products">`+tc.nav+`</a>`)
		assert.Contains(t, header, `<a href="#home">Home</a>`)
		assert.Contains(t, header, `<a href="#about">About</a>`)
		assert.Contains(t, header, `<a href="#contact">Contact</a>`)

		hero, err := heroSection(v)
		require.NoError(t, err)
		assert.Contains(t, hero, `<a href="#products" class="btn">`+tc.cta+`</a>`)
	}
}

func TestHeadSectionStyleTokens(t *testing.T) {
	v := testView(t, &models.Website{
		Name: "Threads",
		Settings: models.Settings{
			Colors: models.Colors{Primary: "#8d6e63"},
			Layout: models.Layout{ContentWidth: "contained"},
			SEO:    models.SEO{Title: "Threads | Clothing", Keywords: "shirts, hats"},
		},
	}, nil)

	out, err := headSection(v)
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Threads | Clothing</title>")
	assert.Contains(t, out, `<meta name="keywords" content="shirts, hats">`)
	assert.Contains(t, out, "--primary-color: #8d6e63;")
	assert.Contains(t, out, "--primary-color-rgb: 141, 110, 99;")
	assert.Contains(t, out, "--secondary-color-rgb: 245, 0, 87;")
	assert.Contains(t, out, "--content-width: 1200px;")
	assert.Contains(t, out, `--header-font: "Poppins", sans-serif;`)
	assert.Contains(t, out, ".products-grid")
	assert.Contains(t, out, "DOMContentLoaded")
}

func TestHeadSectionOmitsEmptyKeywords(t *testing.T) {
	out, err := headSection(testView(t, &models.Website{Name: "Plain"}, nil))
	require.NoError(t, err)
	assert.NotContains(t, out, `name="keywords"`)
	assert.Contains(t, out, `<meta name="description" content="Website created with Storefront">`)
}

func TestAboutSection(t *testing.T) {
	out, err := aboutSection(testView(t, &models.Website{Description: "Family run since 1990", TemplateName: "Restaurant Classic"}, nil))
	require.NoError(t, err)
	assert.Contains(t, out, "<p>Family run since 1990</p>")
	assert.Contains(t, out, "<strong>Restaurant Classic</strong>")

	out, err = aboutSection(testView(t, &models.Website{}, nil))
	require.NoError(t, err)
	assert.Contains(t, out, DefaultAbout)
	assert.Contains(t, out, "<strong>Custom</strong>")
}

func TestContactSectionHasNoAction(t *testing.T) {
	out, err := contactSection(testView(t, &models.Website{}, nil))
	require.NoError(t, err)
	assert.Contains(t, out, `<form id="contact-form"`)
	assert.NotContains(t, out, "action=")
}

func TestFooterSection(t *testing.T) {
	v := testView(t, &models.Website{
		Name:        "Pizza Palace",
		Description: strings.Repeat("d", 120),
		Settings:    models.Settings{Social: models.Social{Instagram: "https://instagram.com/pizzapalace", Twitter: "javascript:alert(1)"}},
		Pages: models.Pages{
			{Name: "Catering", Slug: "catering", IsPublished: true},
			{Name: "Draft", Slug: "draft"},
		},
	}, nil)

	out, err := footerSection(v)
	require.NoError(t, err)

	assert.Contains(t, out, `<a href="mailto:info@pizzapalace.com">info@pizzapalace.com</a>`)
	assert.Contains(t, out, "&copy; 2026 Pizza Palace")
	assert.Contains(t, out, strings.Repeat("d", 100)+"...")
	assert.Contains(t, out, `href="https://instagram.com/pizzapalace"`)
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `<a href="/preview/pizzapalace/pages/catering">Catering</a>`)
	assert.NotContains(t, out, "Draft")
}
