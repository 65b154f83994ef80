package preview

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/ZacxDev/storefront/models"
	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

const (
	descriptionLimit = 80
	blurbLimit       = 100
	placeholderCount = 4

	placeholderPrice        = 19.99
	placeholderComparePrice = 24.99
	placeholderDescription  = "This is a sample product description. Add real products to your website."
)

// section renders one independently testable piece of the document.
type section func(v *view) (string, error)

// card is a product as the products section shows it.
type card struct {
	Name           string
	Description    string
	Price          string
	CompareAtPrice string
	ImageURL       string
	Placeholder    string
	Badge          string
	HasBadge       bool
	HasImage       bool
	HasCompareAt   bool
}

type link struct {
	Href  string
	Label string
	Short string
	Name  string
}

func productCards(products []models.Product) []card {
	if len(products) == 0 {
		return placeholderCards()
	}

	cards := make([]card, 0, len(products))
	for i, p := range products {
		c := card{
			Name:        p.Name,
			Description: truncate(p.Description, descriptionLimit),
			Price:       formatPrice(p.Price),
			ImageURL:    p.ImageURL,
			Placeholder: "No Image",
			HasImage:    strings.TrimSpace(p.ImageURL) != "",
		}
		if i == 0 {
			c.Badge, c.HasBadge = "Popular", true
		}
		if p.CompareAtPrice != nil {
			c.CompareAtPrice, c.HasCompareAt = formatPrice(*p.CompareAtPrice), true
		}
		cards = append(cards, c)
	}
	return cards
}

func placeholderCards() []card {
	cards := make([]card, 0, placeholderCount)
	for i := 0; i < placeholderCount; i++ {
		name := fmt.Sprintf("Sample Product %d", i+1)
		c := card{
			Name:        name,
			Description: placeholderDescription,
			Price:       formatPrice(placeholderPrice),
			Placeholder: name,
		}
		if i == 0 {
			c.Badge, c.HasBadge = "Featured", true
		}
		if i == 2 {
			c.CompareAtPrice, c.HasCompareAt = formatPrice(placeholderComparePrice), true
		}
		cards = append(cards, c)
	}
	return cards
}

func socialLinks(s models.Social) []link {
	return []link{
		{Href: hrefOr(s.Facebook), Label: "Facebook", Short: "f"},
		{Href: hrefOr(s.Twitter), Label: "Twitter", Short: "t"},
		{Href: hrefOr(s.Instagram), Label: "Instagram", Short: "ig"},
		{Href: hrefOr(s.Youtube), Label: "YouTube", Short: "yt"},
	}
}

func pageLinks(pages models.Pages, slug string) []link {
	links := []link{}
	for _, p := range pages {
		if !p.IsPublished || p.Slug == "" {
			continue
		}
		links = append(links, link{Href: pagePath(slug, p.Slug), Name: p.Name})
	}
	return links
}

func headSection(v *view) (string, error) {
	return execTemplate("head", map[string]interface{}{
		"title":           v.Title,
		"metaDescription": v.MetaDescription,
		"keywords":        v.Keywords,
		"hasKeywords":     v.Keywords != "",
		"fontsURL":        v.Theme.FontsURL(),
		"theme":           v.Theme,
		"styles":          v.Styles,
		"script":          v.Script,
	})
}

func bannerSection(v *view) (string, error) {
	return execTemplate("banner", nil)
}

func headerSection(v *view) (string, error) {
	return execTemplate("header", map[string]interface{}{
		"name":     v.Name,
		"copy":     v.Copy,
		"linkBase": v.LinkBase,
	})
}

func heroSection(v *view) (string, error) {
	return execTemplate("hero", map[string]interface{}{
		"name":        v.Name,
		"description": v.Description,
		"copy":        v.Copy,
	})
}

func productsSection(v *view) (string, error) {
	return execTemplate("products", map[string]interface{}{
		"copy":  v.Copy,
		"cards": v.Cards,
	})
}

func featuresSection(v *view) (string, error) {
	return execTemplate("features", nil)
}

func aboutSection(v *view) (string, error) {
	return execTemplate("about", map[string]interface{}{
		"about":        v.About,
		"brand":        v.Brand,
		"templateName": v.TemplateName,
	})
}

func contactSection(v *view) (string, error) {
	return execTemplate("contact", nil)
}

func footerSection(v *view) (string, error) {
	return execTemplate("footer", map[string]interface{}{
		"name":     v.Name,
		"blurb":    v.Blurb,
		"social":   v.Social,
		"pages":    v.Pages,
		"copy":     v.Copy,
		"linkBase": v.LinkBase,
		"email":    v.Email,
		"year":     v.Year,
		"brand":    v.Brand,
	})
}

func pageSection(v *view) (string, error) {
	return execTemplate("page", map[string]interface{}{
		"pageTitle": v.PageTitle,
		"pageBody":  v.PageBody,
	})
}

func notFoundSection(v *view) (string, error) {
	return execTemplate("not_found", map[string]interface{}{
		"message": v.Description,
	})
}

func literal(s string) section {
	return func(*view) (string, error) {
		return s, nil
	}
}

func execTemplate(name string, data map[string]interface{}) (string, error) {
	src, err := templateFS.ReadFile("templates/" + name + ".plush.html")
	if err != nil {
		return "", errors.Wrapf(err, "read %s template", name)
	}

	tmpl, err := plush.Parse(string(src))
	if err != nil {
		return "", errors.Wrapf(err, "parse %s template", name)
	}

	ctx := plush.NewContext()
	for k, v := range data {
		ctx.Set(k, v)
	}

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "render %s section", name)
	}

	return out, nil
}

func readAsset(name string) template.HTML {
	b, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return ""
	}
	return template.HTML(b)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

// hrefOr only lets absolute http(s) links through.
func hrefOr(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "https://") && !strings.HasPrefix(v, "http://") {
		return "#"
	}
	return v
}

func pagePath(slug, page string) string {
	return "/preview/" + slug + "/pages/" + page
}
