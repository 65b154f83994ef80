package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/ZacxDev/storefront/utils"
	"github.com/pkg/errors"
)

type Category string

const (
	CategoryRestaurant  Category = "restaurant"
	CategoryEcommerce   Category = "ecommerce"
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryServices    Category = "services"
	CategoryOther       Category = "other"
)

var categories = []Category{
	CategoryRestaurant,
	CategoryEcommerce,
	CategoryClothing,
	CategoryElectronics,
	CategoryServices,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory returns an error for anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", errors.Errorf("unknown template category %q", s)
	}
	return c, nil
}

type Colors struct {
	Primary    string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty"`
}

type Fonts struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty"`
}

type Layout struct {
	HeaderStyle         string `json:"headerStyle,omitempty" yaml:"header_style,omitempty"`
	FooterStyle         string `json:"footerStyle,omitempty" yaml:"footer_style,omitempty"`
	ContentWidth        string `json:"contentWidth,omitempty" yaml:"content_width,omitempty"`
	ProductDisplayStyle string `json:"productDisplayStyle,omitempty" yaml:"product_display_style,omitempty"`
}

type Features struct {
	EnableCart     bool `json:"enableCart" yaml:"enable_cart"`
	EnableWishlist bool `json:"enableWishlist" yaml:"enable_wishlist"`
	EnableSearch   bool `json:"enableSearch" yaml:"enable_search"`
	EnableReviews  bool `json:"enableReviews" yaml:"enable_reviews"`
	EnableBlog     bool `json:"enableBlog" yaml:"enable_blog"`
}

type Social struct {
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty" yaml:"youtube,omitempty"`
}

type SEO struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Settings is the style and feature configuration of a website or template.
// A zero field means "not configured"; the preview renderer owns the defaults.
type Settings struct {
	Colors   Colors   `json:"colors" yaml:"colors"`
	Fonts    Fonts    `json:"fonts" yaml:"fonts"`
	Layout   Layout   `json:"layout" yaml:"layout"`
	Features Features `json:"features" yaml:"features"`
	Social   Social   `json:"social" yaml:"social"`
	SEO      SEO      `json:"seo" yaml:"seo"`
}

// IsZero reports whether nothing at all has been configured.
func (s Settings) IsZero() bool {
	return s == Settings{}
}

func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settings) Scan(src interface{}) error {
	return scanJSON(src, s)
}

type Page struct {
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Content     string `json:"content" yaml:"content"`
	IsPublished bool   `json:"isPublished" yaml:"is_published"`
}

type Pages []Page

func (p Pages) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

func (p *Pages) Scan(src interface{}) error {
	return scanJSON(src, p)
}

// Find returns the published page with the given slug.
func (p Pages) Find(slug string) (Page, bool) {
	for _, page := range p {
		if page.Slug == slug && page.IsPublished {
			return page, true
		}
	}
	return Page{}, false
}

type Website struct {
	ID           string    `json:"id" yaml:"id" db:"id"`
	Name         string    `json:"name" yaml:"name" db:"name"`
	Description  string    `json:"description" yaml:"description" db:"description"`
	Domain       string    `json:"domain" yaml:"domain" db:"domain"`
	Logo         string    `json:"logo" yaml:"logo" db:"logo"`
	TemplateID   string    `json:"templateId" yaml:"template_id" db:"template_id"`
	TemplateName string    `json:"templateName" yaml:"template_name" db:"template_name"`
	Category     Category  `json:"category" yaml:"category" db:"category"`
	OwnerID      string    `json:"ownerId" yaml:"owner_id" db:"owner_id"`
	Settings     Settings  `json:"settings" yaml:"settings" db:"settings"`
	Pages        Pages     `json:"pages" yaml:"pages" db:"pages"`
	IsActive     bool      `json:"isActive" yaml:"is_active" db:"is_active"`
	IsPublished  bool      `json:"isPublished" yaml:"is_published" db:"is_published"`
	CreatedAt    time.Time `json:"createdAt" yaml:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" yaml:"updated_at" db:"updated_at"`
}

// Slug is the normalized domain the preview is served under on the
// platform baseDomain.
func (w Website) Slug(baseDomain string) string {
	return utils.NormalizeDomain(w.Domain, baseDomain)
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return errors.WithStack(json.Unmarshal(v, dst))
	case string:
		return errors.WithStack(json.Unmarshal([]byte(v), dst))
	default:
		return errors.Errorf("unsupported JSON column type %T", src)
	}
}
