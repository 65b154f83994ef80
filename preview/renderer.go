// Package preview renders a stored website configuration and its products
// into a complete, self-contained HTML document.
//
// Rendering is normalize-then-render: NewTheme resolves every style default
// once, a view is built from the website, and a fixed pipeline of sections
// is concatenated. A Renderer holds no mutable state and may be shared by
// concurrent requests.
package preview

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/ZacxDev/storefront/assets"
	"github.com/ZacxDev/storefront/models"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

const (
	DefaultBrand       = "Storefront"
	DefaultDescription = "Your premier destination for quality products and exceptional service."
	DefaultAbout       = "We are dedicated to providing the highest quality products and services to our customers. Our team is committed to excellence in everything we do."
	DefaultBlurb       = "Your premier destination for quality products and services."
	DefaultTemplate    = "Custom"
)

// ErrMissingWebsite means the caller never loaded the website record.
var ErrMissingWebsite = errors.New("preview: website is required")

// Renderer turns websites into preview documents. The zero value is ready
// to use.
type Renderer struct {
	// Now supplies the copyright year. Defaults to time.Now.
	Now func() time.Time
	// Minify runs the inline stylesheet and script through esbuild.
	Minify bool
	// Brand is the platform name shown in the footer and about section.
	Brand string
}

// view is everything the sections read. Built once per render.
type view struct {
	Name            string
	Description     string
	About           string
	Blurb           string
	Title           string
	MetaDescription string
	Keywords        string
	TemplateName    string
	Brand           string
	Email           string
	Year            string
	LinkBase        string
	Theme           Theme
	Copy            Copy
	Cards           []card
	Social          []link
	Pages           []link
	Styles          template.HTML
	Script          template.HTML
	PageTitle       string
	PageBody        template.HTML
}

func Render(website *models.Website, products []models.Product, slug string) (string, error) {
	var r Renderer
	return r.Render(website, products, slug)
}

// Render produces the preview document of website. Output depends only on
// the arguments and the current year.
func (r *Renderer) Render(website *models.Website, products []models.Product, slug string) (string, error) {
	if website == nil {
		return "", ErrMissingWebsite
	}

	v := r.newView(website, slug)
	v.Cards = productCards(products)

	return assemble(v,
		heroSection,
		productsSection,
		featuresSection,
		aboutSection,
		contactSection,
	)
}

// RenderPage renders one of the website's Markdown pages inside the same
// header and footer as the main preview.
func (r *Renderer) RenderPage(website *models.Website, page models.Page, slug string) (string, error) {
	if website == nil {
		return "", ErrMissingWebsite
	}

	v := r.newView(website, slug)
	v.LinkBase = "/preview/" + slug
	v.PageTitle = page.Name
	v.PageBody = markdownToHTML(page.Content)
	if page.Name != "" {
		v.Title = page.Name + " | " + v.Title
	}

	return assemble(v, pageSection)
}

// RenderNotFound renders a standalone 404 document in the default theme.
func (r *Renderer) RenderNotFound(message string) (string, error) {
	brand := r.brand()
	v := r.newView(&models.Website{Name: brand}, strings.ToLower(brand))
	v.Title = "Not found | " + brand
	v.Description = message

	return assemble(v, notFoundSection)
}

func (r *Renderer) newView(w *models.Website, slug string) *view {
	description := strings.TrimSpace(w.Description)
	seo := w.Settings.SEO

	v := &view{
		Name:            w.Name,
		Description:     firstNonEmpty(description, DefaultDescription),
		About:           firstNonEmpty(description, DefaultAbout),
		Blurb:           DefaultBlurb,
		Title:           firstNonEmpty(strings.TrimSpace(seo.Title), w.Name),
		MetaDescription: firstNonEmpty(strings.TrimSpace(seo.Description), description, "Website created with "+r.brand()),
		Keywords:        strings.TrimSpace(seo.Keywords),
		TemplateName:    firstNonEmpty(w.TemplateName, DefaultTemplate),
		Brand:           r.brand(),
		Email:           "info@" + slug + ".com",
		Year:            strconv.Itoa(r.now().Year()),
		Theme:           NewTheme(w.Settings),
		Copy:            CopyFor(w.Category),
		Social:          socialLinks(w.Settings.Social),
		Pages:           pageLinks(w.Pages, slug),
	}
	if description != "" {
		v.Blurb = truncate(description, blurbLimit)
	}
	v.Styles, v.Script = r.inlineAssets()

	return v
}

func (r *Renderer) inlineAssets() (template.HTML, template.HTML) {
	styles := readAsset("styles.css")
	script := readAsset("preview.js")
	if !r.Minify {
		return styles, script
	}

	if css, err := assets.MinifyCSS(string(styles)); err == nil {
		styles = template.HTML(css)
	}
	if js, err := assets.MinifyJS(string(script)); err == nil {
		script = template.HTML(js)
	}
	return styles, script
}

// Variant names the renderer settings the next document depends on: the
// copyright year, the brand and whether assets are minified.
func (r *Renderer) Variant() string {
	return strconv.Itoa(r.now().Year()) + "|" + r.brand() + "|" + strconv.FormatBool(r.Minify)
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Renderer) brand() string {
	return firstNonEmpty(r.Brand, DefaultBrand)
}

// assemble runs the fixed document pipeline with content inside <main>.
func assemble(v *view, content ...section) (string, error) {
	pipeline := []section{
		literal("<!DOCTYPE html>\n<html lang=\"en\">\n"),
		headSection,
		literal("<body>\n"),
		bannerSection,
		headerSection,
		literal("<main>\n"),
	}
	pipeline = append(pipeline, content...)
	pipeline = append(pipeline,
		literal("</main>\n"),
		footerSection,
		literal("</body>\n</html>\n"),
	)

	var b bytes.Buffer
	for _, s := range pipeline {
		out, err := s(v)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

func markdownToHTML(content string) template.HTML {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	html := markdown.ToHTML([]byte(content), p, nil)
	return template.HTML(bluemonday.UGCPolicy().SanitizeBytes(html))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
