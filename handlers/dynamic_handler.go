package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/ZacxDev/storefront/cache"
	"github.com/ZacxDev/storefront/config"
	"github.com/ZacxDev/storefront/logger"
	"github.com/ZacxDev/storefront/metrics"
	"github.com/ZacxDev/storefront/models"
	"github.com/ZacxDev/storefront/preview"
	"github.com/ZacxDev/storefront/store"
	"github.com/ZacxDev/storefront/utils"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const (
	renderHome = "home"
	renderPage = "page"
)

type Deps struct {
	Store    store.Store
	Renderer *preview.Renderer
	Cache    cache.Cache
	Metrics  *metrics.Metrics
	Logger   logger.Logger
	Server   config.ServerConfig
}

type handler struct {
	Deps
}

func SetupRouter(d Deps) (*mux.Router, error) {
	if d.Store == nil {
		return nil, errors.New("handlers: store is required")
	}
	if d.Renderer == nil {
		d.Renderer = &preview.Renderer{}
	}
	if d.Cache == nil {
		d.Cache = cache.Nop()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Logger == nil {
		d.Logger = logger.NewNop()
	}
	if d.Server.BaseDomain == "" {
		d.Server.BaseDomain = utils.DefaultBaseDomain
	}

	h := &handler{Deps: d}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(h.Custom404Handler)
	router.Use(recoverer(d.Logger), requestLogger(d.Logger), d.Metrics.Middleware)

	router.HandleFunc("/preview/{slug}", h.PreviewHandler).Methods(http.MethodGet)
	router.HandleFunc("/preview/{slug}/pages/{page}", h.PageHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/templates", h.listTemplates).Methods(http.MethodGet)
	api.HandleFunc("/templates", requireAdmin(h.createTemplate)).Methods(http.MethodPost)
	api.HandleFunc("/templates/category/{category}", h.templatesByCategory).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}", h.getTemplate).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}", requireAdmin(h.updateTemplate)).Methods(http.MethodPut)
	api.HandleFunc("/templates/{id}", requireAdmin(h.deleteTemplate)).Methods(http.MethodDelete)

	api.HandleFunc("/websites", requireUser(h.listWebsites)).Methods(http.MethodGet)
	api.HandleFunc("/websites", requireUser(h.createWebsite)).Methods(http.MethodPost)
	api.HandleFunc("/websites/{id}", requireUser(h.getWebsite)).Methods(http.MethodGet)
	api.HandleFunc("/websites/{id}", requireUser(h.updateWebsite)).Methods(http.MethodPut)
	api.HandleFunc("/websites/{id}", requireUser(h.deleteWebsite)).Methods(http.MethodDelete)
	api.HandleFunc("/websites/{id}/products", requireUser(h.listProducts)).Methods(http.MethodGet)
	api.HandleFunc("/websites/{id}/products", requireUser(h.createProduct)).Methods(http.MethodPost)

	router.HandleFunc("/sitemap.xml", h.sitemap).Methods(http.MethodGet)
	router.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router, nil
}

// PreviewHandler serves the full preview document of the active website
// whose domain matches {slug}.
func (h *handler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	slug := utils.NormalizeDomain(mux.Vars(r)["slug"], h.Server.BaseDomain)

	site, ok := h.lookupSite(w, r, slug, renderHome, start)
	if !ok {
		return
	}

	products, err := h.Store.ListProducts(ctx, site.ID)
	if err != nil {
		h.serverError(w, "list products", err, renderHome, start)
		return
	}

	key, err := cache.Key(site, products, h.Renderer.Variant())
	if err != nil {
		h.Logger.Warn("preview cache key", logger.Err(err))
	}

	if key != "" {
		html, hit, err := h.Cache.Get(ctx, key)
		if err != nil {
			h.Logger.Warn("preview cache get", logger.String("slug", slug), logger.Err(err))
		}
		h.Metrics.CacheLookup(hit)
		if hit {
			h.Metrics.ObserveRender(renderHome, metrics.ResultOK, time.Since(start))
			writeHTML(w, http.StatusOK, html)
			return
		}
	}

	html, err := h.Renderer.Render(site, products, slug)
	if err != nil {
		h.serverError(w, "render preview", err, renderHome, start)
		return
	}

	if key != "" {
		if err := h.Cache.Set(ctx, key, html); err != nil {
			h.Logger.Warn("preview cache set", logger.String("slug", slug), logger.Err(err))
		}
	}

	h.Metrics.ObserveRender(renderHome, metrics.ResultOK, time.Since(start))
	h.Logger.Debug("preview rendered",
		logger.String("slug", slug),
		logger.Int("products", len(products)))
	writeHTML(w, http.StatusOK, html)
}

// PageHandler serves one published Markdown page of a website.
func (h *handler) PageHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	vars := mux.Vars(r)
	slug := utils.NormalizeDomain(vars["slug"], h.Server.BaseDomain)

	site, ok := h.lookupSite(w, r, slug, renderPage, start)
	if !ok {
		return
	}

	page, found := site.Pages.Find(vars["page"])
	if !found {
		h.Metrics.ObserveRender(renderPage, metrics.ResultNotFound, time.Since(start))
		h.renderNotFound(w, "Page not found")
		return
	}

	html, err := h.Renderer.RenderPage(site, page, slug)
	if err != nil {
		h.serverError(w, "render page", err, renderPage, start)
		return
	}

	h.Metrics.ObserveRender(renderPage, metrics.ResultOK, time.Since(start))
	writeHTML(w, http.StatusOK, html)
}

func (h *handler) lookupSite(w http.ResponseWriter, r *http.Request, slug, kind string, start time.Time) (*models.Website, bool) {
	site, err := h.Store.GetWebsiteBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		h.Metrics.ObserveRender(kind, metrics.ResultNotFound, time.Since(start))
		h.renderNotFound(w, "Website not found")
		return nil, false
	}
	if err != nil {
		h.serverError(w, "find website", err, kind, start)
		return nil, false
	}
	return site, true
}

func (h *handler) serverError(w http.ResponseWriter, op string, err error, kind string, start time.Time) {
	h.Metrics.ObserveRender(kind, metrics.ResultError, time.Since(start))
	h.Logger.Error(op, logger.Err(err))
	http.Error(w, "Error generating preview", http.StatusInternalServerError)
}

func (h *handler) sitemap(w http.ResponseWriter, r *http.Request) {
	sites, err := h.Store.ListPublishedWebsites(r.Context())
	if err != nil {
		h.Logger.Error("list published websites", logger.Err(err))
		http.Error(w, "Error generating sitemap", http.StatusInternalServerError)
		return
	}

	content, err := utils.GenerateSitemapContent(h.Server.Origin, SitemapEntries(sites, h.Server.BaseDomain))
	if err != nil {
		h.Logger.Error("generate sitemap", logger.Err(err))
		http.Error(w, "Error generating sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header + content))
}

// SitemapEntries lists the preview paths of published websites and their
// published pages, with slugs normalized against baseDomain.
func SitemapEntries(sites []models.Website, baseDomain string) []utils.SitemapEntry {
	entries := []utils.SitemapEntry{}
	for _, site := range sites {
		base := "/preview/" + site.Slug(baseDomain)
		entries = append(entries, utils.SitemapEntry{Path: base, LastMod: site.UpdatedAt})
		for _, page := range site.Pages {
			if page.IsPublished {
				entries = append(entries, utils.SitemapEntry{
					Path:    base + "/pages/" + page.Slug,
					LastMod: site.UpdatedAt,
				})
			}
		}
	}
	return entries
}
