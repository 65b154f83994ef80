package handlers

import (
	"net/http"
	"strings"

	"github.com/ZacxDev/storefront/logger"
	"github.com/ZacxDev/storefront/models"
	"github.com/ZacxDev/storefront/store"
	"github.com/ZacxDev/storefront/utils"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type websiteResponse struct {
	*models.Website
	PreviewURL    string `json:"previewUrl"`
	DisplayDomain string `json:"displayDomain"`
}

type createWebsiteInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Domain      string           `json:"domain"`
	TemplateID  string           `json:"templateId"`
	Logo        string           `json:"logo"`
	Settings    *models.Settings `json:"settings"`
}

type updateWebsiteInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Domain      *string          `json:"domain"`
	Logo        *string          `json:"logo"`
	Settings    *models.Settings `json:"settings"`
	Pages       models.Pages     `json:"pages"`
	IsPublished *bool            `json:"isPublished"`
}

type productInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	ImageURL       string   `json:"imageUrl"`
	Category       string   `json:"category"`
}

func (h *handler) respondWebsite(w http.ResponseWriter, status int, site *models.Website) {
	writeJSON(w, status, h.websiteResponse(site))
}

func (h *handler) websiteResponse(site *models.Website) websiteResponse {
	return websiteResponse{
		Website:       site,
		PreviewURL:    utils.PreviewURL(h.Server.PreviewBaseURL, h.Server.BaseDomain, site.Domain),
		DisplayDomain: utils.DisplayDomain(h.Server.BaseDomain, site.Domain),
	}
}

func (h *handler) normalizeDomain(raw string) string {
	return utils.NormalizeDomain(raw, h.Server.BaseDomain)
}

func (h *handler) createWebsite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in createWebsiteInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid website data")
		return
	}

	domain := h.normalizeDomain(in.Domain)
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || domain == "" || in.TemplateID == "" {
		writeMessage(w, http.StatusBadRequest,
			"Please provide all required fields (name, description, domain, templateId)")
		return
	}

	tmpl, err := h.Store.GetTemplate(ctx, in.TemplateID)
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Template not found")
		return
	}
	if err != nil {
		h.apiError(w, "get template", err)
		return
	}

	site := &models.Website{
		Name:        in.Name,
		Description: in.Description,
		Domain:      domain,
		Logo:        in.Logo,
		OwnerID:     r.Header.Get(userHeader),
	}
	if in.Settings != nil {
		site.Settings = *in.Settings
	}

	products, err := store.Provision(ctx, h.Store, site, tmpl, nil)
	if errors.Is(err, store.ErrDomainTaken) {
		writeMessage(w, http.StatusBadRequest, "Subdomain already in use")
		return
	}
	if err != nil {
		h.apiError(w, "create website", err)
		return
	}

	h.Logger.Info("website created",
		logger.String("id", site.ID),
		logger.String("domain", site.Domain),
		logger.String("template", tmpl.ID),
		logger.Int("products", len(products)))
	h.respondWebsite(w, http.StatusCreated, site)
}

func (h *handler) listWebsites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.Store.ListWebsites(r.Context(), r.Header.Get(userHeader))
	if err != nil {
		h.apiError(w, "list websites", err)
		return
	}

	out := make([]websiteResponse, 0, len(sites))
	for i := range sites {
		out = append(out, h.websiteResponse(&sites[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// ownedWebsite loads {id} and checks it belongs to the caller. It writes the
// error response itself and reports whether the handler may continue.
func (h *handler) ownedWebsite(w http.ResponseWriter, r *http.Request) (*models.Website, bool) {
	site, err := h.Store.GetWebsite(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Website not found")
		return nil, false
	}
	if err != nil {
		h.apiError(w, "get website", err)
		return nil, false
	}
	if site.OwnerID != r.Header.Get(userHeader) {
		writeMessage(w, http.StatusUnauthorized, "Not authorized")
		return nil, false
	}
	return site, true
}

func (h *handler) getWebsite(w http.ResponseWriter, r *http.Request) {
	site, ok := h.ownedWebsite(w, r)
	if !ok {
		return
	}
	h.respondWebsite(w, http.StatusOK, site)
}

func (h *handler) updateWebsite(w http.ResponseWriter, r *http.Request) {
	site, ok := h.ownedWebsite(w, r)
	if !ok {
		return
	}

	var in updateWebsiteInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid website data")
		return
	}

	if in.Domain != nil {
		domain := h.normalizeDomain(*in.Domain)
		if domain == "" {
			writeMessage(w, http.StatusBadRequest, "Invalid website data")
			return
		}
		site.Domain = domain
	}
	if in.Name != nil && *in.Name != "" {
		site.Name = *in.Name
	}
	if in.Description != nil && *in.Description != "" {
		site.Description = *in.Description
	}
	setIf(&site.Logo, in.Logo)
	if in.Settings != nil {
		site.Settings = *in.Settings
	}
	if in.Pages != nil {
		site.Pages = in.Pages
	}
	if in.IsPublished != nil {
		site.IsPublished = *in.IsPublished
	}

	err := h.Store.UpdateWebsite(r.Context(), site)
	if errors.Is(err, store.ErrDomainTaken) {
		writeMessage(w, http.StatusBadRequest, "Subdomain already in use")
		return
	}
	if err != nil {
		h.apiError(w, "update website", err)
		return
	}
	h.respondWebsite(w, http.StatusOK, site)
}

func (h *handler) deleteWebsite(w http.ResponseWriter, r *http.Request) {
	site, ok := h.ownedWebsite(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteWebsite(r.Context(), site.ID); err != nil {
		h.apiError(w, "delete website", err)
		return
	}

	h.Logger.Info("website deleted", logger.String("id", site.ID))
	writeMessage(w, http.StatusOK, "Website removed")
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	site, ok := h.ownedWebsite(w, r)
	if !ok {
		return
	}

	products, err := h.Store.ListProducts(r.Context(), site.ID)
	if err != nil {
		h.apiError(w, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	site, ok := h.ownedWebsite(w, r)
	if !ok {
		return
	}

	var in productInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product data")
		return
	}
	if strings.TrimSpace(in.Name) == "" || in.Price < 0 || (in.CompareAtPrice != nil && *in.CompareAtPrice < 0) {
		writeMessage(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	p := models.ProductFromSeed(site.ID, models.ProductSeed{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
	})
	p.CompareAtPrice = in.CompareAtPrice

	if err := h.Store.CreateProduct(r.Context(), &p); err != nil {
		h.apiError(w, "create product", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
