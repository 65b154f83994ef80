package handlers

import (
	"net/http"

	"github.com/ZacxDev/storefront/logger"
	"github.com/ZacxDev/storefront/models"
	"github.com/ZacxDev/storefront/store"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type templateInput struct {
	Name            *string              `json:"name"`
	Description     *string              `json:"description"`
	Category        *string              `json:"category"`
	Thumbnail       *string              `json:"thumbnail"`
	PreviewURL      *string              `json:"previewUrl"`
	Features        []string             `json:"features"`
	Settings        *models.Settings     `json:"settings"`
	Pages           models.Pages         `json:"pages"`
	DefaultProducts []models.ProductSeed `json:"defaultProducts"`
	IsActive        *bool                `json:"isActive"`
}

// apply copies every field present in the request onto t.
func (in templateInput) apply(t *models.Template) error {
	if in.Category != nil {
		c, err := models.ParseCategory(*in.Category)
		if err != nil {
			return err
		}
		t.Category = c
	}
	setIf(&t.Name, in.Name)
	setIf(&t.Description, in.Description)
	setIf(&t.Thumbnail, in.Thumbnail)
	setIf(&t.PreviewURL, in.PreviewURL)
	if in.Features != nil {
		t.Features = in.Features
	}
	if in.Settings != nil {
		t.Settings = *in.Settings
	}
	if in.Pages != nil {
		t.Pages = in.Pages
	}
	if in.DefaultProducts != nil {
		t.DefaultProducts = in.DefaultProducts
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	return nil
}

func (h *handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))

	templates, err := h.Store.ListTemplates(r.Context(), category)
	if err != nil {
		h.apiError(w, "list templates", err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *handler) templatesByCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(mux.Vars(r)["category"])

	templates := []models.Template{}
	if category.Valid() {
		var err error
		templates, err = h.Store.ListTemplates(r.Context(), category)
		if err != nil {
			h.apiError(w, "list templates by category", err)
			return
		}
	}

	if len(templates) == 0 {
		writeMessage(w, http.StatusNotFound, "No templates found for this category")
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.Store.GetTemplate(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) || (err == nil && !t.IsActive) {
		writeMessage(w, http.StatusNotFound, "Template not found")
		return
	}
	if err != nil {
		h.apiError(w, "get template", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var in templateInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid template data")
		return
	}

	t := models.Template{IsActive: true, Features: []string{}}
	if err := in.apply(&t); err != nil || t.Name == "" || t.Category == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid template data")
		return
	}

	if err := h.Store.CreateTemplate(r.Context(), &t); err != nil {
		h.apiError(w, "create template", err)
		return
	}

	h.Logger.Info("template created", logger.String("id", t.ID), logger.String("name", t.Name))
	writeJSON(w, http.StatusCreated, t)
}

func (h *handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	t, err := h.Store.GetTemplate(ctx, mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Template not found")
		return
	}
	if err != nil {
		h.apiError(w, "get template", err)
		return
	}

	var in templateInput
	if err := decode(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid template data")
		return
	}
	if err := in.apply(t); err != nil || t.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid template data")
		return
	}

	if err := h.Store.UpdateTemplate(ctx, t); err != nil {
		h.apiError(w, "update template", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *handler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteTemplate(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Template not found")
		return
	}
	if err != nil {
		h.apiError(w, "delete template", err)
		return
	}
	writeMessage(w, http.StatusOK, "Template removed")
}

func (h *handler) apiError(w http.ResponseWriter, op string, err error) {
	h.Logger.Error(op, logger.Err(err))
	writeMessage(w, http.StatusInternalServerError, "Server Error")
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
