package handlers

import (
	"net/http"

	"github.com/ZacxDev/storefront/logger"
)

func (h *handler) Custom404Handler(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, "The page you are looking for does not exist.")
}

func (h *handler) renderNotFound(w http.ResponseWriter, msg string) {
	html, err := h.Renderer.RenderNotFound(msg)
	if err != nil {
		h.Logger.Error("render not found page", logger.Err(err))
		http.Error(w, msg, http.StatusNotFound)
		return
	}
	writeHTML(w, http.StatusNotFound, html)
}
