// internal/api/navigation.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"releasetools-site/internal/model"
)

// createNavigationItem handles POST /v1/navigation
// A missing page or parent is answered with 422 and the reference error message.
func (h *Handler) createNavigationItem(w http.ResponseWriter, r *http.Request) {
	var in model.CreateNavigationItemInput
	if !h.decodeJSON(w, r, &in) || !h.validateStruct(w, in) {
		return
	}

	item, err := h.svc.CreateNavigationItem(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, "createNavigationItem", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

// getNavigationByPageSlug handles GET /v1/pages/{slug}/navigation
func (h *Handler) getNavigationByPageSlug(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetNavigationByPageSlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondWithServiceError(w, r, "getNavigationByPageSlug", err)
		return
	}
	respondWithList(w, items)
}
