// internal/api/pages.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"releasetools-site/internal/model"
)

// createPage handles POST /v1/pages
func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	var in model.CreatePageInput
	if !h.decodeJSON(w, r, &in) || !h.validateStruct(w, in) {
		return
	}

	page, err := h.svc.CreatePage(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, "createPage", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, page)
}

// getPages handles GET /v1/pages
func (h *Handler) getPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.GetPages(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, "getPages", err)
		return
	}
	respondWithList(w, pages)
}

// getPublishedPages handles GET /v1/pages/published
func (h *Handler) getPublishedPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.GetPublishedPages(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, "getPublishedPages", err)
		return
	}
	respondWithList(w, pages)
}

// getPageBySlug handles GET /v1/pages/{slug}
// Unpublished pages are reported as missing.
func (h *Handler) getPageBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetPageBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondWithServiceError(w, r, "getPageBySlug", err)
		return
	}
	if page == nil {
		respondWithError(w, http.StatusNotFound, "Page not found")
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// updatePage handles PATCH /v1/pages/{id}
func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in model.UpdatePageInput
	if !h.decodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	if !h.validateFields(w,
		fieldRule{"slug", in.Slug.Set, in.Slug.Value, "required,ne=" + model.ReservedPageSlug},
		fieldRule{"title", in.Title.Set, in.Title.Value, "required"},
		fieldRule{"content", in.Content.Set, in.Content.Value, "required"},
	) {
		return
	}

	page, err := h.svc.UpdatePage(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, "updatePage", err)
		return
	}
	if page == nil {
		respondWithError(w, http.StatusNotFound, "Page not found")
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}
