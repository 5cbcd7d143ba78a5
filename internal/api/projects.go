// internal/api/projects.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"releasetools-site/internal/model"
)

// createProject handles POST /v1/projects
func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var in model.CreateProjectInput
	if !h.decodeJSON(w, r, &in) || !h.validateStruct(w, in) {
		return
	}

	project, err := h.svc.CreateProject(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, "createProject", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, project)
}

// getProjects handles GET /v1/projects
func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.GetProjects(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, "getProjects", err)
		return
	}
	respondWithList(w, projects)
}

// getFeaturedProjects handles GET /v1/projects/featured
func (h *Handler) getFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.GetFeaturedProjects(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, "getFeaturedProjects", err)
		return
	}
	respondWithList(w, projects)
}

// getProjectBySlug handles GET /v1/projects/{slug}
func (h *Handler) getProjectBySlug(w http.ResponseWriter, r *http.Request) {
	project, err := h.svc.GetProjectBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondWithServiceError(w, r, "getProjectBySlug", err)
		return
	}
	if project == nil {
		respondWithError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

// updateProject handles PATCH /v1/projects/{id}
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in model.UpdateProjectInput
	if !h.decodeJSON(w, r, &in) {
		return
	}
	in.ID = id
	if !h.validateFields(w,
		fieldRule{"slug", in.Slug.Set, in.Slug.Value, "required,ne=" + model.ReservedProjectSlug},
		fieldRule{"name", in.Name.Set, in.Name.Value, "required"},
		fieldRule{"description", in.Description.Set, in.Description.Value, "required"},
		fieldRule{"github_url", in.GithubURL.Set, in.GithubURL.Value, "required,url"},
		fieldRule{"github_stars", in.GithubStars.Set, in.GithubStars.Value, "gte=0"},
		fieldRule{"github_forks", in.GithubForks.Set, in.GithubForks.Value, "gte=0"},
	) {
		return
	}

	project, err := h.svc.UpdateProject(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, "updateProject", err)
		return
	}
	if project == nil {
		respondWithError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}
