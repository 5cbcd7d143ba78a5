// internal/api/handler.go
package api

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"releasetools-site/internal/model"
)

// ContentService is the set of content operations exposed over HTTP.
// *content.Service implements it.
type ContentService interface {
	CreateProject(ctx context.Context, in model.CreateProjectInput) (*model.Project, error)
	GetProjects(ctx context.Context) ([]*model.Project, error)
	GetFeaturedProjects(ctx context.Context) ([]*model.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error)
	UpdateProject(ctx context.Context, in model.UpdateProjectInput) (*model.Project, error)

	CreatePage(ctx context.Context, in model.CreatePageInput) (*model.Page, error)
	GetPages(ctx context.Context) ([]*model.Page, error)
	GetPublishedPages(ctx context.Context) ([]*model.Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*model.Page, error)
	UpdatePage(ctx context.Context, in model.UpdatePageInput) (*model.Page, error)

	CreateNavigationItem(ctx context.Context, in model.CreateNavigationItemInput) (*model.NavigationItem, error)
	GetNavigationByPageSlug(ctx context.Context, pageSlug string) ([]*model.NavigationItem, error)
}

// Options tunes the router. Zero values are usable.
type Options struct {
	AllowedOrigins []string
	// Registry receives the HTTP metrics. A fresh registry is created when nil.
	Registry *prometheus.Registry
	// RequestTimeout bounds each request; defaults to 60s.
	RequestTimeout time.Duration
}

// Handler is the container for API dependencies.
type Handler struct {
	svc      ContentService
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(svc ContentService, logger *slog.Logger, opts Options) http.Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger.With("component", "api"),
		validate: newValidator(),
		now:      time.Now,
	}

	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	metrics := newMetrics(opts.Registry)

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(metrics.instrument)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// API Routes
	r.Get("/health", h.healthCheck)
	r.Handle("/metrics", metrics.handler())
	r.Route("/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", h.createProject)
			r.Get("/", h.getProjects)
			r.Get("/featured", h.getFeaturedProjects)
			r.Get("/{slug}", h.getProjectBySlug)
			r.Patch("/{id}", h.updateProject)
		})
		r.Route("/pages", func(r chi.Router) {
			r.Post("/", h.createPage)
			r.Get("/", h.getPages)
			r.Get("/published", h.getPublishedPages)
			r.Get("/{slug}", h.getPageBySlug)
			r.Patch("/{id}", h.updatePage)
			r.Get("/{slug}/navigation", h.getNavigationByPageSlug)
		})
		r.Post("/navigation", h.createNavigationItem)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
