// internal/content/service.go
package content

import (
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"releasetools-site/internal/database"
	"releasetools-site/internal/model"
)

// Service implements the project, page and navigation handlers over a database.Store.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	store  database.Store
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(store database.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With("component", "content"),
	}
}

func toProjectModel(p database.Project) *model.Project {
	return &model.Project{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		GithubURL:   p.GithubUrl,
		GithubStars: p.GithubStars,
		GithubForks: p.GithubForks,
		License:     p.License,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toPageModel(p database.Page) *model.Page {
	page := &model.Page{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Content:     p.Content,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
	if p.MetaDescription.Valid {
		desc := p.MetaDescription.String
		page.MetaDescription = &desc
	}
	return page
}

func toNavigationItemModel(n database.NavigationItem) *model.NavigationItem {
	item := &model.NavigationItem{
		ID:        n.ID,
		PageSlug:  n.PageSlug,
		Title:     n.Title,
		Anchor:    n.Anchor,
		Order:     n.Order,
		CreatedAt: n.CreatedAt.UTC(),
	}
	if n.ParentID.Valid {
		parent := n.ParentID.Int64
		item.ParentID = &parent
	}
	return item
}

func textParam(o model.Optional[string]) pgtype.Text {
	return pgtype.Text{String: o.Value, Valid: o.Set}
}

func int4Param(o model.Optional[int32]) pgtype.Int4 {
	return pgtype.Int4{Int32: o.Value, Valid: o.Set}
}

func boolParam(o model.Optional[bool]) pgtype.Bool {
	return pgtype.Bool{Bool: o.Value, Valid: o.Set}
}

// since is used for duration logging.
func since(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
