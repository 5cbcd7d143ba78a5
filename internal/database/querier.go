// internal/database/querier.go
package database

import (
	"context"
)

type Querier interface {
	CreateNavigationItem(ctx context.Context, arg CreateNavigationItemParams) (NavigationItem, error)
	CreatePage(ctx context.Context, arg CreatePageParams) (Page, error)
	CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error)
	GetNavigationItemIDForShare(ctx context.Context, id int64) (int64, error)
	GetPageByID(ctx context.Context, id int64) (Page, error)
	GetPageIDBySlugForShare(ctx context.Context, slug string) (int64, error)
	GetProjectByID(ctx context.Context, id int64) (Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (Project, error)
	GetPublishedPageBySlug(ctx context.Context, slug string) (Page, error)
	ListFeaturedProjects(ctx context.Context) ([]Project, error)
	ListNavigationItemsByPageSlug(ctx context.Context, pageSlug string) ([]NavigationItem, error)
	ListPages(ctx context.Context) ([]Page, error)
	ListProjects(ctx context.Context) ([]Project, error)
	ListPublishedPages(ctx context.Context) ([]Page, error)
	UpdatePage(ctx context.Context, arg UpdatePageParams) (Page, error)
	UpdateProject(ctx context.Context, arg UpdateProjectParams) (Project, error)
	UpdateProjectGithubStats(ctx context.Context, arg UpdateProjectGithubStatsParams) (Project, error)
}

var _ Querier = (*Queries)(nil)
