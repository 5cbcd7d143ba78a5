// internal/content/projects.go
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"releasetools-site/internal/database"
	"releasetools-site/internal/model"
)

// CreateProject stores a new project, applying defaults for omitted counters, license and featured flag.
// A duplicate slug fails with a UniqueConstraintViolation.
func (s *Service) CreateProject(ctx context.Context, in model.CreateProjectInput) (*model.Project, error) {
	params := database.CreateProjectParams{
		Slug:        in.Slug,
		Name:        in.Name,
		Description: in.Description,
		GithubUrl:   in.GithubURL,
		License:     model.DefaultLicense,
	}
	if in.GithubStars != nil {
		params.GithubStars = *in.GithubStars
	}
	if in.GithubForks != nil {
		params.GithubForks = *in.GithubForks
	}
	if in.License != nil {
		params.License = *in.License
	}
	if in.IsFeatured != nil {
		params.IsFeatured = *in.IsFeatured
	}

	row, err := s.store.CreateProject(ctx, params)
	if err != nil {
		s.logger.Error("Project creation failed", "slug", in.Slug, "error", err)
		return nil, fmt.Errorf("failed to create project %q: %w", in.Slug, database.TranslateError(err))
	}
	s.logger.Info("Project created", "id", row.ID, "slug", row.Slug)
	return toProjectModel(row), nil
}

// GetProjects returns all projects, featured first, newest first within each group.
func (s *Service) GetProjects(ctx context.Context) ([]*model.Project, error) {
	rows, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return toProjectModels(rows), nil
}

// GetFeaturedProjects returns only featured projects, newest first.
func (s *Service) GetFeaturedProjects(ctx context.Context) ([]*model.Project, error) {
	rows, err := s.store.ListFeaturedProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured projects: %w", err)
	}
	return toProjectModels(rows), nil
}

// GetProjectBySlug returns the project with the exact slug, or nil if there is none.
func (s *Service) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	row, err := s.store.GetProjectBySlug(ctx, slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by slug %q: %w", slug, err)
	}
	return toProjectModel(row), nil
}

// UpdateProject applies the fields present in the input and refreshes updated_at.
// An input without fields performs no write and returns the current row.
// Returns nil when the id does not exist.
func (s *Service) UpdateProject(ctx context.Context, in model.UpdateProjectInput) (*model.Project, error) {
	start := time.Now()
	logger := s.logger.With("project_id", in.ID)

	if in.Empty() {
		logger.Debug("Project update carries no fields, returning current row")
		row, err := s.store.GetProjectByID(ctx, in.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get project %d: %w", in.ID, err)
		}
		return toProjectModel(row), nil
	}

	row, err := s.store.UpdateProject(ctx, database.UpdateProjectParams{
		ID:          in.ID,
		Slug:        textParam(in.Slug),
		Name:        textParam(in.Name),
		Description: textParam(in.Description),
		GithubUrl:   textParam(in.GithubURL),
		GithubStars: int4Param(in.GithubStars),
		GithubForks: int4Param(in.GithubForks),
		License:     textParam(in.License),
		IsFeatured:  boolParam(in.IsFeatured),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Info("Project to update not found")
		return nil, nil
	}
	if err != nil {
		logger.Error("Project update failed", "error", err)
		return nil, fmt.Errorf("failed to update project %d: %w", in.ID, database.TranslateError(err))
	}
	logger.Info("Project updated", since(start))
	return toProjectModel(row), nil
}

func toProjectModels(rows []database.Project) []*model.Project {
	projects := make([]*model.Project, len(rows))
	for i, row := range rows {
		projects[i] = toProjectModel(row)
	}
	return projects
}
