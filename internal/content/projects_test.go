// internal/content/projects_test.go
package content

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"releasetools-site/internal/database"
	custom_errors "releasetools-site/internal/errors"
	"releasetools-site/internal/model"
)

func TestService_CreateProject(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("applies defaults for omitted optional fields", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)

		expected := database.CreateProjectParams{
			Slug:        "mutex",
			Name:        "Mutex",
			Description: "Advisory lock service for CI/CD workflows.",
			GithubUrl:   "https://github.com/releasetools/mutex",
			License:     "Apache-2.0",
		}
		store.On("CreateProject", ctx, expected).Return(database.Project{
			ID: 1, Slug: expected.Slug, Name: expected.Name, Description: expected.Description,
			GithubUrl: expected.GithubUrl, License: expected.License, CreatedAt: now, UpdatedAt: now,
		}, nil).Once()

		project, err := svc.CreateProject(ctx, model.CreateProjectInput{
			Slug:        "mutex",
			Name:        "Mutex",
			Description: "Advisory lock service for CI/CD workflows.",
			GithubURL:   "https://github.com/releasetools/mutex",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), project.ID)
		assert.Equal(t, int32(0), project.GithubStars)
		assert.Equal(t, "Apache-2.0", project.License)
		assert.False(t, project.IsFeatured)
		store.AssertExpectations(t)
	})

	t.Run("passes explicit optional fields through", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		stars, forks, license, featured := int32(245), int32(18), "MIT", true

		store.On("CreateProject", ctx, mock.MatchedBy(func(p database.CreateProjectParams) bool {
			return p.GithubStars == 245 && p.GithubForks == 18 && p.License == "MIT" && p.IsFeatured
		})).Return(database.Project{ID: 2, GithubStars: 245, GithubForks: 18, License: "MIT", IsFeatured: true}, nil).Once()

		project, err := svc.CreateProject(ctx, model.CreateProjectInput{
			Slug: "cli", Name: "CLI", Description: "d", GithubURL: "https://github.com/releasetools/cli",
			GithubStars: &stars, GithubForks: &forks, License: &license, IsFeatured: &featured,
		})

		require.NoError(t, err)
		assert.True(t, project.IsFeatured)
		store.AssertExpectations(t)
	})

	t.Run("surfaces duplicate slugs as UniqueConstraintViolation", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		pgErr := &pgconn.PgError{Code: "23505", TableName: "projects", ConstraintName: "projects_slug_key"}
		store.On("CreateProject", ctx, mock.Anything).Return(database.Project{}, pgErr).Once()

		_, err := svc.CreateProject(ctx, model.CreateProjectInput{Slug: "mutex"})

		require.Error(t, err)
		assert.ErrorIs(t, err, custom_errors.ErrUniqueConstraintViolation)
	})
}

func TestService_GetProjectBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil without error when absent", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		store.On("GetProjectBySlug", ctx, "Mutex").Return(database.Project{}, pgx.ErrNoRows).Once()

		project, err := svc.GetProjectBySlug(ctx, "Mutex")

		assert.NoError(t, err)
		assert.Nil(t, project)
	})

	t.Run("returns the stored project", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		store.On("GetProjectBySlug", ctx, "mutex").Return(database.Project{ID: 1, Slug: "mutex"}, nil).Once()

		project, err := svc.GetProjectBySlug(ctx, "mutex")

		require.NoError(t, err)
		assert.Equal(t, "mutex", project.Slug)
	})

	t.Run("wraps unexpected errors", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		dbError := fmt.Errorf("boom")
		store.On("GetProjectBySlug", ctx, "mutex").Return(database.Project{}, dbError).Once()

		_, err := svc.GetProjectBySlug(ctx, "mutex")

		assert.ErrorIs(t, err, dbError)
	})
}

func TestService_GetProjects(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	svc := newTestService(store)

	store.On("ListProjects", ctx).Return([]database.Project{
		{ID: 3, IsFeatured: true}, {ID: 1, IsFeatured: true}, {ID: 2},
	}, nil).Once()
	store.On("ListFeaturedProjects", ctx).Return([]database.Project{}, nil).Once()

	all, err := svc.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)

	featured, err := svc.GetFeaturedProjects(ctx)
	require.NoError(t, err)
	assert.NotNil(t, featured)
	assert.Empty(t, featured)
	store.AssertExpectations(t)
}

func TestService_UpdateProject(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	existing := database.Project{ID: 1, Slug: "mutex", Name: "Mutex", CreatedAt: created, UpdatedAt: created}

	t.Run("an update without fields returns the current row without writing", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		store.On("GetProjectByID", ctx, int64(1)).Return(existing, nil).Once()

		project, err := svc.UpdateProject(ctx, model.UpdateProjectInput{ID: 1})

		require.NoError(t, err)
		assert.Equal(t, created, project.UpdatedAt)
		store.AssertNotCalled(t, "UpdateProject", mock.Anything, mock.Anything)
	})

	t.Run("an update without fields on a missing id returns nil", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		store.On("GetProjectByID", ctx, int64(42)).Return(database.Project{}, pgx.ErrNoRows).Once()

		project, err := svc.UpdateProject(ctx, model.UpdateProjectInput{ID: 42})

		assert.NoError(t, err)
		assert.Nil(t, project)
	})

	t.Run("only present fields are sent to storage", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		store.On("UpdateProject", ctx, database.UpdateProjectParams{
			ID:          1,
			Name:        pgtype.Text{String: "Mutex v2", Valid: true},
			GithubStars: pgtype.Int4{Int32: 300, Valid: true},
			IsFeatured:  pgtype.Bool{Bool: false, Valid: true},
		}).Return(database.Project{ID: 1, Name: "Mutex v2", GithubStars: 300, UpdatedAt: created.Add(time.Hour)}, nil).Once()

		project, err := svc.UpdateProject(ctx, model.UpdateProjectInput{
			ID:          1,
			Name:        model.Some("Mutex v2"),
			GithubStars: model.Some(int32(300)),
			IsFeatured:  model.Some(false),
		})

		require.NoError(t, err)
		assert.Equal(t, "Mutex v2", project.Name)
		assert.True(t, project.UpdatedAt.After(created))
		store.AssertExpectations(t)
	})

	t.Run("returns nil when the id does not exist", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		store.On("UpdateProject", ctx, mock.Anything).Return(database.Project{}, pgx.ErrNoRows).Once()

		project, err := svc.UpdateProject(ctx, model.UpdateProjectInput{ID: 7, Name: model.Some("x")})

		assert.NoError(t, err)
		assert.Nil(t, project)
	})

	t.Run("fails on a slug taken by another project", func(t *testing.T) {
		store := new(MockStore)
		svc := newTestService(store)
		store.On("UpdateProject", ctx, mock.Anything).Return(database.Project{}, &pgconn.PgError{Code: "23505"}).Once()

		_, err := svc.UpdateProject(ctx, model.UpdateProjectInput{ID: 1, Slug: model.Some("cli")})

		assert.ErrorIs(t, err, custom_errors.ErrUniqueConstraintViolation)
	})
}
