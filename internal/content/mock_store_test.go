// internal/content/mock_store_test.go
package content

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"releasetools-site/internal/database"
)

// MockStore is a mock of the database.Store interface.
// ExecTx runs the callback against the mock itself.
type MockStore struct {
	mock.Mock
}

var _ database.Store = (*MockStore)(nil)

func (m *MockStore) ExecTx(ctx context.Context, fn func(database.Querier) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *MockStore) CreateNavigationItem(ctx context.Context, arg database.CreateNavigationItemParams) (database.NavigationItem, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.NavigationItem), args.Error(1)
}
func (m *MockStore) CreatePage(ctx context.Context, arg database.CreatePageParams) (database.Page, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Page), args.Error(1)
}
func (m *MockStore) CreateProject(ctx context.Context, arg database.CreateProjectParams) (database.Project, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Project), args.Error(1)
}
func (m *MockStore) GetNavigationItemIDForShare(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockStore) GetPageByID(ctx context.Context, id int64) (database.Page, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(database.Page), args.Error(1)
}
func (m *MockStore) GetPageIDBySlugForShare(ctx context.Context, slug string) (int64, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockStore) GetProjectByID(ctx context.Context, id int64) (database.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(database.Project), args.Error(1)
}
func (m *MockStore) GetProjectBySlug(ctx context.Context, slug string) (database.Project, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(database.Project), args.Error(1)
}
func (m *MockStore) GetPublishedPageBySlug(ctx context.Context, slug string) (database.Page, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(database.Page), args.Error(1)
}
func (m *MockStore) ListFeaturedProjects(ctx context.Context) ([]database.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Project), args.Error(1)
}
func (m *MockStore) ListNavigationItemsByPageSlug(ctx context.Context, pageSlug string) ([]database.NavigationItem, error) {
	args := m.Called(ctx, pageSlug)
	return args.Get(0).([]database.NavigationItem), args.Error(1)
}
func (m *MockStore) ListPages(ctx context.Context) ([]database.Page, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Page), args.Error(1)
}
func (m *MockStore) ListProjects(ctx context.Context) ([]database.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Project), args.Error(1)
}
func (m *MockStore) ListPublishedPages(ctx context.Context) ([]database.Page, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Page), args.Error(1)
}
func (m *MockStore) UpdatePage(ctx context.Context, arg database.UpdatePageParams) (database.Page, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Page), args.Error(1)
}
func (m *MockStore) UpdateProject(ctx context.Context, arg database.UpdateProjectParams) (database.Project, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Project), args.Error(1)
}
func (m *MockStore) UpdateProjectGithubStats(ctx context.Context, arg database.UpdateProjectGithubStatsParams) (database.Project, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Project), args.Error(1)
}

func newTestService(store database.Store) *Service {
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func int32Ptr(v int32) *int32 { return &v }
