// internal/content/pages.go
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"releasetools-site/internal/database"
	"releasetools-site/internal/model"
)

// CreatePage stores a new page. meta_description defaults to null and is_published to true.
func (s *Service) CreatePage(ctx context.Context, in model.CreatePageInput) (*model.Page, error) {
	params := database.CreatePageParams{
		Slug:        in.Slug,
		Title:       in.Title,
		Content:     in.Content,
		IsPublished: true,
	}
	if in.MetaDescription != nil {
		params.MetaDescription = pgtype.Text{String: *in.MetaDescription, Valid: true}
	}
	if in.IsPublished != nil {
		params.IsPublished = *in.IsPublished
	}

	row, err := s.store.CreatePage(ctx, params)
	if err != nil {
		s.logger.Error("Page creation failed", "slug", in.Slug, "error", err)
		return nil, fmt.Errorf("failed to create page %q: %w", in.Slug, database.TranslateError(err))
	}
	s.logger.Info("Page created", "id", row.ID, "slug", row.Slug, "published", row.IsPublished)
	return toPageModel(row), nil
}

// GetPages returns every page, published or not, ordered by title.
func (s *Service) GetPages(ctx context.Context) ([]*model.Page, error) {
	rows, err := s.store.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pages: %w", err)
	}
	return toPageModels(rows), nil
}

// GetPublishedPages returns published pages ordered by title.
func (s *Service) GetPublishedPages(ctx context.Context) ([]*model.Page, error) {
	rows, err := s.store.ListPublishedPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published pages: %w", err)
	}
	return toPageModels(rows), nil
}

// GetPageBySlug returns the page only when it exists and is published.
// An unpublished page is reported exactly like a missing one: nil, nil.
func (s *Service) GetPageBySlug(ctx context.Context, slug string) (*model.Page, error) {
	row, err := s.store.GetPublishedPageBySlug(ctx, slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page by slug %q: %w", slug, err)
	}
	return toPageModel(row), nil
}

// UpdatePage applies the fields present in the input and refreshes updated_at.
// An input without fields performs no write and returns the current row.
// Returns nil when the id does not exist.
func (s *Service) UpdatePage(ctx context.Context, in model.UpdatePageInput) (*model.Page, error) {
	logger := s.logger.With("page_id", in.ID)

	if in.Empty() {
		logger.Debug("Page update carries no fields, returning current row")
		row, err := s.store.GetPageByID(ctx, in.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get page %d: %w", in.ID, err)
		}
		return toPageModel(row), nil
	}

	params := database.UpdatePageParams{
		ID:                 in.ID,
		Slug:               textParam(in.Slug),
		Title:              textParam(in.Title),
		Content:            textParam(in.Content),
		SetMetaDescription: in.MetaDescription.Set,
		IsPublished:        boolParam(in.IsPublished),
	}
	if in.MetaDescription.Set && !in.MetaDescription.Null {
		params.MetaDescription = pgtype.Text{String: in.MetaDescription.Value, Valid: true}
	}

	row, err := s.store.UpdatePage(ctx, params)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Info("Page to update not found")
		return nil, nil
	}
	if err != nil {
		logger.Error("Page update failed", "error", err)
		return nil, fmt.Errorf("failed to update page %d: %w", in.ID, database.TranslateError(err))
	}
	logger.Info("Page updated")
	return toPageModel(row), nil
}

func toPageModels(rows []database.Page) []*model.Page {
	pages := make([]*model.Page, len(rows))
	for i, row := range rows {
		pages[i] = toPageModel(row)
	}
	return pages
}
