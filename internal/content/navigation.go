// internal/content/navigation.go
package content

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"releasetools-site/internal/database"
	custom_errors "releasetools-site/internal/errors"
	"releasetools-site/internal/model"
)

// CreateNavigationItem validates the page slug and, when given, the parent id before inserting.
// page_slug and parent_id carry no foreign keys, so this is the only integrity check for them.
// The checks and the insert share one transaction and the referenced rows are read FOR SHARE,
// so neither can disappear between validation and insert.
func (s *Service) CreateNavigationItem(ctx context.Context, in model.CreateNavigationItemInput) (*model.NavigationItem, error) {
	logger := s.logger.With("page_slug", in.PageSlug, "anchor", in.Anchor)

	var created database.NavigationItem
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.GetPageIDBySlugForShare(ctx, in.PageSlug); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &custom_errors.ReferenceNotFound{Entity: "page", Key: in.PageSlug}
			}
			return fmt.Errorf("failed to look up page %q: %w", in.PageSlug, err)
		}

		parent := pgtype.Int8{}
		if in.ParentID != nil {
			if _, err := q.GetNavigationItemIDForShare(ctx, *in.ParentID); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return &custom_errors.ReferenceNotFound{Entity: "navigation_item", Key: strconv.FormatInt(*in.ParentID, 10)}
				}
				return fmt.Errorf("failed to look up parent navigation item %d: %w", *in.ParentID, err)
			}
			parent = pgtype.Int8{Int64: *in.ParentID, Valid: true}
		}

		row, err := q.CreateNavigationItem(ctx, database.CreateNavigationItemParams{
			PageSlug: in.PageSlug,
			Title:    in.Title,
			Anchor:   in.Anchor,
			Order:    orderValue(in.Order),
			ParentID: parent,
		})
		if err != nil {
			return fmt.Errorf("failed to insert navigation item: %w", database.TranslateError(err))
		}
		created = row
		return nil
	})
	if errors.Is(err, custom_errors.ErrReferenceNotFound) {
		logger.Warn("Navigation item rejected", "reason", err)
		return nil, err
	}
	if err != nil {
		logger.Error("Navigation item creation failed", "error", err)
		return nil, err
	}

	logger.Info("Navigation item created", "id", created.ID, "parent_id", created.ParentID.Int64)
	return toNavigationItemModel(created), nil
}

// GetNavigationByPageSlug returns the page's navigation items as a flat list ordered by order.
// Unknown slugs yield an empty list.
func (s *Service) GetNavigationByPageSlug(ctx context.Context, pageSlug string) ([]*model.NavigationItem, error) {
	rows, err := s.store.ListNavigationItemsByPageSlug(ctx, pageSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch navigation items for page %q: %w", pageSlug, err)
	}
	items := make([]*model.NavigationItem, len(rows))
	for i, row := range rows {
		items[i] = toNavigationItemModel(row)
	}
	return items, nil
}

func orderValue(order *int32) int32 {
	if order == nil {
		return 0
	}
	return *order
}
