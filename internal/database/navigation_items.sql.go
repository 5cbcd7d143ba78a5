// internal/database/navigation_items.sql.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const navigationItemColumns = `id, page_slug, title, anchor, "order", parent_id, created_at`

func scanNavigationItem(row interface{ Scan(...any) error }) (NavigationItem, error) {
	var i NavigationItem
	err := row.Scan(
		&i.ID,
		&i.PageSlug,
		&i.Title,
		&i.Anchor,
		&i.Order,
		&i.ParentID,
		&i.CreatedAt,
	)
	return i, err
}

const createNavigationItem = `-- name: CreateNavigationItem :one
INSERT INTO navigation_items (page_slug, title, anchor, "order", parent_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + navigationItemColumns

type CreateNavigationItemParams struct {
	PageSlug string
	Title    string
	Anchor   string
	Order    int32
	ParentID pgtype.Int8
}

func (q *Queries) CreateNavigationItem(ctx context.Context, arg CreateNavigationItemParams) (NavigationItem, error) {
	row := q.db.QueryRow(ctx, createNavigationItem,
		arg.PageSlug,
		arg.Title,
		arg.Anchor,
		arg.Order,
		arg.ParentID,
	)
	return scanNavigationItem(row)
}

const getNavigationItemIDForShare = `-- name: GetNavigationItemIDForShare :one
SELECT id FROM navigation_items
WHERE id = $1
FOR SHARE`

func (q *Queries) GetNavigationItemIDForShare(ctx context.Context, id int64) (int64, error) {
	var found int64
	err := q.db.QueryRow(ctx, getNavigationItemIDForShare, id).Scan(&found)
	return found, err
}

const listNavigationItemsByPageSlug = `-- name: ListNavigationItemsByPageSlug :many
SELECT ` + navigationItemColumns + ` FROM navigation_items
WHERE page_slug = $1
ORDER BY "order" ASC, id ASC`

func (q *Queries) ListNavigationItemsByPageSlug(ctx context.Context, pageSlug string) ([]NavigationItem, error) {
	rows, err := q.db.Query(ctx, listNavigationItemsByPageSlug, pageSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []NavigationItem{}
	for rows.Next() {
		i, err := scanNavigationItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
