// internal/database/pages.sql.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const pageColumns = `id, slug, title, content, meta_description, is_published, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (Page, error) {
	var i Page
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Title,
		&i.Content,
		&i.MetaDescription,
		&i.IsPublished,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) listPages(ctx context.Context, query string, args ...interface{}) ([]Page, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Page{}
	for rows.Next() {
		i, err := scanPage(rows)
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

const createPage = `-- name: CreatePage :one
INSERT INTO pages (slug, title, content, meta_description, is_published)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + pageColumns

type CreatePageParams struct {
	Slug            string
	Title           string
	Content         string
	MetaDescription pgtype.Text
	IsPublished     bool
}

func (q *Queries) CreatePage(ctx context.Context, arg CreatePageParams) (Page, error) {
	row := q.db.QueryRow(ctx, createPage,
		arg.Slug,
		arg.Title,
		arg.Content,
		arg.MetaDescription,
		arg.IsPublished,
	)
	return scanPage(row)
}

const listPages = `-- name: ListPages :many
SELECT ` + pageColumns + ` FROM pages
ORDER BY title ASC, id ASC`

func (q *Queries) ListPages(ctx context.Context) ([]Page, error) {
	return q.listPages(ctx, listPages)
}

const listPublishedPages = `-- name: ListPublishedPages :many
SELECT ` + pageColumns + ` FROM pages
WHERE is_published = true
ORDER BY title ASC, id ASC`

func (q *Queries) ListPublishedPages(ctx context.Context) ([]Page, error) {
	return q.listPages(ctx, listPublishedPages)
}

const getPublishedPageBySlug = `-- name: GetPublishedPageBySlug :one
SELECT ` + pageColumns + ` FROM pages
WHERE slug = $1 AND is_published = true
LIMIT 1`

func (q *Queries) GetPublishedPageBySlug(ctx context.Context, slug string) (Page, error) {
	return scanPage(q.db.QueryRow(ctx, getPublishedPageBySlug, slug))
}

const getPageByID = `-- name: GetPageByID :one
SELECT ` + pageColumns + ` FROM pages
WHERE id = $1`

func (q *Queries) GetPageByID(ctx context.Context, id int64) (Page, error) {
	return scanPage(q.db.QueryRow(ctx, getPageByID, id))
}

const getPageIDBySlugForShare = `-- name: GetPageIDBySlugForShare :one
SELECT id FROM pages
WHERE slug = $1
FOR SHARE`

func (q *Queries) GetPageIDBySlugForShare(ctx context.Context, slug string) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, getPageIDBySlugForShare, slug).Scan(&id)
	return id, err
}

const updatePage = `-- name: UpdatePage :one
UPDATE pages SET
    slug             = COALESCE($2::text, slug),
    title            = COALESCE($3::text, title),
    content          = COALESCE($4::text, content),
    meta_description = CASE WHEN $5::boolean THEN $6::text ELSE meta_description END,
    is_published     = COALESCE($7::boolean, is_published),
    updated_at       = now()
WHERE id = $1
RETURNING ` + pageColumns

// UpdatePageParams leaves a column untouched when its field is not Valid.
// MetaDescription is only written when SetMetaDescription is true, which allows writing NULL.
type UpdatePageParams struct {
	ID                 int64
	Slug               pgtype.Text
	Title              pgtype.Text
	Content            pgtype.Text
	SetMetaDescription bool
	MetaDescription    pgtype.Text
	IsPublished        pgtype.Bool
}

func (q *Queries) UpdatePage(ctx context.Context, arg UpdatePageParams) (Page, error) {
	row := q.db.QueryRow(ctx, updatePage,
		arg.ID,
		arg.Slug,
		arg.Title,
		arg.Content,
		arg.SetMetaDescription,
		arg.MetaDescription,
		arg.IsPublished,
	)
	return scanPage(row)
}
