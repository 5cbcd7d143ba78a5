// internal/database/projects.sql.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const projectColumns = `id, slug, name, description, github_url, github_stars, github_forks, license, is_featured, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (Project, error) {
	var i Project
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Name,
		&i.Description,
		&i.GithubUrl,
		&i.GithubStars,
		&i.GithubForks,
		&i.License,
		&i.IsFeatured,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) listProjects(ctx context.Context, query string, args ...interface{}) ([]Project, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Project{}
	for rows.Next() {
		i, err := scanProject(rows)
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

const createProject = `-- name: CreateProject :one
INSERT INTO projects (slug, name, description, github_url, github_stars, github_forks, license, is_featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + projectColumns

type CreateProjectParams struct {
	Slug        string
	Name        string
	Description string
	GithubUrl   string
	GithubStars int32
	GithubForks int32
	License     string
	IsFeatured  bool
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	row := q.db.QueryRow(ctx, createProject,
		arg.Slug,
		arg.Name,
		arg.Description,
		arg.GithubUrl,
		arg.GithubStars,
		arg.GithubForks,
		arg.License,
		arg.IsFeatured,
	)
	return scanProject(row)
}

const listProjects = `-- name: ListProjects :many
SELECT ` + projectColumns + ` FROM projects
ORDER BY is_featured DESC, created_at DESC, id DESC`

func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	return q.listProjects(ctx, listProjects)
}

const listFeaturedProjects = `-- name: ListFeaturedProjects :many
SELECT ` + projectColumns + ` FROM projects
WHERE is_featured = true
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListFeaturedProjects(ctx context.Context) ([]Project, error) {
	return q.listProjects(ctx, listFeaturedProjects)
}

const getProjectBySlug = `-- name: GetProjectBySlug :one
SELECT ` + projectColumns + ` FROM projects
WHERE slug = $1
LIMIT 1`

func (q *Queries) GetProjectBySlug(ctx context.Context, slug string) (Project, error) {
	return scanProject(q.db.QueryRow(ctx, getProjectBySlug, slug))
}

const getProjectByID = `-- name: GetProjectByID :one
SELECT ` + projectColumns + ` FROM projects
WHERE id = $1`

func (q *Queries) GetProjectByID(ctx context.Context, id int64) (Project, error) {
	return scanProject(q.db.QueryRow(ctx, getProjectByID, id))
}

const updateProject = `-- name: UpdateProject :one
UPDATE projects SET
    slug         = COALESCE($2::text, slug),
    name         = COALESCE($3::text, name),
    description  = COALESCE($4::text, description),
    github_url   = COALESCE($5::text, github_url),
    github_stars = COALESCE($6::integer, github_stars),
    github_forks = COALESCE($7::integer, github_forks),
    license      = COALESCE($8::text, license),
    is_featured  = COALESCE($9::boolean, is_featured),
    updated_at   = now()
WHERE id = $1
RETURNING ` + projectColumns

// UpdateProjectParams leaves a column untouched when its field is not Valid.
type UpdateProjectParams struct {
	ID          int64
	Slug        pgtype.Text
	Name        pgtype.Text
	Description pgtype.Text
	GithubUrl   pgtype.Text
	GithubStars pgtype.Int4
	GithubForks pgtype.Int4
	License     pgtype.Text
	IsFeatured  pgtype.Bool
}

func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (Project, error) {
	row := q.db.QueryRow(ctx, updateProject,
		arg.ID,
		arg.Slug,
		arg.Name,
		arg.Description,
		arg.GithubUrl,
		arg.GithubStars,
		arg.GithubForks,
		arg.License,
		arg.IsFeatured,
	)
	return scanProject(row)
}

const updateProjectGithubStats = `-- name: UpdateProjectGithubStats :one
UPDATE projects SET
    github_stars = $2,
    github_forks = $3,
    updated_at   = now()
WHERE id = $1
RETURNING ` + projectColumns

type UpdateProjectGithubStatsParams struct {
	ID          int64
	GithubStars int32
	GithubForks int32
}

func (q *Queries) UpdateProjectGithubStats(ctx context.Context, arg UpdateProjectGithubStatsParams) (Project, error) {
	return scanProject(q.db.QueryRow(ctx, updateProjectGithubStats, arg.ID, arg.GithubStars, arg.GithubForks))
}
