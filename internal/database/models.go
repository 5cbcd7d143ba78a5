// internal/database/models.go
package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type NavigationItem struct {
	ID        int64
	PageSlug  string
	Title     string
	Anchor    string
	Order     int32
	ParentID  pgtype.Int8
	CreatedAt time.Time
}

type Page struct {
	ID              int64
	Slug            string
	Title           string
	Content         string
	MetaDescription pgtype.Text
	IsPublished     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Project struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	GithubUrl   string
	GithubStars int32
	GithubForks int32
	License     string
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
