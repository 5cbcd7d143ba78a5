// internal/model/models.go
package model

import "time"

// DefaultLicense is applied to projects created without an explicit license.
const DefaultLicense = "Apache-2.0"

// Project is one tool of the suite as shown on the site.
type Project struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	GithubURL   string    `json:"github_url"`
	GithubStars int32     `json:"github_stars"`
	GithubForks int32     `json:"github_forks"`
	License     string    `json:"license"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Page is a content page. Content is markdown and unbounded.
type Page struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaDescription *string   `json:"meta_description"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NavigationItem is a sidebar entry pointing at an anchor inside a page.
// PageSlug and ParentID are soft references validated only at creation.
type NavigationItem struct {
	ID        int64     `json:"id"`
	PageSlug  string    `json:"page_slug"`
	Title     string    `json:"title"`
	Anchor    string    `json:"anchor"`
	Order     int32     `json:"order"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RepoStats holds the GitHub counters mirrored onto a project.
type RepoStats struct {
	Owner string
	Name  string
	Stars int
	Forks int
}
