// internal/model/inputs.go
package model

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field that is either absent or carries a value.
// A JSON null is treated as absent.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// Nullable is a patch field for a nullable column: absent, explicit null, or a value.
type Nullable[T any] struct {
	Value T
	Null  bool
	Set   bool
}

// Null returns a present Nullable holding null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Null: true, Set: true}
}

// Value returns a present, non-null Nullable.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value, n.Null = zero, true
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

// Ptr returns nil for an explicit null, otherwise a pointer to the value.
func (n Nullable[T]) Ptr() *T {
	if n.Null || !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// ReservedProjectSlug and ReservedPageSlug collide with static list routes and cannot be used as slugs.
const (
	ReservedProjectSlug = "featured"
	ReservedPageSlug    = "published"
)

// CreateProjectInput carries a new project. Nil optional fields take their defaults.
type CreateProjectInput struct {
	Slug        string  `json:"slug" validate:"required,ne=featured"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	GithubURL   string  `json:"github_url" validate:"required,url"`
	GithubStars *int32  `json:"github_stars" validate:"omitempty,gte=0"`
	GithubForks *int32  `json:"github_forks" validate:"omitempty,gte=0"`
	License     *string `json:"license"`
	IsFeatured  *bool   `json:"is_featured"`
}

// UpdateProjectInput is a partial update of a project; only Set fields are written.
type UpdateProjectInput struct {
	ID          int64            `json:"id"`
	Slug        Optional[string] `json:"slug"`
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
	GithubURL   Optional[string] `json:"github_url"`
	GithubStars Optional[int32]  `json:"github_stars"`
	GithubForks Optional[int32]  `json:"github_forks"`
	License     Optional[string] `json:"license"`
	IsFeatured  Optional[bool]   `json:"is_featured"`
}

// Empty reports whether the update carries no caller-supplied field.
func (in UpdateProjectInput) Empty() bool {
	return !in.Slug.Set && !in.Name.Set && !in.Description.Set && !in.GithubURL.Set &&
		!in.GithubStars.Set && !in.GithubForks.Set && !in.License.Set && !in.IsFeatured.Set
}

// CreatePageInput carries a new page.
type CreatePageInput struct {
	Slug            string  `json:"slug" validate:"required,ne=published"`
	Title           string  `json:"title" validate:"required"`
	Content         string  `json:"content" validate:"required"`
	MetaDescription *string `json:"meta_description"`
	IsPublished     *bool   `json:"is_published"`
}

// UpdatePageInput is a partial update of a page. MetaDescription may be set to null.
type UpdatePageInput struct {
	ID              int64            `json:"id"`
	Slug            Optional[string] `json:"slug"`
	Title           Optional[string] `json:"title"`
	Content         Optional[string] `json:"content"`
	MetaDescription Nullable[string] `json:"meta_description"`
	IsPublished     Optional[bool]   `json:"is_published"`
}

// Empty reports whether the update carries no caller-supplied field.
func (in UpdatePageInput) Empty() bool {
	return !in.Slug.Set && !in.Title.Set && !in.Content.Set && !in.MetaDescription.Set && !in.IsPublished.Set
}

// CreateNavigationItemInput carries a new navigation item. A nil ParentID makes a root entry.
type CreateNavigationItemInput struct {
	PageSlug string `json:"page_slug" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Anchor   string `json:"anchor" validate:"required"`
	Order    *int32 `json:"order" validate:"required,gte=0"`
	ParentID *int64 `json:"parent_id"`
}
