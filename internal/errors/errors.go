// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUniqueConstraintViolation matches any UniqueConstraintViolation via errors.Is.
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	// ErrReferenceNotFound matches any ReferenceNotFound via errors.Is.
	ErrReferenceNotFound = errors.New("reference not found")
)

// UniqueConstraintViolation is returned when a write would duplicate a unique column such as a slug.
type UniqueConstraintViolation struct {
	Table      string
	Constraint string
	Err        error
}

func (e *UniqueConstraintViolation) Error() string {
	return fmt.Sprintf("unique constraint %q violated on table %q", e.Constraint, e.Table)
}

func (e *UniqueConstraintViolation) Unwrap() error { return e.Err }

func (e *UniqueConstraintViolation) Is(target error) bool {
	return target == ErrUniqueConstraintViolation
}

// ReferenceNotFound is returned when a soft reference does not resolve to an existing row.
type ReferenceNotFound struct {
	Entity string
	Key    string
}

func (e *ReferenceNotFound) Error() string {
	switch e.Entity {
	case "page":
		return fmt.Sprintf("page with slug '%s' does not exist", e.Key)
	case "navigation_item":
		return fmt.Sprintf("parent navigation item with id '%s' does not exist", e.Key)
	default:
		return fmt.Sprintf("%s %q does not exist", e.Entity, e.Key)
	}
}

func (e *ReferenceNotFound) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// ErrInvalidRepoURL is returned when a project's github_url does not name a github.com repository.
type ErrInvalidRepoURL struct {
	URL string
}

func (e *ErrInvalidRepoURL) Error() string {
	return fmt.Sprintf("invalid repository url: %q, expected 'https://github.com/owner/name'", e.URL)
}
