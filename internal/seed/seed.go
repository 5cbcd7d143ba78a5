// internal/seed/seed.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	custom_errors "releasetools-site/internal/errors"
	"releasetools-site/internal/model"
)

// ContentWriter is the subset of the content service the seeder writes through.
type ContentWriter interface {
	CreateProject(ctx context.Context, in model.CreateProjectInput) (*model.Project, error)
	CreatePage(ctx context.Context, in model.CreatePageInput) (*model.Page, error)
	CreateNavigationItem(ctx context.Context, in model.CreateNavigationItemInput) (*model.NavigationItem, error)
	GetNavigationByPageSlug(ctx context.Context, pageSlug string) ([]*model.NavigationItem, error)
}

// Document is the on-disk shape of a seed file.
type Document struct {
	Projects []Project `yaml:"projects"`
	Pages    []Page    `yaml:"pages"`
}

type Project struct {
	Slug        string  `yaml:"slug"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	GithubURL   string  `yaml:"github_url"`
	GithubStars *int32  `yaml:"github_stars"`
	GithubForks *int32  `yaml:"github_forks"`
	License     *string `yaml:"license"`
	IsFeatured  *bool   `yaml:"is_featured"`
}

type Page struct {
	Slug            string           `yaml:"slug"`
	Title           string           `yaml:"title"`
	Content         string           `yaml:"content"`
	MetaDescription *string          `yaml:"meta_description"`
	IsPublished     *bool            `yaml:"is_published"`
	Navigation      []NavigationItem `yaml:"navigation"`
}

// NavigationItem is a sidebar entry. Order defaults to the entry's position among its siblings.
type NavigationItem struct {
	Title    string           `yaml:"title"`
	Anchor   string           `yaml:"anchor"`
	Order    *int32           `yaml:"order"`
	Children []NavigationItem `yaml:"children"`
}

// Summary counts what a seeding run did.
type Summary struct {
	ProjectsCreated   int
	ProjectsSkipped   int
	PagesCreated      int
	PagesSkipped      int
	NavigationCreated int
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a seed document, rejecting unknown keys.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return &doc, nil
}

// Seeder applies a Document through the content service.
type Seeder struct {
	w        ContentWriter
	logger   *slog.Logger
	validate *validator.Validate
}

func NewSeeder(w ContentWriter, logger *slog.Logger) *Seeder {
	return &Seeder{
		w:        w,
		logger:   logger.With("component", "seeder"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Apply creates every project and page that does not exist yet. Existing slugs are skipped.
// Navigation is created for new pages and for existing pages that have none yet, so a run
// interrupted after a page insert is completed by the next one. A second full run is a no-op.
func (s *Seeder) Apply(ctx context.Context, doc *Document) (Summary, error) {
	var sum Summary

	for _, p := range doc.Projects {
		in := model.CreateProjectInput{
			Slug:        p.Slug,
			Name:        p.Name,
			Description: p.Description,
			GithubURL:   p.GithubURL,
			GithubStars: p.GithubStars,
			GithubForks: p.GithubForks,
			License:     p.License,
			IsFeatured:  p.IsFeatured,
		}
		if err := s.validate.Struct(in); err != nil {
			return sum, fmt.Errorf("invalid project %q: %w", p.Slug, err)
		}
		created, err := s.w.CreateProject(ctx, in)
		if errors.Is(err, custom_errors.ErrUniqueConstraintViolation) {
			s.logger.Debug("Project already present, skipping", "slug", p.Slug)
			sum.ProjectsSkipped++
			continue
		}
		if err != nil {
			return sum, fmt.Errorf("failed to seed project %q: %w", p.Slug, err)
		}
		s.logger.Info("Seeded project", "slug", created.Slug, "id", created.ID)
		sum.ProjectsCreated++
	}

	for _, p := range doc.Pages {
		in := model.CreatePageInput{
			Slug:            p.Slug,
			Title:           p.Title,
			Content:         p.Content,
			MetaDescription: p.MetaDescription,
			IsPublished:     p.IsPublished,
		}
		if err := s.validate.Struct(in); err != nil {
			return sum, fmt.Errorf("invalid page %q: %w", p.Slug, err)
		}
		created, err := s.w.CreatePage(ctx, in)
		switch {
		case errors.Is(err, custom_errors.ErrUniqueConstraintViolation):
			s.logger.Debug("Page already present, skipping", "slug", p.Slug)
			sum.PagesSkipped++
			if len(p.Navigation) == 0 {
				continue
			}
			existing, err := s.w.GetNavigationByPageSlug(ctx, p.Slug)
			if err != nil {
				return sum, fmt.Errorf("failed to read navigation for page %q: %w", p.Slug, err)
			}
			if len(existing) > 0 {
				continue
			}
			s.logger.Info("Existing page has no navigation, creating it", "slug", p.Slug)
		case err != nil:
			return sum, fmt.Errorf("failed to seed page %q: %w", p.Slug, err)
		default:
			s.logger.Info("Seeded page", "slug", created.Slug, "id", created.ID)
			sum.PagesCreated++
		}

		n, err := s.createNavigation(ctx, p.Slug, nil, p.Navigation)
		sum.NavigationCreated += n
		if err != nil {
			return sum, fmt.Errorf("failed to seed navigation for page %q: %w", p.Slug, err)
		}
	}

	return sum, nil
}

// createNavigation inserts items depth-first so every child knows its parent's id.
func (s *Seeder) createNavigation(ctx context.Context, pageSlug string, parentID *int64, items []NavigationItem) (int, error) {
	count := 0
	for i, item := range items {
		order := int32(i)
		if item.Order != nil {
			order = *item.Order
		}
		in := model.CreateNavigationItemInput{
			PageSlug: pageSlug,
			Title:    item.Title,
			Anchor:   item.Anchor,
			Order:    &order,
			ParentID: parentID,
		}
		if err := s.validate.Struct(in); err != nil {
			return count, fmt.Errorf("invalid navigation item %q: %w", item.Anchor, err)
		}
		created, err := s.w.CreateNavigationItem(ctx, in)
		if err != nil {
			return count, err
		}
		count++

		n, err := s.createNavigation(ctx, pageSlug, &created.ID, item.Children)
		count += n
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
