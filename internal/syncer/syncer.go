// internal/syncer/syncer.go
package syncer

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"releasetools-site/internal/database"
	"releasetools-site/internal/github"
	"releasetools-site/internal/model"
)

// StatsFetcher returns live repository counters. *github.Client implements it.
type StatsFetcher interface {
	GetRepositoryStats(ctx context.Context, owner, name string) (*model.RepoStats, error)
}

// Result summarises one sync cycle.
type Result struct {
	Updated int
	Skipped int
	Failed  int
}

// Syncer mirrors GitHub stars and forks onto the stored projects.
type Syncer struct {
	db           database.Querier
	ghClient     StatsFetcher
	logger       *slog.Logger
	syncInterval time.Duration
	concurrency  int
}

// NewSyncer creates a new Syncer instance.
func NewSyncer(db database.Querier, ghClient StatsFetcher, logger *slog.Logger, interval time.Duration, concurrency int) *Syncer {
	return &Syncer{
		db:           db,
		ghClient:     ghClient,
		logger:       logger.With("component", "stats-syncer"),
		syncInterval: interval,
		concurrency:  max(concurrency, 1),
	}
}

// Start begins the periodic synchronization and blocks until ctx is cancelled.
// A non-positive interval disables the syncer.
func (s *Syncer) Start(ctx context.Context) {
	if s.syncInterval <= 0 {
		s.logger.Info("Syncer disabled")
		return
	}
	s.logger.Info("Starting syncer", "interval", s.syncInterval.String(), "concurrency", s.concurrency)
	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	s.RunOnce(ctx) // Initial sync

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("Syncer shutting down", "reason", ctx.Err())
			return
		}
	}
}

// RunOnce performs a synchronization pass over all projects concurrently.
// Failures on individual projects are logged and counted, never fatal.
func (s *Syncer) RunOnce(ctx context.Context) Result {
	s.logger.Info("Starting new sync cycle")

	projects, err := s.db.ListProjects(ctx)
	if err != nil {
		s.logger.Error("Failed to list projects", "error", err)
		return Result{}
	}

	var updated, skipped, failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, project := range projects {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			ok, err := s.syncProject(gctx, project)
			switch {
			case err != nil && !errors.Is(err, context.Canceled):
				s.logger.Error("Failed to sync project", "slug", project.Slug, "error", err)
				failed.Add(1)
			case err != nil:
			case ok:
				updated.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Updated: int(updated.Load()), Skipped: int(skipped.Load()), Failed: int(failed.Load())}
	s.logger.Info("Sync cycle finished", "updated", res.Updated, "skipped", res.Skipped, "failed", res.Failed)
	return res
}

// syncProject refreshes one project's counters. It reports false when nothing was written.
func (s *Syncer) syncProject(ctx context.Context, project database.Project) (bool, error) {
	logger := s.logger.With("slug", project.Slug)

	owner, name, err := github.ParseRepoURL(project.GithubUrl)
	if err != nil {
		logger.Debug("Skipping project without a GitHub repository URL", "github_url", project.GithubUrl)
		return false, nil
	}

	stats, err := s.ghClient.GetRepositoryStats(ctx, owner, name)
	if err != nil {
		return false, err
	}

	stars, forks := clampInt32(stats.Stars), clampInt32(stats.Forks)
	if stars == project.GithubStars && forks == project.GithubForks {
		logger.Debug("Counters unchanged", "stars", stars, "forks", forks)
		return false, nil
	}

	_, err = s.db.UpdateProjectGithubStats(ctx, database.UpdateProjectGithubStatsParams{
		ID:          project.ID,
		GithubStars: stars,
		GithubForks: forks,
	})
	if err != nil {
		return false, err
	}
	logger.Info("Updated GitHub counters", "stars", stars, "forks", forks)
	return true, nil
}

func clampInt32(n int) int32 {
	switch {
	case n < 0:
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(n)
	}
}
