// cmd/service/commands.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"releasetools-site/internal/api"
	"releasetools-site/internal/content"
	"releasetools-site/internal/database"
	"releasetools-site/internal/github"
	"releasetools-site/internal/seed"
	"releasetools-site/internal/syncer"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return a.serve(ctx)
		},
	}
}

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrations(a.cfg.MigrationsPath, a.cfg.DBURL); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}
			a.logger.Info("Database migrations applied successfully")
			return nil
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return errors.New("--steps must be at least 1")
			}
			if err := rollbackMigrations(a.cfg.MigrationsPath, a.cfg.DBURL, steps); err != nil {
				return fmt.Errorf("failed to roll back database migrations: %w", err)
			}
			a.logger.Info("Database migrations rolled back", "steps", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load default site content from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.SeedFile
			}
			if file == "" {
				return errors.New("no seed file given; pass --file or set SEED_FILE")
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			dbpool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer dbpool.Close()

			svc := content.NewService(database.NewStore(dbpool), a.logger)
			return a.seedFromFile(ctx, svc, file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "seed file (defaults to SEED_FILE)")
	return cmd
}

func newSyncStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-stats",
		Short: "Refresh GitHub stars and forks for every project once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			dbpool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer dbpool.Close()

			statsSyncer, err := a.newSyncer(dbpool)
			if err != nil {
				return err
			}
			res := statsSyncer.RunOnce(ctx)
			if res.Failed > 0 {
				return fmt.Errorf("%d project(s) failed to sync", res.Failed)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}

// connect opens the pool and verifies the database is reachable.
func (a *app) connect(ctx context.Context) (*pgxpool.Pool, error) {
	dbpool, err := pgxpool.New(ctx, a.cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	a.logger.Info("Database connection established")
	return dbpool, nil
}

func (a *app) newSyncer(dbpool *pgxpool.Pool) (*syncer.Syncer, error) {
	ghClient := github.NewClient(a.cfg.GithubToken, a.logger)
	if a.cfg.GithubAPIURL != "" {
		if err := ghClient.SetBaseURL(a.cfg.GithubAPIURL); err != nil {
			return nil, fmt.Errorf("invalid GITHUB_API_URL: %w", err)
		}
	}
	return syncer.NewSyncer(database.New(dbpool), ghClient, a.logger, a.cfg.StatsSyncInterval, a.cfg.StatsSyncConcurrency), nil
}

func (a *app) seedFromFile(ctx context.Context, svc *content.Service, file string) error {
	doc, err := seed.LoadFile(file)
	if err != nil {
		return err
	}
	sum, err := seed.NewSeeder(svc, a.logger).Apply(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}
	a.logger.Info("Seed applied",
		"projects_created", sum.ProjectsCreated,
		"projects_skipped", sum.ProjectsSkipped,
		"pages_created", sum.PagesCreated,
		"pages_skipped", sum.PagesSkipped,
		"navigation_created", sum.NavigationCreated,
	)
	return nil
}

func (a *app) serve(ctx context.Context) error {
	dbpool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer dbpool.Close()

	if err := runMigrations(a.cfg.MigrationsPath, a.cfg.DBURL); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	a.logger.Info("Database migrations applied successfully")

	statsSyncer, err := a.newSyncer(dbpool)
	if err != nil {
		return err
	}

	svc := content.NewService(database.NewStore(dbpool), a.logger)
	if a.cfg.SeedFile != "" {
		if err := a.seedFromFile(ctx, svc, a.cfg.SeedFile); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr: a.cfg.HTTPAddr,
		Handler: api.NewRouter(svc, a.logger, api.Options{
			AllowedOrigins: a.cfg.AllowedOrigins,
			Registry:       prometheus.NewRegistry(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		statsSyncer.Start(gctx)
		return nil
	})
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "addr", a.cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutdown signal received, draining connections", "timeout", a.cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("Shutdown complete")
	return nil
}
