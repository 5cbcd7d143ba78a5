// internal/github/client.go
package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	custom_errors "releasetools-site/internal/errors"
	"releasetools-site/internal/model"
)

const (
	// maxRetries is the total number of attempts made for one request.
	maxRetries  = 3
	baseBackoff = 500 * time.Millisecond
	// rateLimitSlack is added to the advertised reset time before retrying.
	rateLimitSlack = time.Second
	// maxRateLimitWait caps how long a single request waits for a rate limit reset.
	maxRateLimitWait = 15 * time.Minute
)

// Client is a wrapper around the go-github client.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewClient creates and configures a new Client instance.
// An empty token yields an unauthenticated client with GitHub's lower rate limit.
func NewClient(token string, logger *slog.Logger) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &Client{
		gh:     github.NewClient(httpClient),
		logger: logger,
		sleep:  sleepContext,
	}
}

// SetBaseURL points the client at another API root, such as a GitHub Enterprise server.
func (c *Client) SetBaseURL(raw string) error {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	c.gh.BaseURL = u
	return nil
}

// GetRepositoryStats fetches the star and fork counts of a repository.
// Server errors are retried with exponential backoff and rate limits are waited out.
func (c *Client) GetRepositoryStats(ctx context.Context, owner, name string) (*model.RepoStats, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
		if err == nil {
			return toRepoStats(repo), nil
		}
		lastErr = err

		wait, retry := c.retryDelay(err, attempt)
		if !retry || attempt == maxRetries-1 {
			break
		}
		c.logger.Warn("GitHub request failed, retrying",
			"owner", owner, "repo", name, "attempt", attempt+1, "wait", wait.String(), "error", err)
		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

// retryDelay decides whether err is worth retrying and how long to wait first.
func (c *Client) retryDelay(err error, attempt int) (time.Duration, bool) {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		wait := time.Until(rateErr.Rate.Reset.Time) + rateLimitSlack
		if wait > maxRateLimitWait {
			return 0, false
		}
		return max(wait, 0), true
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return abuseErr.GetRetryAfter(), true
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode >= http.StatusInternalServerError {
		return baseBackoff << attempt, true
	}
	return 0, false
}

// ParseRepoURL extracts owner and name from a github.com repository URL such as
// https://github.com/releasetools/mutex (a trailing slash or .git suffix is accepted).
func ParseRepoURL(raw string) (owner, name string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || !strings.EqualFold(u.Host, "github.com") {
		return "", "", &custom_errors.ErrInvalidRepoURL{URL: raw}
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &custom_errors.ErrInvalidRepoURL{URL: raw}
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// toRepoStats translates a github.Repository object to our internal model.RepoStats.
func toRepoStats(r *github.Repository) *model.RepoStats {
	return &model.RepoStats{
		Owner: r.GetOwner().GetLogin(),
		Name:  r.GetName(),
		Stars: r.GetStargazersCount(),
		Forks: r.GetForksCount(),
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
