// internal/github/client_test.go
package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	custom_errors "releasetools-site/internal/errors"
)

// setupTestClient creates a httptest server and a github client pointing to it.
// Sleeps are recorded instead of performed.
func setupTestClient(t *testing.T, handler http.Handler) (*Client, *[]time.Duration) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient("", logger)

	client.gh = github.NewClient(server.Client())
	require.NoError(t, client.SetBaseURL(server.URL))

	var waits []time.Duration
	client.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return client, &waits
}

const repoJSON = `{"id": 1, "name": "mutex", "owner": {"login": "releasetools"}, "stargazers_count": 245, "forks_count": 18}`

func TestClient_GetRepositoryStats_Retry(t *testing.T) {
	t.Run("succeeds on first try", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			assert.Equal(t, "/repos/releasetools/mutex", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, repoJSON)
		})
		client, waits := setupTestClient(t, handler)

		stats, err := client.GetRepositoryStats(context.Background(), "releasetools", "mutex")

		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
		assert.Equal(t, 245, stats.Stars)
		assert.Equal(t, 18, stats.Forks)
		assert.Equal(t, "mutex", stats.Name)
		assert.Empty(t, *waits)
	})

	t.Run("retries on 503 server error and succeeds", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := atomic.AddInt32(&requestCount, 1)
			if count == 1 {
				w.WriteHeader(http.StatusServiceUnavailable) // Fail first time
				return
			}
			w.WriteHeader(http.StatusOK) // Succeed second time
			fmt.Fprintln(w, repoJSON)
		})
		client, waits := setupTestClient(t, handler)

		_, err := client.GetRepositoryStats(context.Background(), "releasetools", "mutex")

		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&requestCount), "should have made two requests")
		assert.Equal(t, []time.Duration{baseBackoff}, *waits)
	})

	t.Run("waits for the rate limit reset", func(t *testing.T) {
		var requestCount int32
		resetTime := time.Now().Add(time.Second)
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := atomic.AddInt32(&requestCount, 1)
			if count == 1 {
				w.Header().Set("X-RateLimit-Limit", "60")
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))
				w.WriteHeader(http.StatusForbidden) // RateLimitError is a 403
				fmt.Fprintln(w, `{"message": "API rate limit exceeded for 127.0.0.1."}`)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, repoJSON)
		})
		client, waits := setupTestClient(t, handler)
		// Sleep for real so go-github's remembered limit has expired before the retry.
		client.sleep = func(ctx context.Context, d time.Duration) error {
			*waits = append(*waits, d)
			return sleepContext(ctx, d)
		}

		stats, err := client.GetRepositoryStats(context.Background(), "releasetools", "mutex")

		require.NoError(t, err)
		assert.Equal(t, 245, stats.Stars)
		assert.Equal(t, int32(2), atomic.LoadInt32(&requestCount))
		require.Len(t, *waits, 1)
		assert.Greater(t, (*waits)[0], time.Duration(0), "client should wait for rate limit reset")
		assert.LessOrEqual(t, (*waits)[0], time.Second+rateLimitSlack)
	})

	t.Run("fails after max retries on persistent server error", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			w.WriteHeader(http.StatusInternalServerError)
		})
		client, _ := setupTestClient(t, handler)

		_, err := client.GetRepositoryStats(context.Background(), "releasetools", "mutex")

		require.Error(t, err)
		var ghErr *github.ErrorResponse
		assert.ErrorAs(t, err, &ghErr)
		assert.Equal(t, http.StatusInternalServerError, ghErr.Response.StatusCode)
		assert.Equal(t, int32(maxRetries), atomic.LoadInt32(&requestCount))
	})

	t.Run("does not retry a 404", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintln(w, `{"message": "Not Found"}`)
		})
		client, _ := setupTestClient(t, handler)

		_, err := client.GetRepositoryStats(context.Background(), "releasetools", "gone")

		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
	})
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		raw   string
		owner string
		name  string
		ok    bool
	}{
		{"https://github.com/releasetools/mutex", "releasetools", "mutex", true},
		{"https://github.com/releasetools/cli/", "releasetools", "cli", true},
		{"https://github.com/releasetools/cli.git", "releasetools", "cli", true},
		{"https://gitlab.com/releasetools/cli", "", "", false},
		{"https://github.com/releasetools", "", "", false},
		{"https://github.com/releasetools/cli/tree/main", "", "", false},
		{"not a url", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			owner, name, err := ParseRepoURL(tt.raw)
			if !tt.ok {
				var urlErr *custom_errors.ErrInvalidRepoURL
				assert.ErrorAs(t, err, &urlErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.name, name)
		})
	}
}
