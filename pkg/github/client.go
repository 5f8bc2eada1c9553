package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jam-magsuci/github-search/pkg/httputil"
)

const (
	defaultBaseURL = "https://api.github.com"

	// perPage caps the repository listing at one page of 100 results.
	perPage = 100

	httpTimeout   = 10 * time.Second
	retryAttempts = 3
)

// Client fetches repository data from the GitHub REST API. It handles
// response caching, automatic retries for transient failures, and optional
// authentication.
type Client struct {
	rest       *resty.Client
	cache      *httputil.Cache
	retryDelay time.Duration
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits). Pass nil for cache to disable response caching.
func NewClient(token string, cache *httputil.Cache) *Client {
	rest := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(httpTimeout).
		SetHeader("Accept", "application/vnd.github.v3+json")
	if token != "" {
		rest.SetAuthToken(token)
	}
	return &Client{
		rest:       rest,
		cache:      cache,
		retryDelay: time.Second,
	}
}

// ListRepos returns the user's public repositories, sorted by last update,
// capped at 100. Results are served from cache when fresh.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	var repos []Repo
	err := c.cached(ctx, "repos:"+username, &repos, func() error {
		repos = repos[:0]
		path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=%d", username, perPage)
		return c.get(ctx, path, &repos)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, username)
		}
		return nil, err
	}
	return repos, nil
}

// FetchOwner returns the user's profile.
func (c *Client) FetchOwner(ctx context.Context, username string) (*Owner, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	var owner Owner
	err := c.cached(ctx, "users:"+username, &owner, func() error {
		return c.get(ctx, "/users/"+username, &owner)
	})
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// cached retrieves a value from cache or executes fetch (with retries) and
// caches the result on success.
func (c *Client) cached(ctx context.Context, key string, v any, fetch func() error) error {
	if c.cache != nil {
		if ok, _ := c.cache.Get(key, v); ok {
			return nil
		}
	}
	if err := httputil.Retry(ctx, retryAttempts, c.retryDelay, fetch); err != nil {
		return err
	}
	if c.cache != nil {
		_ = c.cache.Set(key, v)
	}
	return nil
}

// get performs a GET request and decodes the JSON response into v.
// Transport errors and 5xx responses are marked retryable; 404 maps to
// ErrNotFound; any other non-2xx status is a terminal network error.
func (c *Client) get(ctx context.Context, path string, v any) error {
	resp, err := c.rest.R().SetContext(ctx).SetResult(v).Get(path)
	if err != nil {
		return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}

	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode() >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode())}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode())
	}
}

var _ RepoSource = (*Client)(nil)
