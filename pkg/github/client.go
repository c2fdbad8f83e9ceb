package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/noticegen/pkg/httputil"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a repository page or raw file doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Client fetches repository pages and raw file contents from GitHub.
// It handles HTTP requests with disk caching, automatic retries, and
// optional authentication.
type Client struct {
	http    *http.Client
	cache   *httputil.Cache
	headers map[string]string
	rawBase string
}

// NewClient creates a GitHub client with optional authentication.
// Pass an empty string for token to use unauthenticated requests
// (lower rate limits).
func NewClient(token string, cacheTTL time.Duration) (*Client, error) {
	cache, err := httputil.NewCache("", cacheTTL)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"User-Agent": "noticegen"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   cache,
		headers: headers,
		rawBase: "https://raw.githubusercontent.com",
	}, nil
}

// cachedText returns the body of url, reading from the cache under key when
// possible. If refresh is true the cache is bypassed. Successful fetches are
// stored for subsequent runs.
func (c *Client) cachedText(ctx context.Context, key, url string, refresh bool) (string, error) {
	if !refresh {
		var s string
		if ok, _ := c.cache.Get(key, &s); ok {
			return s, nil
		}
	}

	var s string
	err := httputil.RetryWithBackoff(ctx, func() error {
		text, err := c.getText(ctx, url)
		s = text
		return err
	})
	if err != nil {
		return "", err
	}
	_ = c.cache.Set(key, s)
	return s, nil
}

func (c *Client) getText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return string(data), nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
)

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS
// form. Handles git@, git://, and git+ prefixes, and removes .git suffixes.
// Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	return strings.TrimSuffix(s, ".git")
}
