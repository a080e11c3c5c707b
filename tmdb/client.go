package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	BaseURL      = "https://api.themoviedb.org/3"
	imageBaseURL = "https://image.tmdb.org/t/p/w600_and_h900_bestv2"
)

// StatusError is returned when TMDB answers with a non-2xx status code.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: HTTP %d for %s", e.Code, e.Path)
}

// Client talks to the TMDB v3 API using a v4 bearer token.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	language   string
	region     string
}

type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRegion sets the watch-provider region (default US).
func WithRegion(region string) Option {
	return func(c *Client) { c.region = region }
}

// WithLanguage sets the result language (default en-US).
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    BaseURL,
		httpClient: http.DefaultClient,
		language:   "en-US",
		region:     "US",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a single GET against the API and decodes the JSON body into
// dest. Non-2xx responses are an error; nothing is retried.
func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("tmdb: decode %s: %w", path, err)
	}
	return nil
}

// PosterURL resolves a relative poster path against the TMDB image CDN.
// Returns "" when the title has no poster.
func PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return imageBaseURL + posterPath
}
