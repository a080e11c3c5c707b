package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// searchQuery builds the query string shared by both search endpoints.
func (c *Client) searchQuery(query string, page int) url.Values {
	return url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"language":      {c.language},
		"page":          {strconv.Itoa(page)},
	}
}

// Search runs a title search for the given media type and page.
func (c *Client) Search(ctx context.Context, mediaType MediaType, query string, page int) (*SearchResponse, error) {
	var resp SearchResponse
	path := "/search/" + string(mediaType)
	if err := c.get(ctx, path, c.searchQuery(query, page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*SearchResponse, error) {
	return c.Search(ctx, MediaMovie, query, page)
}

func (c *Client) SearchTV(ctx context.Context, query string, page int) (*SearchResponse, error) {
	return c.Search(ctx, MediaTV, query, page)
}

// MovieDetails fetches full movie details for a selected id.
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	var details MovieDetails
	path := fmt.Sprintf("/movie/%d", id)
	if err := c.get(ctx, path, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// TVDetails fetches full TV series details for a selected id.
func (c *Client) TVDetails(ctx context.Context, id int) (*TVDetails, error) {
	var details TVDetails
	path := fmt.Sprintf("/tv/%d", id)
	if err := c.get(ctx, path, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// WatchProviders fetches the per-region watch offers for one title.
func (c *Client) WatchProviders(ctx context.Context, mediaType MediaType, id int) (*WatchProviderResult, error) {
	var result WatchProviderResult
	path := fmt.Sprintf("/%s/%d/watch/providers", mediaType, id)
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchProviderCatalog fetches the catalog of every provider TMDB knows for
// a media type in the configured watch region.
func (c *Client) FetchProviderCatalog(ctx context.Context, mediaType MediaType) (*ProviderCatalog, error) {
	var catalog ProviderCatalog
	path := "/watch/providers/" + string(mediaType)
	query := url.Values{
		"language":     {c.language},
		"watch_region": {c.region},
	}
	if err := c.get(ctx, path, query, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Region returns the configured watch-provider region.
func (c *Client) Region() string {
	return c.region
}
