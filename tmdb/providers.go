package tmdb

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CatalogSource is the upstream side of the provider catalog cache,
// satisfied by *Client.
type CatalogSource interface {
	FetchProviderCatalog(ctx context.Context, mediaType MediaType) (*ProviderCatalog, error)
}

// ProviderCache holds the full provider catalog per media type for the life
// of the process. Populated on first access, never invalidated; catalog data
// changes rarely enough that stale entries until restart are acceptable.
// Concurrent first accesses for the same type are collapsed into a single
// upstream fetch.
type ProviderCache struct {
	source CatalogSource
	store  *gocache.Cache
	group  singleflight.Group
}

func NewProviderCache(source CatalogSource) *ProviderCache {
	return &ProviderCache{
		source: source,
		store:  gocache.New(gocache.NoExpiration, 0),
	}
}

// Catalog returns the provider catalog for a media type, fetching it on the
// first call and serving the cached copy afterwards.
func (p *ProviderCache) Catalog(ctx context.Context, mediaType MediaType) (*ProviderCatalog, error) {
	key := string(mediaType)
	if cached, found := p.store.Get(key); found {
		return cached.(*ProviderCatalog), nil
	}

	result, err, _ := p.group.Do(key, func() (any, error) {
		if cached, found := p.store.Get(key); found {
			return cached.(*ProviderCatalog), nil
		}
		catalog, err := p.source.FetchProviderCatalog(ctx, mediaType)
		if err != nil {
			return nil, err
		}
		p.store.Set(key, catalog, gocache.NoExpiration)
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*ProviderCatalog), nil
}
