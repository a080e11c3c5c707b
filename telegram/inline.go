package telegram

import (
	"context"
	"log"
	"strings"

	tg "github.com/amarnathcjd/gogram/telegram"
	"golang.org/x/sync/errgroup"

	"filmgram/tmdb"
)

// searchCap limits how many raw results per media type get enriched; one
// watch-provider fetch is issued per kept candidate.
const searchCap = 10

// HandleInlineQuery answers an inline query with up to 20 formatted title
// results, movies first. Empty result sets get no answer at all.
func (b *Bot) HandleInlineQuery(iq *tg.InlineQuery) error {
	query := strings.TrimSpace(iq.Query)
	if query == "" {
		return nil
	}

	results, err := b.buildResults(context.Background(), query)
	if err != nil {
		log.Printf("[INLINE] Search failed for %q: %v", query, err)
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	builder := iq.Builder()
	for _, r := range results {
		builder.Article(r.Title, r.Description, r.Message, &tg.ArticleOptions{
			ID: r.ID,
		})
	}

	if _, err := iq.Answer(builder.Results(), tg.InlineSendOptions{CacheTime: 0}); err != nil {
		log.Printf("[INLINE] Answer failed for %q: %v", query, err)
	}
	return nil
}

// buildResults runs both searches, enriches every candidate with streaming
// availability and returns the formatted list: movies in upstream order,
// then TV in upstream order.
func (b *Bot) buildResults(ctx context.Context, query string) ([]InlineResult, error) {
	media, err := b.searchBoth(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(media) == 0 {
		return nil, nil
	}
	return b.enrich(ctx, media), nil
}

// searchBoth issues the movie and TV searches concurrently and merges the
// capped result lists, movies first.
func (b *Bot) searchBoth(ctx context.Context, query string) ([]tmdb.Media, error) {
	var movies, shows []tmdb.Media

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := b.tmdb.SearchMovies(gctx, query, 1)
		if err != nil {
			return err
		}
		movies = wrapResults(tmdb.MediaMovie, resp.Results)
		return nil
	})
	g.Go(func() error {
		resp, err := b.tmdb.SearchTV(gctx, query, 1)
		if err != nil {
			return err
		}
		shows = wrapResults(tmdb.MediaTV, resp.Results)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return append(movies, shows...), nil
}

func wrapResults(mediaType tmdb.MediaType, results []tmdb.SearchResult) []tmdb.Media {
	if len(results) > searchCap {
		results = results[:searchCap]
	}
	media := make([]tmdb.Media, len(results))
	for i, r := range results {
		media[i] = tmdb.Media{Type: mediaType, SearchResult: r}
	}
	return media
}

// enrich fetches watch providers for every candidate as one joined batch.
// Results land by index, so output order follows input order regardless of
// completion order. A failed lookup degrades that entry to "no providers".
func (b *Bot) enrich(ctx context.Context, media []tmdb.Media) []InlineResult {
	streaming := make([][]string, len(media))

	var g errgroup.Group
	for i, m := range media {
		g.Go(func() error {
			wp, err := b.tmdb.WatchProviders(ctx, m.Type, m.ID)
			if err != nil {
				log.Printf("[INLINE] Watch providers for %s %d: %v", m.Type, m.ID, err)
				return nil
			}
			streaming[i] = b.providerNames(ctx, m.Type, wp.Streaming(b.tmdb.Region()))
			return nil
		})
	}
	g.Wait()

	results := make([]InlineResult, len(media))
	for i, m := range media {
		results[i] = FormatInlineResult(m, streaming[i])
	}
	return results
}

// providerNames resolves display names through the cached provider catalog,
// falling back to the name carried on the title's own offer entry.
func (b *Bot) providerNames(ctx context.Context, mediaType tmdb.MediaType, providers []tmdb.Provider) []string {
	if len(providers) == 0 {
		return nil
	}

	var byID map[int]string
	if catalog, err := b.providers.Catalog(ctx, mediaType); err == nil {
		byID = make(map[int]string, len(catalog.Results))
		for _, p := range catalog.Results {
			byID[p.ProviderID] = p.ProviderName
		}
	} else {
		log.Printf("[INLINE] Provider catalog for %s: %v", mediaType, err)
	}

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		if name, ok := byID[p.ProviderID]; ok && name != "" {
			names = append(names, name)
			continue
		}
		names = append(names, p.ProviderName)
	}
	return names
}
