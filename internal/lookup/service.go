package lookup

import (
	"context"
	"errors"
	"strings"
	"sync"

	"paperlens/internal/cache"
)

// keyPrefix namespaces this service's cache keys per source, so another
// consumer sharing the same cache cannot collide with them.
const keyPrefix = "dblp:"

// Result is the structured outcome of one title lookup. Errors are
// carried in the Error field, never raised: callers branch on Found and
// Error, and TimedOut distinguishes deadline failures.
type Result struct {
	Found     bool   `json:"found"`
	Venue     string `json:"venue,omitempty"`
	Year      string `json:"year,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
	Error     string `json:"error,omitempty"`
	TimedOut  bool   `json:"timed_out,omitempty"`
}

// Service performs cached title lookups against DBLP. Only definitive
// outcomes (found or not-found) are cached; transport, parse, and timeout
// failures are returned uncached so a later call retries.
type Service struct {
	client *Client
	cache  *cache.Cache[Result]
}

// NewService wraps a client with a result cache. A nil cache disables
// caching.
func NewService(client *Client, c *cache.Cache[Result]) *Service {
	return &Service{client: client, cache: c}
}

// cacheKey derives the namespaced cache key for a title.
func cacheKey(title string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(title))
}

// QueryByTitle resolves a paper title to its publication venue. An empty
// title short-circuits without touching the cache or the network.
func (s *Service) QueryByTitle(ctx context.Context, title string) Result {
	if strings.TrimSpace(title) == "" {
		return Result{Error: "Empty title provided"}
	}

	key := cacheKey(title)
	if s.cache != nil {
		if res, ok := s.cache.Get(key); ok {
			return res
		}
	}

	hits, err := s.client.Search(ctx, title, DefaultHitLimit)
	if err != nil {
		return Result{
			Error:    err.Error(),
			TimedOut: errors.Is(err, ErrTimeout),
		}
	}

	res := selectHit(title, hits)
	if s.cache != nil {
		s.cache.Set(key, res)
	}
	return res
}

// selectHit evaluates the top-ranked hit only. A top hit below the
// similarity threshold makes the whole lookup a not-found: falling
// through to lower-ranked hits risks resolving to the wrong publication.
func selectHit(title string, hits []Hit) Result {
	if len(hits) == 0 {
		return Result{Found: false}
	}
	top := hits[0]
	if TitleSimilarity(title, top.Title) < TitleSimilarityThreshold {
		return Result{Found: false}
	}
	return Result{
		Found:     true,
		Venue:     top.Venue,
		Year:      top.Year,
		SourceURL: top.URL,
	}
}

// QueryBatch looks up several titles with bounded concurrency. Duplicate
// titles collapse to a single lookup.
func (s *Service) QueryBatch(ctx context.Context, titles []string, concurrency int) map[string]Result {
	if concurrency <= 0 {
		concurrency = 2
	}

	unique := make([]string, 0, len(titles))
	seen := make(map[string]bool, len(titles))
	for _, t := range titles {
		if seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}

	results := make(map[string]Result, len(unique))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for _, title := range unique {
		wg.Add(1)
		go func(title string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res := s.QueryByTitle(ctx, title)

			mu.Lock()
			results[title] = res
			mu.Unlock()
		}(title)
	}

	wg.Wait()
	return results
}
