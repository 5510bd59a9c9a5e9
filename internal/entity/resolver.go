package entity

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"news-signal-engine/internal/cache"
	"news-signal-engine/internal/interfaces"
	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/store"
)

const (
	properNounRelevance = 0.7
	upperRunRelevance   = 0.9
	minProperNounLen    = 3
	searchTopN          = 3
)

var properNounPattern = regexp.MustCompile(`\b([A-Z][a-z]{1,20})\b`)

// Resolver maps free-text company names and ticker-like tokens to listed
// symbols through a symbol search. Results, including misses, are cached.
type Resolver struct {
	searcher  interfaces.SymbolSearcher
	cache     *cache.TTL[string]
	exchanges map[string]bool
	workers   int
}

func NewResolver(searcher interfaces.SymbolSearcher, cfg *store.Config) *Resolver {
	return &Resolver{
		searcher:  searcher,
		cache:     cache.New[string](cfg.Cache.ResolverTTL).WithFetchTimeout(cfg.Engine.FetchTimeout),
		exchanges: cfg.Filter.ExchangeSet(),
		workers:   max(1, cfg.Engine.Workers),
	}
}

// Purge drops expired resolutions.
func (r *Resolver) Purge() int {
	return r.cache.Purge()
}

// Resolve returns the first of the top search hits listed on an accepted
// exchange. Search failures resolve to no ticker.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	symbol, err := r.cache.GetOrFetch(ctx, key, func(fctx context.Context) (string, error) {
		return r.lookup(fctx, name), nil
	})
	if err != nil {
		return "", false
	}
	return symbol, symbol != ""
}

func (r *Resolver) lookup(ctx context.Context, name string) string {
	matches, err := r.searcher.Search(ctx, name)
	if err != nil {
		logger.Debug(ctx, "Symbol search failed", "query", name, "error", err)
		return ""
	}
	if len(matches) > searchTopN {
		matches = matches[:searchTopN]
	}
	for _, m := range matches {
		if r.exchanges[m.Exchange] && m.Symbol != "" {
			return m.Symbol
		}
	}
	return ""
}

// ExtractAndResolve resolves every candidate in text and returns ticker to
// relevance, keeping the highest relevance when several candidates agree.
func (r *Resolver) ExtractAndResolve(ctx context.Context, text string) map[string]float64 {
	candidates := extractCandidates(text)
	resolved := make(map[string]float64)
	if len(candidates) == 0 {
		return resolved
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for word, relevance := range candidates {
		g.Go(func() error {
			ticker, ok := r.Resolve(gctx, word)
			if !ok {
				return nil
			}
			mu.Lock()
			if relevance > resolved[ticker] {
				resolved[ticker] = relevance
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return resolved
}

// extractCandidates collects capitalized words and bare 2-5 letter uppercase
// runs that are not on the stoplists.
func extractCandidates(text string) map[string]float64 {
	candidates := make(map[string]float64)
	for _, m := range properNounPattern.FindAllStringSubmatch(text, -1) {
		word := m[1]
		if len(word) >= minProperNounLen && !commonProperNouns[word] {
			candidates[word] = properNounRelevance
		}
	}
	for _, run := range letterRuns(text) {
		if len(run) >= 2 && len(run) <= 5 && isUpper(run) && !commonUpperWords[run] {
			candidates[run] = upperRunRelevance
		}
	}
	return candidates
}

// letterRuns splits text into maximal runs of ASCII letters.
func letterRuns(text string) []string {
	var runs []string
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && isASCIILetter(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, text[start:i])
			start = -1
		}
	}
	return runs
}

func isUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
