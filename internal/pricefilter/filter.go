package pricefilter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"news-signal-engine/internal/cache"
	"news-signal-engine/internal/interfaces"
	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

var ErrNoPrice = errors.New("no price data")

// Filter keeps tickers that have a live price at or above the configured
// minimum. Quotes are cached briefly to avoid refetching within a run.
type Filter struct {
	source    interfaces.QuoteSource
	cache     *cache.TTL[types.Quote]
	minPrice  float64
	exchanges map[string]bool
	workers   int
}

func New(source interfaces.QuoteSource, cfg *store.Config) *Filter {
	return &Filter{
		source:    source,
		cache:     cache.New[types.Quote](cfg.Cache.PriceTTL).WithFetchTimeout(cfg.Engine.FetchTimeout),
		minPrice:  cfg.Filter.MinPrice,
		exchanges: cfg.Filter.ExchangeSet(),
		workers:   max(1, cfg.Engine.Workers),
	}
}

// Quote returns the cached or freshly fetched quote with the price rounded
// to cents.
func (f *Filter) Quote(ctx context.Context, symbol string) (types.Quote, error) {
	return f.cache.GetOrFetch(ctx, symbol, func(fctx context.Context) (types.Quote, error) {
		op := logger.StartOperation(fctx, "pricefilter.quote", "symbol", symbol)
		q, err := f.source.Quote(op.Context(), symbol)
		if err != nil {
			err = fmt.Errorf("quote %s: %w", symbol, err)
			op.EndWithError(err)
			return types.Quote{}, err
		}
		if q.Price <= 0 || math.IsNaN(q.Price) {
			err = fmt.Errorf("quote %s: %w", symbol, ErrNoPrice)
			op.EndWithError(err)
			return types.Quote{}, err
		}
		q.Symbol = symbol
		q.Price = math.Round(q.Price*100) / 100
		op.End("price", q.Price, "exchange", q.Exchange)
		return q, nil
	})
}

// Filter returns ticker to price for every ticker that passed. Tickers whose
// quote cannot be fetched are dropped.
func (f *Filter) Filter(ctx context.Context, tickers []string) map[string]float64 {
	valid := make(map[string]float64, len(tickers))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for _, symbol := range dedupe(tickers) {
		g.Go(func() error {
			q, err := f.Quote(gctx, symbol)
			if err != nil {
				logger.Debug(gctx, "Dropping ticker without price", "symbol", symbol, "error", err)
				return nil
			}
			if q.Price < f.minPrice {
				logger.Debug(gctx, "Dropping ticker below minimum price", "symbol", symbol, "price", q.Price, "min_price", f.minPrice)
				return nil
			}
			if q.Exchange != "" && !f.exchanges[q.Exchange] {
				// exchange is informational; the ticker is kept
				logger.Debug(gctx, "Ticker listed outside accepted exchanges", "symbol", symbol, "exchange", q.Exchange)
			}
			mu.Lock()
			valid[symbol] = q.Price
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return valid
}

// Purge drops expired quotes.
func (f *Filter) Purge() int {
	return f.cache.Purge()
}

func dedupe(tickers []string) []string {
	seen := make(map[string]bool, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
