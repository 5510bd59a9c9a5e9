// Package yahoo adapts Yahoo Finance to the engine's market data interfaces.
// Quotes and bars go through finance-go; symbol search uses the public
// search endpoint directly.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/quote"

	"news-signal-engine/internal/api"
	"news-signal-engine/internal/store"
)

var ErrNotFound = errors.New("symbol not found")

// Client implements QuoteSource, HistorySource and SymbolSearcher.
type Client struct {
	search      *api.Client
	quotesCount int
	now         func() time.Time

	// finance-go entry points, swapped in tests
	getQuote func(symbol string) (*finance.Quote, error)
	getChart func(params *chart.Params) barIter
}

type barIter interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

func New(cfg store.YahooConfig, opts ...api.ClientOption) *Client {
	base := []api.ClientOption{
		api.WithBaseURL(cfg.SearchBaseURL),
		api.WithTimeout(cfg.Timeout),
		api.WithHeaders(api.YahooFinanceHeaders()),
		api.WithRetry(cfg.MaxRetries, 250*time.Millisecond, 2*time.Second),
		api.WithRateLimit(cfg.RateLimit),
		api.WithLogging(true),
	}
	return &Client{
		search:      api.NewClient(append(base, opts...)...),
		quotesCount: 5,
		now:         time.Now,
		getQuote:    quote.Get,
		getChart:    func(p *chart.Params) barIter { return chart.Get(p) },
	}
}

// await runs fn on its own goroutine so callers can give up on ctx. fn keeps
// running after cancellation; finance-go has no context support.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v, err}
	}()
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

// periodStart turns a lookback such as "5d", "3mo" or "1y" into a start time.
func periodStart(period string, now time.Time) (time.Time, error) {
	units := []struct {
		suffix string
		apply  func(n int) time.Time
	}{
		{"mo", func(n int) time.Time { return now.AddDate(0, -n, 0) }},
		{"wk", func(n int) time.Time { return now.AddDate(0, 0, -7*n) }},
		{"d", func(n int) time.Time { return now.AddDate(0, 0, -n) }},
		{"y", func(n int) time.Time { return now.AddDate(-n, 0, 0) }},
	}
	p := strings.ToLower(strings.TrimSpace(period))
	for _, u := range units {
		if !strings.HasSuffix(p, u.suffix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(p, u.suffix))
		if err != nil || n <= 0 {
			break
		}
		return u.apply(n), nil
	}
	return time.Time{}, fmt.Errorf("unsupported period %q", period)
}
