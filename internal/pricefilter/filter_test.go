package pricefilter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

type stubQuotes struct {
	mu     sync.Mutex
	quotes map[string]types.Quote
	calls  map[string]int
}

func (s *stubQuotes) Quote(_ context.Context, symbol string) (types.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[symbol]++
	q, ok := s.quotes[symbol]
	if !ok {
		return types.Quote{}, errors.New("unknown symbol")
	}
	return q, nil
}

func TestFilter(t *testing.T) {
	src := &stubQuotes{quotes: map[string]types.Quote{
		"NVDA": {Price: 120.456, Exchange: "NMS"},
		"PENY": {Price: 3.2, Exchange: "NCM"},
		"SHEL": {Price: 65, Exchange: "LSE"},
		"ZERO": {Price: 0, Exchange: "NYQ"},
	}}
	f := New(src, store.Default())

	got := f.Filter(context.Background(), []string{"NVDA", "PENY", "SHEL", "ZERO", "MISSING", "NVDA"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 tickers, got %v", got)
	}
	if got["NVDA"] != 120.46 {
		t.Errorf("Expected price rounded to 120.46, got %v", got["NVDA"])
	}
	if _, ok := got["SHEL"]; !ok {
		t.Error("Exchange outside the allowlist should not drop a ticker")
	}
	if src.calls["NVDA"] != 1 {
		t.Errorf("Expected duplicate tickers to be fetched once, got %d", src.calls["NVDA"])
	}
}

func TestFilterMinPriceBoundary(t *testing.T) {
	src := &stubQuotes{quotes: map[string]types.Quote{"EDGE": {Price: 8.0, Exchange: "NYQ"}}}
	f := New(src, store.Default())
	if got := f.Filter(context.Background(), []string{"EDGE"}); got["EDGE"] != 8.0 {
		t.Fatalf("Expected a price equal to the minimum to pass, got %v", got)
	}
}

func TestQuoteCachesOnlySuccess(t *testing.T) {
	src := &stubQuotes{quotes: map[string]types.Quote{"AAPL": {Price: 190, Exchange: "NMS"}}}
	f := New(src, store.Default())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := f.Quote(ctx, "AAPL"); err != nil {
			t.Fatal(err)
		}
		if _, err := f.Quote(ctx, "GONE"); err == nil {
			t.Fatal("Expected error for unknown symbol")
		}
	}
	if src.calls["AAPL"] != 1 {
		t.Errorf("Expected cached quote, got %d calls", src.calls["AAPL"])
	}
	if src.calls["GONE"] != 3 {
		t.Errorf("Failed quotes must not be cached, got %d calls", src.calls["GONE"])
	}
}

func TestQuoteNoPrice(t *testing.T) {
	src := &stubQuotes{quotes: map[string]types.Quote{"ZERO": {}}}
	f := New(src, store.Default())
	if _, err := f.Quote(context.Background(), "ZERO"); !errors.Is(err, ErrNoPrice) {
		t.Fatalf("Expected ErrNoPrice, got %v", err)
	}
}
