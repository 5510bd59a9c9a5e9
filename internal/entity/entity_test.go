package entity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

type stubSearcher struct {
	results map[string][]types.SymbolMatch
	err     error
	calls   int32
}

func (s *stubSearcher) Search(_ context.Context, query string) ([]types.SymbolMatch, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

func TestDetectAliases(t *testing.T) {
	d := NewDetector(store.Default().Universe, nil)
	got := d.Detect(context.Background(), "Microsoft and Apple partner; Apple leads")
	if got["AAPL"] != 1 {
		t.Errorf("Expected AAPL relevance 1, got %v", got["AAPL"])
	}
	if got["MSFT"] != 0.5 {
		t.Errorf("Expected MSFT relevance 0.5, got %v", got["MSFT"])
	}
}

func TestDetectAmbiguousTickersNeedCashtag(t *testing.T) {
	d := NewDetector(store.Default().Universe, nil)
	if got := d.Detect(context.Background(), "Shares of V rose"); len(got) != 0 {
		t.Fatalf("Expected no tickers for bare V, got %v", got)
	}
	got := d.Detect(context.Background(), "$V rose while $T slipped")
	if got["V"] != 1 || got["T"] != 1 {
		t.Fatalf("Expected V and T from cashtags, got %v", got)
	}
	if n := countCashtag("$Vx $V_1 $V. $V", "V"); n != 2 {
		t.Errorf("Cashtag must end at a word boundary, got %d matches", n)
	}
}

func TestDetectBareSymbols(t *testing.T) {
	d := NewDetector(store.Default().Universe, nil)
	got := d.Detect(context.Background(), "INTC and CSCO traded, INTCX did not")
	if got["INTC"] != 1 || got["CSCO"] != 1 {
		t.Fatalf("Expected INTC and CSCO, got %v", got)
	}

	if n := countBareSymbol("MAMA MA 3MA", "MA"); n != 2 {
		t.Errorf("Expected 2 bounded MA matches, got %d", n)
	}
}

func TestDetectNoMatches(t *testing.T) {
	d := NewDetector(store.Default().Universe, nil)
	if got := d.Detect(context.Background(), "Residents can look forward to mild temperatures"); len(got) != 0 {
		t.Fatalf("Expected empty map, got %v", got)
	}
}

func TestDetectDynamicHitsRespectUniverse(t *testing.T) {
	searcher := &stubSearcher{results: map[string][]types.SymbolMatch{
		"Uber": {{Symbol: "UBER", Exchange: "NYQ"}},
	}}
	cfg := store.Default()

	d := NewDetector(cfg.Universe, NewResolver(searcher, cfg))
	if got := d.Detect(context.Background(), "Uber expands delivery"); len(got) != 0 {
		t.Fatalf("Expected UBER to be outside the universe, got %v", got)
	}

	cfg.Universe.AllowDynamicOutside = true
	d = NewDetector(cfg.Universe, NewResolver(searcher, cfg))
	got := d.Detect(context.Background(), "Uber expands delivery")
	if got["UBER"] != 1 {
		t.Fatalf("Expected UBER relevance 1, got %v", got)
	}
}

func TestDetectDynamicHitsDoNotOverrideDirectHits(t *testing.T) {
	searcher := &stubSearcher{results: map[string][]types.SymbolMatch{
		"Apple":  {{Symbol: "AAPL", Exchange: "NMS"}},
		"Pfizer": {{Symbol: "PFE", Exchange: "NYQ"}},
	}}
	cfg := store.Default()
	d := NewDetector(cfg.Universe, NewResolver(searcher, cfg))

	// apple and iphone alias hits give AAPL 2; Pfizer alias gives PFE 1
	got := d.Detect(context.Background(), "Apple ships iPhone, Pfizer watches")
	if got["AAPL"] != 1 || got["PFE"] != 0.5 {
		t.Fatalf("Unexpected relevance map %v", got)
	}
}

func TestResolveExchangeAllowlist(t *testing.T) {
	searcher := &stubSearcher{results: map[string][]types.SymbolMatch{
		"Shell": {
			{Symbol: "SHEL.L", Exchange: "LSE"},
			{Symbol: "SHEL", Exchange: "NYQ"},
		},
		"Foreign": {
			{Symbol: "A.L", Exchange: "LSE"},
			{Symbol: "B.PA", Exchange: "PAR"},
			{Symbol: "C.DE", Exchange: "GER"},
			{Symbol: "D", Exchange: "NMS"},
		},
		"Blank": {{Symbol: "", Exchange: "NMS"}},
	}}
	r := NewResolver(searcher, store.Default())
	ctx := context.Background()

	if got, ok := r.Resolve(ctx, "Shell"); !ok || got != "SHEL" {
		t.Errorf("Expected SHEL, got %q/%v", got, ok)
	}
	if got, ok := r.Resolve(ctx, "Foreign"); ok {
		t.Errorf("Only the top 3 results count, got %q", got)
	}
	if _, ok := r.Resolve(ctx, "Blank"); ok {
		t.Error("Empty symbols must not resolve")
	}
}

func TestResolveCachesMisses(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("search down")}
	r := NewResolver(searcher, store.Default())

	for i := 0; i < 3; i++ {
		if _, ok := r.Resolve(context.Background(), "  Nobody Corp "); ok {
			t.Fatal("Expected no resolution")
		}
		r.Resolve(context.Background(), "nobody corp")
	}
	if searcher.calls != 1 {
		t.Errorf("Expected one search for a cached miss, got %d", searcher.calls)
	}
}

func TestExtractCandidates(t *testing.T) {
	got := extractCandidates("Uber and Lyft rally as the CEO says AMD gains; Monday Ok")
	want := map[string]float64{"Uber": 0.7, "Lyft": 0.7, "AMD": 0.9}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("candidate %s: expected %v, got %v", k, v, got[k])
		}
	}
}

func TestExtractAndResolveKeepsMaxRelevance(t *testing.T) {
	searcher := &stubSearcher{results: map[string][]types.SymbolMatch{
		"Uber": {{Symbol: "UBER", Exchange: "NYQ"}},
		"UBER": {{Symbol: "UBER", Exchange: "NYQ"}},
	}}
	r := NewResolver(searcher, store.Default())
	got := r.ExtractAndResolve(context.Background(), "Uber (UBER) expands")
	if got["UBER"] != 0.9 {
		t.Fatalf("Expected max relevance 0.9, got %v", got)
	}
}
