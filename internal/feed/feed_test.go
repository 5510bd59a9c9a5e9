package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"news-signal-engine/internal/store"
)

const rss = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Markets</title>
<item>
  <title>NVIDIA soars after earnings beat</title>
  <link>https://example.com/nvda</link>
  <description>&lt;p&gt;Data center revenue &lt;b&gt;jumped&lt;/b&gt; again.&lt;/p&gt;</description>
  <pubDate>Wed, 01 May 2024 10:00:00 +0000</pubDate>
</item>
<item>
  <title>Microsoft plunges on fraud probe</title>
  <guid>msft-guid</guid>
  <description>Regulators open an inquiry.</description>
</item>
<item>
  <title></title>
  <link>https://example.com/empty</link>
</item>
<item>
  <title>Coca-Cola reports results</title>
  <link>https://example.com/ko</link>
</item>
</channel></rss>`

func rssServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte(rss))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestFetcher(limit, chars int, urls ...string) *Fetcher {
	cfg := store.FeedConfig{PerFeedLimit: limit, SummaryChars: chars, Timeout: 5 * time.Second}
	for i, u := range urls {
		cfg.Sources = append(cfg.Sources, store.FeedSource{Name: string(rune('A' + i)), URL: u})
	}
	return NewFetcher(cfg)
}

func TestFetch(t *testing.T) {
	srv := rssServer(t)
	stories, err := newTestFetcher(8, 500, srv.URL+"/feed").Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stories) != 3 {
		t.Fatalf("Expected 3 stories (empty title skipped), got %d: %+v", len(stories), stories)
	}
	first := stories[0]
	if first.ID != "https://example.com/nvda" || first.Published != "Wed, 01 May 2024 10:00:00 +0000" {
		t.Errorf("Unexpected first story %+v", first)
	}
	if first.Summary != "Data center revenue jumped again." {
		t.Errorf("Markup should be stripped, got %q", first.Summary)
	}
	if stories[1].ID != "msft-guid" {
		t.Errorf("Expected guid fallback, got %q", stories[1].ID)
	}
}

func TestFetchLimitAndTruncate(t *testing.T) {
	srv := rssServer(t)
	stories, err := newTestFetcher(1, 10, srv.URL+"/feed").Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stories) != 1 {
		t.Fatalf("Expected per-feed limit of 1, got %d", len(stories))
	}
	if stories[0].Summary != "Data cente" {
		t.Errorf("Expected summary cut to 10 runes, got %q", stories[0].Summary)
	}
}

func TestFetchSkipsFailingSource(t *testing.T) {
	srv := rssServer(t)
	stories, err := newTestFetcher(8, 500, srv.URL+"/broken", srv.URL+"/feed").Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stories) != 3 {
		t.Errorf("Expected stories from the healthy feed, got %d", len(stories))
	}

	_, err = newTestFetcher(8, 500, srv.URL+"/broken").Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "all 1 feeds failed") {
		t.Errorf("Expected all-failed error, got %v", err)
	}
}
