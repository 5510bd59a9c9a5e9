// Package feed pulls stories from RSS feeds.
package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher reads the configured RSS sources.
type Fetcher struct {
	sources      []store.FeedSource
	perFeed      int
	summaryChars int
	timeout      time.Duration
}

func NewFetcher(cfg store.FeedConfig) *Fetcher {
	return &Fetcher{
		sources:      cfg.Sources,
		perFeed:      cfg.PerFeedLimit,
		summaryChars: cfg.SummaryChars,
		timeout:      cfg.Timeout,
	}
}

// Fetch returns up to the per-feed limit of items from every source, in
// source order. A failing source is logged and skipped; an error is only
// returned when every source failed.
func (f *Fetcher) Fetch(ctx context.Context) ([]types.Story, error) {
	logger.Info(ctx, "Fetching news feeds", "sources", len(f.sources))

	var (
		stories []types.Story
		failed  int
		lastErr error
	)
	for _, src := range f.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := f.fetchSource(ctx, src)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to fetch feed", err, "source", src.Name, "url", src.URL)
			failed++
			lastErr = err
			continue
		}
		stories = append(stories, items...)
	}

	if len(f.sources) > 0 && failed == len(f.sources) {
		return nil, fmt.Errorf("all %d feeds failed: %w", failed, lastErr)
	}
	logger.Info(ctx, "News feeds fetched", "stories", len(stories), "failed_sources", failed)
	return stories, nil
}

func (f *Fetcher) fetchSource(ctx context.Context, src store.FeedSource) ([]types.Story, error) {
	u, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url %q: %w", src.URL, err)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(u.Hostname()),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
		colly.UserAgent(userAgent),
	)
	c.SetRequestTimeout(f.timeout)

	var items []types.Story
	c.OnXML("//item", func(e *colly.XMLElement) {
		if len(items) >= f.perFeed {
			return
		}
		title := strings.TrimSpace(e.ChildText("title"))
		if title == "" {
			return
		}
		id := strings.TrimSpace(e.ChildText("link"))
		if id == "" {
			id = strings.TrimSpace(e.ChildText("guid"))
		}
		items = append(items, types.Story{
			ID:        id,
			Title:     title,
			Summary:   f.summary(e.ChildText("description")),
			Published: strings.TrimSpace(e.ChildText("pubDate")),
		})
	})

	if err := c.Visit(src.URL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", src.URL, err)
	}
	c.Wait()
	return items, nil
}

// summary strips markup from a feed description and caps it.
func (f *Fetcher) summary(raw string) string {
	text := raw
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")
	if r := []rune(text); f.summaryChars > 0 && len(r) > f.summaryChars {
		text = string(r[:f.summaryChars])
	}
	return text
}
