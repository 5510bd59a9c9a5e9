package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"news-signal-engine/internal/entity"
	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/pricefilter"
	"news-signal-engine/internal/sentiment"
	"news-signal-engine/internal/signal"
	"news-signal-engine/internal/store"
	"news-signal-engine/internal/technical"
	"news-signal-engine/internal/theme"
	"news-signal-engine/internal/types"
)

const (
	Provider = "local_nlp"
	Model    = "financial_lexicon_v1"

	themeBlend      = 0.6
	signalSnippet   = 100
	traceSnippet    = 120
	noStoriesResult = "No actionable stories found in the current news feed."
)

// technicalAnalyzer is satisfied by *technical.Analyzer.
type technicalAnalyzer interface {
	Analyze(ctx context.Context, symbol string) (types.TechnicalSnapshot, error)
	Purge() int
}

type engine struct {
	cfg       *store.Config
	sentiment *sentiment.Analyzer
	resolver  *entity.Resolver
	detector  *entity.Detector
	themes    *theme.Mapper
	prices    *pricefilter.Filter
	technical technicalAnalyzer
	signals   *signal.Generator
	now       func() time.Time
}

func build(cfg *store.Config, deps Deps) *engine {
	e := &engine{
		cfg:       cfg,
		sentiment: sentiment.NewAnalyzer(),
		themes:    theme.NewMapper(cfg.Universe),
		prices:    pricefilter.New(deps.Quotes, cfg),
		signals:   signal.NewGenerator(cfg.Signal),
		now:       time.Now,
	}
	if deps.Search != nil {
		e.resolver = entity.NewResolver(deps.Search, cfg)
	}
	e.detector = entity.NewDetector(cfg.Universe, e.resolver)
	if deps.History != nil {
		e.technical = technical.NewAnalyzer(deps.History, cfg)
	}
	return e
}

// AnalyzeStories runs the full pipeline over one batch of stories. Missing
// market data never fails the run; the only error is ctx being done.
func (e *engine) AnalyzeStories(ctx context.Context, stories []types.Story, opts types.AnalyzeOptions) (*types.EngineResult, error) {
	now := opts.Now
	if now.IsZero() {
		now = e.now()
	}
	filterHold := e.cfg.Engine.FilterHold
	if opts.FilterHold != nil {
		filterHold = *opts.FilterHold
	}
	maxRecs := e.cfg.Engine.MaxRecommendations
	if opts.MaxRecommendations > 0 {
		maxRecs = opts.MaxRecommendations
	}

	e.purgeCaches()

	result := &types.EngineResult{
		Recommendations: []types.Recommendation{},
		Stories:         []types.StoryTrace{},
		Timestamp:       now,
		StoriesAnalyzed: len(stories),
		Provider:        Provider,
		Model:           Model,
	}

	var analyses []types.StoryAnalysis
	for _, story := range stories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		analysis, trace, ok := e.analyzeStory(ctx, story, now)
		if !ok {
			continue
		}
		result.Stories = append(result.Stories, trace)
		if logger.IsDebugEnabled() {
			logger.Debug(ctx, "Story analyzed",
				"id", trace.ID,
				"sentiment", trace.Sentiment,
				"score", trace.SentimentScore,
				"tickers", sortedKeys(trace.Combined),
			)
		}
		if len(analysis.Tickers) > 0 {
			analyses = append(analyses, analysis)
		}
	}

	if len(analyses) == 0 {
		result.Summary = noStoriesResult
		logger.Info(ctx, "No actionable stories", "stories", len(stories))
		return result, nil
	}

	prices := e.prices.Filter(ctx, candidateTickers(analyses))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.TickersDetected = len(prices)
	analyses = restrictTo(analyses, prices)

	snapshots := e.runTechnical(ctx, sortedKeys(prices))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.TechnicalApplied = len(snapshots)

	recs := e.signals.Generate(analyses, snapshots)
	if filterHold {
		kept := recs[:0]
		for _, r := range recs {
			if r.Action != types.ActionHold {
				kept = append(kept, r)
			}
		}
		recs = kept
	}
	if len(recs) > maxRecs {
		recs = recs[:maxRecs]
	}

	for _, r := range recs {
		logger.Decision(ctx, r.Symbol, string(r.Action), r.Confidence, r.Reason,
			"score", r.Score,
			"allocation_pct", r.TargetAllocationPercent,
			"story_count", r.StoryCount,
		)
	}

	result.Recommendations = append(result.Recommendations, recs...)
	result.Summary = summarize(len(stories), len(prices), len(snapshots), recs)
	return result, nil
}

func (e *engine) analyzeStory(ctx context.Context, story types.Story, now time.Time) (types.StoryAnalysis, types.StoryTrace, bool) {
	text := storyText(story)
	if text == "" {
		return types.StoryAnalysis{}, types.StoryTrace{}, false
	}

	sent := e.sentiment.Analyze(text)
	detected := e.detector.Detect(ctx, text)
	themed := e.themes.MapThemes(text)
	combined := mergeTickers(detected, themed)
	age := parseAgeHours(story.Published, now, e.cfg.Engine.DefaultAgeHours)

	trace := types.StoryTrace{
		ID:                  story.ID,
		Snippet:             truncate(text, traceSnippet),
		Sentiment:           sent.Label,
		SentimentScore:      sent.Score,
		SentimentConfidence: sent.Confidence,
		LexiconHits:         sent.Hits,
		Detected:            detected,
		Themes:              themed,
		Combined:            combined,
		AgeHours:            round1(age),
	}
	analysis := types.StoryAnalysis{
		SentimentScore:      sent.Score,
		SentimentConfidence: sent.Confidence,
		Tickers:             combined,
		AgeHours:            age,
		Snippet:             truncate(text, signalSnippet),
	}
	return analysis, trace, true
}

// runTechnical analyzes every ticker on the worker pool. Failures are left
// out of the returned map.
func (e *engine) runTechnical(ctx context.Context, tickers []string) map[string]types.TechnicalSnapshot {
	out := make(map[string]types.TechnicalSnapshot, len(tickers))
	if e.technical == nil || len(tickers) == 0 {
		return out
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, e.cfg.Engine.Workers))
	for _, symbol := range tickers {
		g.Go(func() error {
			snap, err := e.technical.Analyze(gctx, symbol)
			if err != nil {
				logger.Debug(gctx, "Skipping technical blend", "symbol", symbol, "error", err)
				return nil
			}
			mu.Lock()
			out[symbol] = snap
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (e *engine) purgeCaches() {
	if e.resolver != nil {
		e.resolver.Purge()
	}
	e.prices.Purge()
	if e.technical != nil {
		e.technical.Purge()
	}
}

// mergeTickers adds theme relevance at a discount on top of direct detection.
func mergeTickers(detected, themed map[string]float64) map[string]float64 {
	combined := make(map[string]float64, len(detected)+len(themed))
	for t, r := range detected {
		combined[t] = r
	}
	for t, r := range themed {
		combined[t] = min(1.0, combined[t]+r*themeBlend)
	}
	return combined
}

func candidateTickers(analyses []types.StoryAnalysis) []string {
	seen := make(map[string]bool)
	for _, a := range analyses {
		for t := range a.Tickers {
			seen[t] = true
		}
	}
	return sortedKeys(seen)
}

// restrictTo keeps only priced tickers and drops stories left with none.
func restrictTo(analyses []types.StoryAnalysis, prices map[string]float64) []types.StoryAnalysis {
	out := make([]types.StoryAnalysis, 0, len(analyses))
	for _, a := range analyses {
		kept := make(map[string]float64, len(a.Tickers))
		for t, r := range a.Tickers {
			if _, ok := prices[t]; ok {
				kept[t] = r
			}
		}
		if len(kept) == 0 {
			continue
		}
		a.Tickers = kept
		out = append(out, a)
	}
	return out
}

func summarize(stories, tickers, technical int, recs []types.Recommendation) string {
	buys, sells := 0, 0
	for _, r := range recs {
		switch r.Action {
		case types.ActionBuy:
			buys++
		case types.ActionSell:
			sells++
		}
	}
	bias := "mixed"
	switch {
	case buys > sells:
		bias = "bullish"
	case sells > buys:
		bias = "bearish"
	}
	taNote := ""
	if technical > 0 {
		taNote = fmt.Sprintf(" Technical analysis applied to %d tickers.", technical)
	}
	return fmt.Sprintf("Analyzed %d stories, detected %d tradeable tickers.%s Overall bias is %s with %d BUY and %d SELL signals.",
		stories, tickers, taNote, bias, buys, sells)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
