package engineobs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"news-signal-engine/internal/interfaces"
	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/trace"
	"news-signal-engine/internal/types"
)

type observableEngine struct {
	engine interfaces.Engine
}

var _ interfaces.Engine = (*observableEngine)(nil)

func Wrap(eng interfaces.Engine) interfaces.Engine {
	return &observableEngine{
		engine: eng,
	}
}

func (oe *observableEngine) AnalyzeStories(ctx context.Context, stories []types.Story, opts types.AnalyzeOptions) (*types.EngineResult, error) {
	ctx, span := trace.StartSpan(ctx, "engine.AnalyzeStories")
	defer span.End()

	start := time.Now()
	span.SetAttributes(attribute.Int("stories", len(stories)))

	logger.InfoSkip(ctx, 1, "Starting story analysis",
		"stories", len(stories),
	)
	logger.DebugSkip(ctx, 1, "Analyze options",
		"filter_hold_override", opts.FilterHold != nil,
		"max_recommendations", opts.MaxRecommendations,
		"fixed_now", !opts.Now.IsZero(),
	)

	result, err := oe.engine.AnalyzeStories(ctx, stories, opts)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Story analysis failed", err,
			"stories", len(stories),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("recommendations", len(result.Recommendations)),
		attribute.Int("tickers_detected", result.TickersDetected),
	)
	logger.InfoSkip(ctx, 1, "Story analysis completed",
		"stories", result.StoriesAnalyzed,
		"tickers_detected", result.TickersDetected,
		"technical_applied", result.TechnicalApplied,
		"recommendations", len(result.Recommendations),
		"summary", result.Summary,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}
