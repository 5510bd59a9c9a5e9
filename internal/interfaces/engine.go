package interfaces

import (
	"context"

	"news-signal-engine/internal/types"
)

type Engine interface {
	AnalyzeStories(ctx context.Context, stories []types.Story, opts types.AnalyzeOptions) (*types.EngineResult, error)
}
