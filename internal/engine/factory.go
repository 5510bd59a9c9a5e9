package engine

import (
	"errors"
	"fmt"

	"news-signal-engine/internal/interfaces"
	"news-signal-engine/internal/store"
)

// Deps are the market-data collaborators. Quotes is required; without
// History the engine runs sentiment-only, without Search it skips
// name resolution.
type Deps struct {
	Quotes  interfaces.QuoteSource
	History interfaces.HistorySource
	Search  interfaces.SymbolSearcher
}

func New(cfg *store.Config, deps Deps) (interfaces.Engine, error) {
	return newEngine(cfg, deps)
}

func newEngine(cfg *store.Config, deps Deps) (*engine, error) {
	if cfg == nil {
		cfg = store.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if deps.Quotes == nil {
		return nil, errors.New("engine requires a quote source")
	}
	return build(cfg, deps), nil
}
