package interfaces

import (
	"context"

	"news-signal-engine/internal/types"
)

// QuoteSource returns the latest quote for a symbol.
type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (types.Quote, error)
}

// HistorySource returns daily bars, oldest first.
type HistorySource interface {
	History(ctx context.Context, symbol, period, interval string) ([]types.Bar, error)
}

// SymbolSearcher looks up listed instruments by free-text name.
type SymbolSearcher interface {
	Search(ctx context.Context, query string) ([]types.SymbolMatch, error)
}
