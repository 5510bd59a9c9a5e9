package yahoo

import (
	"context"
	"fmt"

	"github.com/piquette/finance-go"

	"news-signal-engine/internal/types"
)

// Quote returns the regular market price and exchange code for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (types.Quote, error) {
	q, err := await(ctx, func() (*finance.Quote, error) { return c.getQuote(symbol) })
	if err != nil {
		return types.Quote{}, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if q == nil {
		return types.Quote{}, fmt.Errorf("quote %s: %w", symbol, ErrNotFound)
	}
	return types.Quote{
		Symbol:   symbol,
		Price:    q.RegularMarketPrice,
		Exchange: q.ExchangeID,
	}, nil
}
