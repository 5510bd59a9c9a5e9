package yahoo

import (
	"context"
	"fmt"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"news-signal-engine/internal/types"
)

// History returns bars covering period at interval, oldest first.
func (c *Client) History(ctx context.Context, symbol, period, interval string) ([]types.Bar, error) {
	end := c.now()
	start, err := periodStart(period, end)
	if err != nil {
		return nil, err
	}

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.Interval(interval),
	}

	bars, err := await(ctx, func() ([]types.Bar, error) {
		iter := c.getChart(params)
		var out []types.Bar
		for iter.Next() {
			b := iter.Bar()
			out = append(out, types.Bar{
				Ts:     int64(b.Timestamp),
				Close:  b.Close.InexactFloat64(),
				Volume: float64(b.Volume),
			})
		}
		return out, iter.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", symbol, err)
	}
	return bars, nil
}
