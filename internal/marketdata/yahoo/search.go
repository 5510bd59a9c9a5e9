package yahoo

import (
	"context"
	"fmt"
	"strconv"

	"news-signal-engine/internal/types"
)

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		Exchange  string `json:"exchange"`
		ShortName string `json:"shortname"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// Search queries /v1/finance/search for instruments matching query, in
// Yahoo's ranking order.
func (c *Client) Search(ctx context.Context, query string) ([]types.SymbolMatch, error) {
	resp, err := c.search.GET(ctx, "/v1/finance/search", map[string]string{
		"q":           query,
		"quotesCount": strconv.Itoa(c.quotesCount),
		"newsCount":   "0",
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var body searchResponse
	if err := resp.ParseJSON(&body); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	matches := make([]types.SymbolMatch, 0, len(body.Quotes))
	for _, q := range body.Quotes {
		matches = append(matches, types.SymbolMatch{
			Symbol:    q.Symbol,
			Exchange:  q.Exchange,
			ShortName: q.ShortName,
			QuoteType: q.QuoteType,
		})
	}
	return matches, nil
}
