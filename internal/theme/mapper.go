package theme

import (
	"sort"
	"strings"

	"news-signal-engine/internal/store"
)

type keyword struct {
	text    string
	tickers []weight
}

// Mapper infers tickers from sector and theme keywords.
type Mapper struct {
	keywords []keyword
}

// NewMapper keeps only basket members inside the tradeable universe.
func NewMapper(cfg store.UniverseConfig) *Mapper {
	tradeable := cfg.TradeableSet()
	m := &Mapper{}
	for k, ws := range baskets {
		kw := keyword{text: k}
		for _, w := range ws {
			if tradeable[w.ticker] {
				kw.tickers = append(kw.tickers, w)
			}
		}
		if len(kw.tickers) > 0 {
			m.keywords = append(m.keywords, kw)
		}
	}
	sort.Slice(m.keywords, func(i, j int) bool { return m.keywords[i].text < m.keywords[j].text })
	return m
}

// MapThemes returns ticker to the highest basket weight among matched keywords.
func (m *Mapper) MapThemes(text string) map[string]float64 {
	lower := strings.ToLower(text)
	out := make(map[string]float64)
	for _, kw := range m.keywords {
		if !strings.Contains(lower, kw.text) {
			continue
		}
		for _, w := range kw.tickers {
			if w.weight > out[w.ticker] {
				out[w.ticker] = w.weight
			}
		}
	}
	return out
}
