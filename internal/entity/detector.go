package entity

import (
	"context"
	"math"
	"sort"
	"strings"

	"news-signal-engine/internal/store"
)

type alias struct {
	name   string
	ticker string
}

// Detector finds tradeable tickers referenced by a piece of text.
type Detector struct {
	tradeable    map[string]bool
	ambiguous    map[string]bool
	symbols      []string
	aliases      []alias
	resolver     *Resolver
	allowOutside bool
}

// NewDetector builds a detector over the configured universe. resolver may be
// nil, in which case only aliases and literal symbols are matched.
func NewDetector(cfg store.UniverseConfig, resolver *Resolver) *Detector {
	d := &Detector{
		tradeable:    cfg.TradeableSet(),
		ambiguous:    make(map[string]bool, len(cfg.Ambiguous)),
		resolver:     resolver,
		allowOutside: cfg.AllowDynamicOutside,
	}
	for _, t := range cfg.Ambiguous {
		d.ambiguous[t] = true
	}
	for t := range d.tradeable {
		d.symbols = append(d.symbols, t)
	}
	sort.Strings(d.symbols)

	for name, ticker := range companyAliases {
		if d.tradeable[ticker] {
			d.aliases = append(d.aliases, alias{name: name, ticker: ticker})
		}
	}
	sort.Slice(d.aliases, func(i, j int) bool { return d.aliases[i].name < d.aliases[j].name })
	return d
}

// Detect returns ticker to relevance in [0,1]. The most mentioned ticker
// scores 1 and the rest are scaled against it.
func (d *Detector) Detect(ctx context.Context, text string) map[string]float64 {
	hits := make(map[string]int)

	lower := strings.ToLower(text)
	for _, a := range d.aliases {
		if n := strings.Count(lower, a.name); n > 0 {
			hits[a.ticker] += n
		}
	}

	for _, sym := range d.symbols {
		var n int
		if d.ambiguous[sym] {
			n = countCashtag(text, sym)
		} else {
			n = countBareSymbol(text, sym)
		}
		if n > 0 {
			hits[sym] += n
		}
	}

	if d.resolver != nil {
		for ticker, relevance := range d.resolver.ExtractAndResolve(ctx, text) {
			if _, seen := hits[ticker]; seen {
				continue
			}
			if !d.allowOutside && !d.tradeable[ticker] {
				continue
			}
			hits[ticker] = max(1, int(math.Round(relevance*3)))
		}
	}

	result := make(map[string]float64, len(hits))
	if len(hits) == 0 {
		return result
	}
	maxHits := 1
	for _, n := range hits {
		maxHits = max(maxHits, n)
	}
	for ticker, n := range hits {
		result[ticker] = round3(math.Min(1, float64(n)/float64(maxHits)))
	}
	return result
}

// countBareSymbol counts occurrences of sym not touching another ASCII letter.
func countBareSymbol(text, sym string) int {
	count := 0
	for i := 0; i+len(sym) <= len(text); {
		j := strings.Index(text[i:], sym)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(sym)
		if (start == 0 || !isASCIILetter(text[start-1])) && (end == len(text) || !isASCIILetter(text[end])) {
			count++
			i = end
			continue
		}
		i = start + 1
	}
	return count
}

// countCashtag counts $SYM followed by a word boundary.
func countCashtag(text, sym string) int {
	tag := "$" + sym
	count := 0
	for i := 0; i+len(tag) <= len(text); {
		j := strings.Index(text[i:], tag)
		if j < 0 {
			break
		}
		end := i + j + len(tag)
		if end == len(text) || !isWordChar(text[end]) {
			count++
		}
		i = end
	}
	return count
}

func isWordChar(b byte) bool {
	return isASCIILetter(b) || (b >= '0' && b <= '9') || b == '_'
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
