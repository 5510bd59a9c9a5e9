package signal

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

const (
	reasonSnippetLen = 80
	fullStoryCount   = 3.0
	minHalfLifeHours = 0.1
	allocationScale  = 30
	minAllocation    = 1
	maxAllocation    = 20
)

// Generator turns per-story sentiment into per-ticker recommendations.
type Generator struct {
	cfg    store.SignalConfig
	lambda float64
}

func NewGenerator(cfg store.SignalConfig) *Generator {
	return &Generator{
		cfg:    cfg,
		lambda: math.Ln2 / math.Max(cfg.DecayHalfLifeHours, minHalfLifeHours),
	}
}

// DecayWeight halves a story's influence every half-life hours.
func (g *Generator) DecayWeight(ageHours float64) float64 {
	return math.Exp(-g.lambda * math.Max(ageHours, 0))
}

type aggregate struct {
	weightedSum float64
	weightSum   float64
	confSum     float64
	count       int
	reasons     []string
	reasonCount int
}

// Generate aggregates analyses per ticker, blends in technical snapshots when
// present and returns recommendations ordered BUY, SELL, HOLD and by
// descending confidence within each action.
func (g *Generator) Generate(analyses []types.StoryAnalysis, technical map[string]types.TechnicalSnapshot) []types.Recommendation {
	aggs := make(map[string]*aggregate)
	var order []string

	for _, a := range analyses {
		decay := g.DecayWeight(a.AgeHours)
		for _, ticker := range sortedTickers(a.Tickers) {
			relevance := a.Tickers[ticker]
			agg, ok := aggs[ticker]
			if !ok {
				agg = &aggregate{}
				aggs[ticker] = agg
				order = append(order, ticker)
			}
			w := decay * relevance * a.SentimentConfidence
			agg.weightedSum += a.SentimentScore * w
			agg.weightSum += w
			agg.confSum += a.SentimentConfidence * relevance
			agg.count++
			if a.Snippet != "" {
				agg.reasonCount++
				if len(agg.reasons) < g.cfg.MaxReasons {
					agg.reasons = append(agg.reasons, truncate(a.Snippet, reasonSnippetLen))
				}
			}
		}
	}

	recs := make([]types.Recommendation, 0, len(order))
	for _, ticker := range order {
		agg := aggs[ticker]
		if agg.weightSum < g.cfg.MinWeight {
			continue
		}

		sentScore := agg.weightedSum / agg.weightSum
		avgConf := agg.confSum / float64(agg.count)
		sentConf := math.Min(1, avgConf*math.Min(1, float64(agg.count)/fullStoryCount))

		score, conf := sentScore, sentConf
		rec := types.Recommendation{Symbol: ticker}
		if snap, ok := technical[ticker]; ok {
			score = sentScore*g.cfg.SentimentWeight + snap.TechnicalScore*g.cfg.TechnicalWeight
			conf = sentConf*g.cfg.SentimentWeight + snap.TechnicalConfidence*g.cfg.TechnicalWeight
			ts := round(snap.TechnicalScore, 4)
			rec.TechnicalScore = &ts
			rec.Technical = &snap
		}
		score = clamp(score, -1, 1)
		conf = clamp(conf, 0, 1)

		rec.Action = g.classify(score, conf)
		rec.Confidence = round(conf, 3)
		rec.Score = round(score, 4)
		rec.SentimentScore = round(sentScore, 4)
		rec.TargetAllocationPercent = positionSize(conf, math.Abs(score))
		rec.StoryCount = agg.count
		rec.Reason = joinReasons(agg.reasons, agg.reasonCount)
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		ri, rj := recs[i].Action.Rank(), recs[j].Action.Rank()
		if ri != rj {
			return ri < rj
		}
		return recs[i].Confidence > recs[j].Confidence
	})
	return recs
}

// classify applies strict score thresholds gated by minimum confidence.
func (g *Generator) classify(score, conf float64) types.Action {
	switch {
	case score > g.cfg.BuyThreshold && conf >= g.cfg.MinConfidence:
		return types.ActionBuy
	case score < g.cfg.SellThreshold && conf >= g.cfg.MinConfidence:
		return types.ActionSell
	default:
		return types.ActionHold
	}
}

func positionSize(conf, absScore float64) int {
	raw := int(math.Round(conf * absScore * allocationScale))
	return max(minAllocation, min(maxAllocation, raw))
}

func joinReasons(reasons []string, total int) string {
	out := strings.Join(reasons, "; ")
	if extra := total - len(reasons); extra > 0 {
		out += fmt.Sprintf(" (+%d more)", extra)
	}
	return out
}

func sortedTickers(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
