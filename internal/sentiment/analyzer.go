package sentiment

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"news-signal-engine/internal/types"
)

const (
	negationFactor  = -0.75
	labelThreshold  = 0.05
	fullHitCount    = 5.0
	neutralConf     = 0.1
	hitConfWeight   = 0.4
	magnitudeWeight = 0.6
)

var tokenPattern = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

type phrase struct {
	text  string
	score float64
}

// Analyzer scores text against a fixed lexicon. It holds no mutable state and
// is safe for concurrent use.
type Analyzer struct {
	phrases []phrase
	words   map[string]float64
}

func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithLexicon(financialLexicon)
}

// NewAnalyzerWithLexicon splits the lexicon into multi-word entries (space or
// hyphen) matched by substring and single tokens matched after tokenizing.
func NewAnalyzerWithLexicon(lexicon map[string]float64) *Analyzer {
	a := &Analyzer{words: make(map[string]float64, len(lexicon))}
	for k, v := range lexicon {
		if strings.ContainsAny(k, " -") {
			a.phrases = append(a.phrases, phrase{text: k, score: v})
			continue
		}
		a.words[k] = v
	}
	sort.Slice(a.phrases, func(i, j int) bool { return a.phrases[i].text < a.phrases[j].text })
	return a
}

func (a *Analyzer) Analyze(text string) types.SentimentResult {
	lower := strings.ToLower(text)
	var scores []float64

	for _, p := range a.phrases {
		for n := strings.Count(lower, p.text); n > 0; n-- {
			scores = append(scores, p.score)
		}
	}

	tokens := tokenPattern.FindAllString(lower, -1)
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if i+1 < len(tokens) {
			next, scored := a.words[tokens[i+1]]
			if factor, ok := intensifiers[tok]; ok && factor != 1.0 && scored {
				scores = append(scores, next*factor)
				i += 2
				continue
			}
			if negationWords[tok] && scored {
				scores = append(scores, next*negationFactor)
				i += 2
				continue
			}
		}
		if s, ok := a.words[tok]; ok {
			scores = append(scores, s)
		}
		i++
	}

	if len(scores) == 0 {
		return types.SentimentResult{Label: types.LabelNeutral, Confidence: neutralConf}
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	avg := clamp(sum/float64(len(scores)), -1, 1)

	hitConf := math.Min(1, float64(len(scores))/fullHitCount)
	magConf := math.Min(1, math.Abs(avg)*2)
	conf := clamp(hitConfWeight*hitConf+magnitudeWeight*magConf, neutralConf, 1)

	label := types.LabelNeutral
	switch {
	case avg > labelThreshold:
		label = types.LabelPositive
	case avg < -labelThreshold:
		label = types.LabelNegative
	}

	return types.SentimentResult{
		Label:      label,
		Score:      round(avg, 4),
		Confidence: round(conf, 3),
		Hits:       len(scores),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
