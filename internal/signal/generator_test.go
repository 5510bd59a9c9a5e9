package signal

import (
	"math"
	"strings"
	"testing"

	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

func newTestGenerator() *Generator {
	return NewGenerator(store.Default().Signal)
}

func TestDecayWeightIsMonotonic(t *testing.T) {
	g := newTestGenerator()
	if w := g.DecayWeight(0); w != 1 {
		t.Fatalf("Expected weight 1 at age 0, got %v", w)
	}
	if w := g.DecayWeight(-5); w != 1 {
		t.Fatalf("Negative ages clamp to 0, got %v", w)
	}
	if w := g.DecayWeight(6); math.Abs(w-0.5) > 1e-12 {
		t.Fatalf("Expected 0.5 at one half-life, got %v", w)
	}
	prev := 2.0
	for age := 0.0; age <= 72; age += 0.5 {
		w := g.DecayWeight(age)
		if w > prev || w <= 0 || w > 1 {
			t.Fatalf("Decay not monotonic at %v: %v after %v", age, w, prev)
		}
		prev = w
	}
}

func TestClassifyThresholdsAreStrict(t *testing.T) {
	g := newTestGenerator()
	cases := []struct {
		score, conf float64
		want        types.Action
	}{
		{0.15, 1, types.ActionHold},
		{-0.15, 1, types.ActionHold},
		{0.1501, 1, types.ActionBuy},
		{-0.1501, 1, types.ActionSell},
		{0.9, 0.29, types.ActionHold},
		{0.9, 0.3, types.ActionBuy},
	}
	for _, c := range cases {
		if got := g.classify(c.score, c.conf); got != c.want {
			t.Errorf("classify(%v, %v) = %s, want %s", c.score, c.conf, got, c.want)
		}
	}
}

func TestPositionSizeBounds(t *testing.T) {
	if got := positionSize(1, 1); got != 20 {
		t.Errorf("Expected cap at 20, got %d", got)
	}
	if got := positionSize(0.01, 0.01); got != 1 {
		t.Errorf("Expected floor at 1, got %d", got)
	}
	if got := positionSize(0.5, 0.4); got != 6 {
		t.Errorf("Expected 6, got %d", got)
	}
}

func story(score, conf float64, age float64, snippet string, tickers map[string]float64) types.StoryAnalysis {
	return types.StoryAnalysis{
		SentimentScore:      score,
		SentimentConfidence: conf,
		Tickers:             tickers,
		AgeHours:            age,
		Snippet:             snippet,
	}
}

func TestGenerateSentimentOnly(t *testing.T) {
	g := newTestGenerator()
	nvda := map[string]float64{"NVDA": 1}
	recs := g.Generate([]types.StoryAnalysis{
		story(0.6, 0.9, 0, "one", nvda),
		story(0.6, 0.9, 0, "two", nvda),
		story(0.6, 0.9, 0, "three", nvda),
	}, nil)
	if len(recs) != 1 {
		t.Fatalf("Expected one recommendation, got %d", len(recs))
	}
	r := recs[0]
	if r.Action != types.ActionBuy || r.Score != 0.6 || r.Confidence != 0.9 {
		t.Fatalf("Unexpected recommendation %+v", r)
	}
	if r.TechnicalScore != nil || r.Technical != nil {
		t.Error("Expected no technical blend")
	}
	if r.StoryCount != 3 || r.Reason != "one; two; three" {
		t.Errorf("Unexpected story count/reason: %d %q", r.StoryCount, r.Reason)
	}
	// 0.9 * 0.6 * 30 = 16.2
	if r.TargetAllocationPercent != 16 {
		t.Errorf("Expected allocation 16, got %d", r.TargetAllocationPercent)
	}
}

func TestGenerateBlendsTechnical(t *testing.T) {
	g := newTestGenerator()
	recs := g.Generate([]types.StoryAnalysis{
		story(0.75, 1, 0, "NVIDIA soars", map[string]float64{"NVDA": 1}),
	}, map[string]types.TechnicalSnapshot{
		"NVDA": {Symbol: "NVDA", TechnicalScore: 0, TechnicalConfidence: 0.5},
	})
	r := recs[0]
	// sentiment confidence 1 * (1/3); blended 0.55*0.3333 + 0.45*0.5
	if r.Action != types.ActionBuy {
		t.Fatalf("Expected BUY, got %+v", r)
	}
	if r.Score != 0.4125 {
		t.Errorf("Expected blended score 0.4125, got %v", r.Score)
	}
	if r.Confidence != 0.408 {
		t.Errorf("Expected blended confidence 0.408, got %v", r.Confidence)
	}
	if r.SentimentScore != 0.75 || r.TechnicalScore == nil || *r.TechnicalScore != 0 {
		t.Errorf("Expected component scores to be kept, got %+v", r)
	}
}

func TestGenerateOrdering(t *testing.T) {
	g := newTestGenerator()
	three := func(score, conf float64, ticker string) []types.StoryAnalysis {
		var out []types.StoryAnalysis
		for i := 0; i < 3; i++ {
			out = append(out, story(score, conf, 0, ticker, map[string]float64{ticker: 1}))
		}
		return out
	}
	var in []types.StoryAnalysis
	in = append(in, three(0.02, 0.8, "HOLD1")...)
	in = append(in, three(-0.5, 0.7, "SELL1")...)
	in = append(in, three(0.5, 0.6, "BUYLO")...)
	in = append(in, three(0.5, 0.9, "BUYHI")...)

	recs := g.Generate(in, nil)
	var got []string
	for _, r := range recs {
		got = append(got, r.Symbol)
	}
	want := "BUYHI,BUYLO,SELL1,HOLD1"
	if strings.Join(got, ",") != want {
		t.Fatalf("Expected order %s, got %v", want, got)
	}
}

func TestGenerateReasonsAreCapped(t *testing.T) {
	g := newTestGenerator()
	var in []types.StoryAnalysis
	long := strings.Repeat("x", 120)
	for i := 0; i < 5; i++ {
		in = append(in, story(0.4, 0.8, 1, long, map[string]float64{"AAPL": 0.5}))
	}
	r := g.Generate(in, nil)[0]
	parts := strings.Split(strings.TrimSuffix(r.Reason, " (+2 more)"), "; ")
	if len(parts) != 3 || !strings.HasSuffix(r.Reason, " (+2 more)") {
		t.Fatalf("Unexpected reason %q", r.Reason)
	}
	if len(parts[0]) != 80 {
		t.Errorf("Expected snippets cut to 80 chars, got %d", len(parts[0]))
	}
}

func TestGenerateDropsNegligibleWeight(t *testing.T) {
	g := newTestGenerator()
	recs := g.Generate([]types.StoryAnalysis{
		story(0.9, 0.9, 500, "stale", map[string]float64{"KO": 1}),
	}, nil)
	if len(recs) != 0 {
		t.Fatalf("Expected stale story to be dropped, got %+v", recs)
	}
}

func TestGenerateBlendedRangeAtExtremes(t *testing.T) {
	g := newTestGenerator()
	for _, s := range []float64{-1, 1} {
		recs := g.Generate([]types.StoryAnalysis{
			story(s, 1, 0, "x", map[string]float64{"T": 1}),
		}, map[string]types.TechnicalSnapshot{"T": {TechnicalScore: s, TechnicalConfidence: 1}})
		r := recs[0]
		if r.Score < -1 || r.Score > 1 || r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("Out of range for %v: %+v", s, r)
		}
	}
}
