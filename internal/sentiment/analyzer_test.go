package sentiment

import (
	"math"
	"testing"

	"news-signal-engine/internal/types"
)

func TestAnalyzeNoHits(t *testing.T) {
	a := NewAnalyzer()
	res := a.Analyze("The committee meets on Tuesday afternoon")
	if res.Label != types.LabelNeutral || res.Score != 0 || res.Confidence != 0.1 || res.Hits != 0 {
		t.Fatalf("Expected neutral default, got %+v", res)
	}
}

func TestAnalyzePositiveHeadline(t *testing.T) {
	a := NewAnalyzer()
	res := a.Analyze("NVIDIA soars after earnings beat, shares surge to record")
	if res.Label != types.LabelPositive {
		t.Fatalf("Expected positive, got %+v", res)
	}
	if res.Score <= 0.5 {
		t.Errorf("Expected strong score, got %f", res.Score)
	}
	// soars, earnings beat, beat, surge, record
	if res.Hits != 5 {
		t.Errorf("Expected 5 hits, got %d", res.Hits)
	}
}

func TestAnalyzeNegation(t *testing.T) {
	a := NewAnalyzer()
	plain := a.Analyze("good")
	negated := a.Analyze("not good")
	if plain.Score <= 0 {
		t.Fatalf("Expected good to be positive, got %f", plain.Score)
	}
	if negated.Score >= 0 {
		t.Fatalf("Expected negation to flip sign, got %f", negated.Score)
	}
	if want := round(plain.Score*-0.75, 4); negated.Score != want {
		t.Errorf("Expected %f, got %f", want, negated.Score)
	}
}

func TestAnalyzeIntensifier(t *testing.T) {
	a := NewAnalyzer()
	base := a.Analyze("strong")
	boosted := a.Analyze("very strong")
	if boosted.Score < base.Score {
		t.Fatalf("Expected intensified score >= base, got %f < %f", boosted.Score, base.Score)
	}
	if boosted.Hits != 1 {
		t.Errorf("Intensifier should not count as its own hit, got %d", boosted.Hits)
	}

	damped := a.Analyze("slightly lower")
	if want := round(-0.35*0.6, 4); damped.Score != want {
		t.Errorf("Expected %f, got %f", want, damped.Score)
	}
}

func TestAnalyzePhraseCountedPerOccurrence(t *testing.T) {
	a := NewAnalyzerWithLexicon(map[string]float64{"rate cut": 0.5})
	res := a.Analyze("A rate cut now, another rate cut later")
	if res.Hits != 2 || res.Score != 0.5 {
		t.Fatalf("Expected two phrase hits at 0.5, got %+v", res)
	}
}

func TestAnalyzeBounds(t *testing.T) {
	a := NewAnalyzer()
	inputs := []string{
		"",
		"extremely strong extremely bullish dramatically soaring",
		"massively bankrupt fraud crash plunge",
		"not bad, barely profitable, hardly a recession",
		"can't recover; won't grow. didn't fail",
		"Stocks were flat and mixed, unchanged on the day",
	}
	for _, in := range inputs {
		res := a.Analyze(in)
		if res.Score < -1 || res.Score > 1 || math.IsNaN(res.Score) {
			t.Errorf("%q: score out of range: %f", in, res.Score)
		}
		if res.Confidence < 0.1 || res.Confidence > 1 {
			t.Errorf("%q: confidence out of range: %f", in, res.Confidence)
		}
	}
}

func TestAnalyzeIntensifiedScoreIsClamped(t *testing.T) {
	a := NewAnalyzerWithLexicon(map[string]float64{"soar": 0.9})
	res := a.Analyze("extremely soar")
	if res.Score != 1 {
		t.Fatalf("Expected clamp at 1, got %f", res.Score)
	}
}
