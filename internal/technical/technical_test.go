package technical

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

var defaultWeights = Weights{RSI: 0.25, MA: 0.30, MACD: 0.30, ROC: 0.15}

func series(n int, price func(i int) float64, volume func(i int) float64) []types.Bar {
	bars := make([]types.Bar, n)
	for i := range bars {
		bars[i] = types.Bar{Ts: int64(i), Close: price(i), Volume: volume(i)}
	}
	return bars
}

func flatVolume(int) float64 { return 1_000_000 }

type stubHistory struct {
	bars  []types.Bar
	err   error
	calls int32
}

func (s *stubHistory) History(context.Context, string, string, string) ([]types.Bar, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.bars, s.err
}

func TestScoreRSI(t *testing.T) {
	cases := map[float64]float64{0: 1.0, 25: 0.8, 40: 0, 50: 0, 60: 0, 75: -0.8, 100: -1.0}
	for rsi, want := range cases {
		if got := scoreRSI(rsi); math.Abs(got-want) > 1e-9 {
			t.Errorf("scoreRSI(%v) = %v, want %v", rsi, got, want)
		}
	}
}

func TestVolumeMultiplier(t *testing.T) {
	cases := map[float64]float64{10: 1.4, 2: 1.2, 1: 1.0, 0.5: 1.0, 0.2: 0.7}
	for ratio, want := range cases {
		if got := volumeMultiplier(ratio); math.Abs(got-want) > 1e-9 {
			t.Errorf("volumeMultiplier(%v) = %v, want %v", ratio, got, want)
		}
	}
}

func TestScoreMAWithoutLongAverage(t *testing.T) {
	if got := scoreMA(110, 100, nil); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected 1.0 with missing SMA50, got %v", got)
	}
	sma50 := 120.0
	if got := scoreMA(90, 100, &sma50); math.Abs(got+1.0) > 1e-9 {
		t.Errorf("Expected -1.0, got %v", got)
	}
}

func TestComputeInsufficientHistory(t *testing.T) {
	now := time.Now()
	for _, n := range []int{0, 19, 25} {
		bars := series(n, func(i int) float64 { return 100 + float64(i) }, flatVolume)
		if _, err := Compute("X", bars, defaultWeights, 20, now); !errors.Is(err, ErrInsufficientHistory) {
			t.Errorf("%d bars: expected ErrInsufficientHistory, got %v", n, err)
		}
	}
	bars := series(26, func(i int) float64 { return 100 + float64(i) }, flatVolume)
	if _, err := Compute("X", bars, defaultWeights, 20, now); err != nil {
		t.Errorf("26 bars should be enough, got %v", err)
	}
}

func TestComputeExtremesStayInRange(t *testing.T) {
	spike := func(i int) float64 {
		if i == 59 {
			return 50_000_000
		}
		return 1_000_000
	}
	thin := func(i int) float64 {
		if i == 59 {
			return 10
		}
		return 1_000_000
	}
	inputs := map[string][]types.Bar{
		"rising":       series(60, func(i int) float64 { return 50 * math.Pow(1.05, float64(i)) }, spike),
		"falling":      series(60, func(i int) float64 { return 500 * math.Pow(0.95, float64(i)) }, spike),
		"falling-thin": series(60, func(i int) float64 { return 500 * math.Pow(0.95, float64(i)) }, thin),
		"flat":         series(30, func(int) float64 { return 42 }, flatVolume),
	}
	for name, bars := range inputs {
		snap, err := Compute(name, bars, defaultWeights, 20, time.Now())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if snap.TechnicalScore < -1 || snap.TechnicalScore > 1 {
			t.Errorf("%s: score out of range: %v", name, snap.TechnicalScore)
		}
		if snap.TechnicalConfidence < 0 || snap.TechnicalConfidence > 1 {
			t.Errorf("%s: confidence out of range: %v", name, snap.TechnicalConfidence)
		}
	}

	rising, _ := Compute("up", inputs["rising"], defaultWeights, 20, time.Now())
	if rising.RSI != 100 || rising.RSIScore != -1 {
		t.Errorf("Expected overbought RSI, got %v / %v", rising.RSI, rising.RSIScore)
	}
	if rising.SMA50 == nil || rising.ROC10 == nil {
		t.Error("Expected SMA50 and ROC10 with 60 bars")
	}
	if rising.VolumeMultiplier != 1.4 {
		t.Errorf("Expected capped volume multiplier 1.4, got %v", rising.VolumeMultiplier)
	}

	falling, _ := Compute("down", inputs["falling"], defaultWeights, 20, time.Now())
	if falling.RSI != 0 || falling.RSIScore != 1 {
		t.Errorf("Expected oversold RSI, got %v / %v", falling.RSI, falling.RSIScore)
	}
	if falling.MAScore != -1 {
		t.Errorf("Expected bearish MA structure, got %v", falling.MAScore)
	}
}

func TestComputeShortSeriesHasNoLongAverage(t *testing.T) {
	bars := series(30, func(i int) float64 { return 100 + float64(i%3) }, flatVolume)
	snap, err := Compute("X", bars, defaultWeights, 20, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if snap.SMA50 != nil {
		t.Errorf("Expected no SMA50 with 30 bars, got %v", *snap.SMA50)
	}
}

func TestAnalyzeIsCached(t *testing.T) {
	src := &stubHistory{bars: series(40, func(i int) float64 { return 100 + math.Sin(float64(i)) }, flatVolume)}
	a := NewAnalyzer(src, store.Default())

	first, err := a.Analyze(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical snapshots within TTL:\n%+v\n%+v", first, second)
	}
	if src.calls != 1 {
		t.Errorf("Expected one history fetch, got %d", src.calls)
	}
}

func TestAnalyzeCachesInsufficientHistoryButNotErrors(t *testing.T) {
	short := &stubHistory{bars: series(5, func(i int) float64 { return 10 }, flatVolume)}
	a := NewAnalyzer(short, store.Default())
	for i := 0; i < 2; i++ {
		if _, err := a.Analyze(context.Background(), "TINY"); !errors.Is(err, ErrInsufficientHistory) {
			t.Fatalf("Expected ErrInsufficientHistory, got %v", err)
		}
	}
	if short.calls != 1 {
		t.Errorf("Expected insufficient history to be cached, got %d calls", short.calls)
	}

	broken := &stubHistory{err: errors.New("timeout")}
	a = NewAnalyzer(broken, store.Default())
	for i := 0; i < 2; i++ {
		if _, err := a.Analyze(context.Background(), "DOWN"); !errors.Is(err, ErrNoData) {
			t.Fatalf("Expected ErrNoData, got %v", err)
		}
	}
	if broken.calls != 2 {
		t.Errorf("Expected transport errors to be retried, got %d calls", broken.calls)
	}
}
