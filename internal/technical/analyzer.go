package technical

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"news-signal-engine/internal/cache"
	"news-signal-engine/internal/interfaces"
	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/store"
	"news-signal-engine/internal/ta"
	"news-signal-engine/internal/types"
)

const (
	rsiPeriod    = 14
	smaShort     = 20
	smaLong      = 50
	emaSpan      = 12
	macdFast     = 12
	macdSlow     = 26
	macdSignal   = 9
	rocPeriod    = 10
	volumeWindow = 20
)

var (
	// ErrNoData means the history source could not be reached or returned an error.
	ErrNoData = errors.New("no price history")
	// ErrInsufficientHistory means fewer bars than an indicator needs.
	ErrInsufficientHistory = errors.New("insufficient price history")
)

// Weights are the composite weights of the four indicator scores.
type Weights struct {
	RSI, MA, MACD, ROC float64
}

// outcome is what gets cached: a snapshot or the reason there is none.
type outcome struct {
	snap types.TechnicalSnapshot
	err  error
}

// Analyzer scores a ticker's recent daily bars. Results, including
// insufficient-history outcomes, are cached per ticker.
type Analyzer struct {
	source   interfaces.HistorySource
	cache    *cache.TTL[outcome]
	weights  Weights
	minBars  int
	period   string
	interval string
	now      func() time.Time
}

func NewAnalyzer(source interfaces.HistorySource, cfg *store.Config) *Analyzer {
	w := cfg.Technical.Weights
	return &Analyzer{
		source:   source,
		cache:    cache.New[outcome](cfg.Cache.TechnicalTTL).WithFetchTimeout(cfg.Engine.FetchTimeout),
		weights:  Weights{RSI: w.RSI, MA: w.MA, MACD: w.MACD, ROC: w.ROC},
		minBars:  cfg.Technical.MinBars,
		period:   cfg.Technical.Period,
		interval: cfg.Technical.Interval,
		now:      time.Now,
	}
}

// Analyze returns the technical snapshot for symbol. Errors wrap ErrNoData or
// ErrInsufficientHistory.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (types.TechnicalSnapshot, error) {
	res, err := a.cache.GetOrFetch(ctx, symbol, func(fctx context.Context) (outcome, error) {
		op := logger.StartOperation(fctx, "technical.history", "symbol", symbol, "period", a.period)
		bars, err := a.source.History(op.Context(), symbol, a.period, a.interval)
		if err != nil {
			err = fmt.Errorf("%s: %w: %v", symbol, ErrNoData, err)
			op.EndWithError(err)
			return outcome{}, err
		}
		op.End("bars", len(bars))
		snap, err := Compute(symbol, bars, a.weights, a.minBars, a.now())
		return outcome{snap: snap, err: err}, nil
	})
	if err != nil {
		logger.Debug(ctx, "Technical analysis unavailable", "symbol", symbol, "error", err)
		return types.TechnicalSnapshot{}, err
	}
	return res.snap, res.err
}

// Purge drops expired snapshots.
func (a *Analyzer) Purge() int {
	return a.cache.Purge()
}

// Compute derives indicator values and scores from bars ordered oldest first.
func Compute(symbol string, bars []types.Bar, w Weights, minBars int, now time.Time) (types.TechnicalSnapshot, error) {
	if len(bars) < max(minBars, smaShort) {
		return types.TechnicalSnapshot{}, fmt.Errorf("%s: %w: %d bars", symbol, ErrInsufficientHistory, len(bars))
	}

	closes := make([]float64, len(bars))
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		volumes[i] = b.Volume
	}

	rsi := ta.RSI(closes, rsiPeriod)
	sma20 := ta.SMA(closes, smaShort)
	macd, ok := ta.MACD(closes, macdFast, macdSlow, macdSignal)
	if math.IsNaN(rsi) || math.IsNaN(sma20) || !ok {
		return types.TechnicalSnapshot{}, fmt.Errorf("%s: %w: %d bars", symbol, ErrInsufficientHistory, len(bars))
	}

	var sma50 *float64
	if v := ta.SMA(closes, smaLong); !math.IsNaN(v) {
		sma50 = &v
	}
	price := closes[len(closes)-1]
	ema12 := ta.EMA(closes, emaSpan)
	volRatio, avgVol, curVol := ta.VolumeRatio(volumes, volumeWindow)

	rsiScore := scoreRSI(rsi)
	maScore := scoreMA(price, sma20, sma50)
	macdScore := scoreMACD(macd.Histogram, macd.BullishCross, macd.BearishCross)
	rocScore := 0.0
	var roc *float64
	if v, ok := ta.ROC(closes, rocPeriod); ok {
		rocScore = scoreROC(v)
		r := round(v, 4)
		roc = &r
	}
	mult := volumeMultiplier(volRatio)

	raw := rsiScore*w.RSI + maScore*w.MA + macdScore*w.MACD + rocScore*w.ROC
	score := clamp(raw*mult, -1, 1)

	agree := 0
	for _, s := range []float64{rsiScore, maScore, macdScore, rocScore} {
		if s*raw > 0 {
			agree++
		}
	}
	agreement := float64(agree) / 4.0
	strength := math.Min(1, math.Abs(raw)*2)
	conf := clamp(0.3+0.4*agreement+0.3*strength, 0, 1)

	snap := types.TechnicalSnapshot{
		Symbol:   symbol,
		Price:    round(price, 2),
		BarCount: len(bars),

		RSI:   round(rsi, 2),
		SMA20: round(sma20, 2),
		EMA12: round(ema12, 2),

		MACD:          round(macd.MACD, 4),
		MACDSignal:    round(macd.Signal, 4),
		MACDHistogram: round(macd.Histogram, 4),
		BullishCross:  macd.BullishCross,
		BearishCross:  macd.BearishCross,

		ROC10:         roc,
		VolumeRatio:   round(volRatio, 2),
		AvgVolume:     avgVol,
		CurrentVolume: curVol,

		RSIScore:         round(rsiScore, 4),
		MAScore:          round(maScore, 4),
		MACDScore:        round(macdScore, 4),
		ROCScore:         round(rocScore, 4),
		VolumeMultiplier: round(mult, 4),

		TechnicalScore:      round(score, 4),
		TechnicalConfidence: round(conf, 3),
		ComputedAt:          now,
	}
	if sma50 != nil {
		v := round(*sma50, 2)
		snap.SMA50 = &v
	}
	return snap, nil
}
