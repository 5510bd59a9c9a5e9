package ta

import "math"

func SMA(closes []float64, n int) float64 {
	if len(closes) < n || n <= 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := len(closes) - n; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(n)
}

// RSI uses plain averages of the last period gains and losses.
// A flat loss side reads as 100.
func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 || period <= 0 {
		return math.NaN()
	}
	gain, loss := 0.0, 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)
	if avgLoss < 1e-10 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}

// EMASeries seeds with the first value and applies alpha = 2/(span+1)
// without bias correction.
func EMASeries(vals []float64, span int) []float64 {
	if len(vals) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(vals))
	out[0] = vals[0]
	for i := 1; i < len(vals); i++ {
		out[i] = alpha*vals[i] + (1-alpha)*out[i-1]
	}
	return out
}

func EMA(vals []float64, span int) float64 {
	s := EMASeries(vals, span)
	if len(s) == 0 {
		return math.NaN()
	}
	return s[len(s)-1]
}

type MACDResult struct {
	MACD, Signal, Histogram    float64
	BullishCross, BearishCross bool
}

// MACD needs at least slow closes. Crossovers compare the last two bars.
func MACD(closes []float64, fast, slow, signal int) (MACDResult, bool) {
	if len(closes) < slow || len(closes) < 2 || fast <= 0 || signal <= 0 {
		return MACDResult{}, false
	}
	f := EMASeries(closes, fast)
	s := EMASeries(closes, slow)
	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = f[i] - s[i]
	}
	sig := EMASeries(line, signal)

	n := len(line) - 1
	res := MACDResult{
		MACD:      line[n],
		Signal:    sig[n],
		Histogram: line[n] - sig[n],
	}
	res.BullishCross = line[n] > sig[n] && line[n-1] <= sig[n-1]
	res.BearishCross = line[n] < sig[n] && line[n-1] >= sig[n-1]
	return res, true
}

// ROC is the percent change against the close period bars back.
func ROC(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}
	past := closes[len(closes)-1-period]
	if math.Abs(past) < 1e-10 {
		return 0, false
	}
	return (closes[len(closes)-1] - past) / past * 100.0, true
}

// VolumeRatio compares the last volume with the mean of the last window
// volumes. Short input reads as a neutral 1.
func VolumeRatio(volumes []float64, window int) (ratio, avg, current float64) {
	if len(volumes) == 0 {
		return 1.0, 0, 0
	}
	current = volumes[len(volumes)-1]
	if window <= 0 || len(volumes) < window {
		return 1.0, 0, current
	}
	avg = SMA(volumes, window)
	return current / math.Max(avg, 1), avg, current
}
