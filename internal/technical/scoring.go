package technical

import "math"

func scoreRSI(rsi float64) float64 {
	switch {
	case rsi <= 25:
		return 0.8 + 0.2*(25-rsi)/25.0
	case rsi <= 40:
		return 0.8 * (40 - rsi) / 15.0
	case rsi <= 60:
		return 0.0
	case rsi <= 75:
		return -0.8 * (rsi - 60) / 15.0
	default:
		return -0.8 - 0.2*(rsi-75)/25.0
	}
}

// scoreMA rewards price above both averages and a rising 20/50 structure.
// Without a 50-day average the 50-day comparisons count as satisfied.
func scoreMA(price, sma20 float64, sma50 *float64) float64 {
	aboveSMA50, sma20Above50 := true, true
	if sma50 != nil {
		aboveSMA50 = price > *sma50
		sma20Above50 = sma20 > *sma50
	}
	score := signed(price > sma20, 0.3) + signed(aboveSMA50, 0.3) + signed(sma20Above50, 0.4)
	return clamp(score, -1, 1)
}

func scoreMACD(histogram float64, bullish, bearish bool) float64 {
	if bullish {
		return 0.7
	}
	if bearish {
		return -0.7
	}
	return signed(histogram > 0, 0.3)
}

func scoreROC(roc float64) float64 {
	return clamp(math.Tanh(roc/8.0), -1, 1)
}

// volumeMultiplier amplifies on heavy volume and damps on thin volume.
func volumeMultiplier(ratio float64) float64 {
	switch {
	case ratio > 1.5:
		return 1.0 + math.Min(0.4, (ratio-1.0)*0.2)
	case ratio < 0.5:
		return 0.7
	default:
		return 1.0
	}
}

func signed(cond bool, v float64) float64 {
	if cond {
		return v
	}
	return -v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
