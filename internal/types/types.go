package types

import "time"

// Story is one news item as handed to the engine.
type Story struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text,omitempty"`
	Title     string `json:"title,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Published string `json:"published,omitempty"`
}

type Bar struct {
	Ts     int64   `json:"ts"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type Quote struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Exchange string  `json:"exchange"`
}

// SymbolMatch is one hit returned by a symbol search.
type SymbolMatch struct {
	Symbol    string `json:"symbol"`
	Exchange  string `json:"exchange"`
	ShortName string `json:"shortname,omitempty"`
	QuoteType string `json:"quoteType,omitempty"`
}

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

type SentimentResult struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Hits       int     `json:"hits"`
}

// StoryAnalysis is the per-story input to signal generation. Tickers maps
// symbol to relevance in [0,1].
type StoryAnalysis struct {
	SentimentScore      float64
	SentimentConfidence float64
	Tickers             map[string]float64
	AgeHours            float64
	Snippet             string
}

type TechnicalSnapshot struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	BarCount int     `json:"bar_count"`

	RSI   float64  `json:"rsi"`
	SMA20 float64  `json:"sma_20"`
	SMA50 *float64 `json:"sma_50,omitempty"`
	EMA12 float64  `json:"ema_12"`

	MACD          float64 `json:"macd"`
	MACDSignal    float64 `json:"macd_signal"`
	MACDHistogram float64 `json:"macd_histogram"`
	BullishCross  bool    `json:"macd_bullish_cross"`
	BearishCross  bool    `json:"macd_bearish_cross"`

	ROC10         *float64 `json:"roc_10,omitempty"`
	VolumeRatio   float64  `json:"volume_ratio"`
	AvgVolume     float64  `json:"avg_volume"`
	CurrentVolume float64  `json:"current_volume"`

	RSIScore         float64 `json:"rsi_score"`
	MAScore          float64 `json:"ma_score"`
	MACDScore        float64 `json:"macd_score"`
	ROCScore         float64 `json:"roc_score"`
	VolumeMultiplier float64 `json:"volume_multiplier"`

	TechnicalScore      float64   `json:"technical_score"`
	TechnicalConfidence float64   `json:"technical_confidence"`
	ComputedAt          time.Time `json:"computed_at"`
}

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Rank orders actions for output: BUY, SELL, then HOLD.
func (a Action) Rank() int {
	switch a {
	case ActionBuy:
		return 0
	case ActionSell:
		return 1
	default:
		return 2
	}
}

type Recommendation struct {
	Symbol                  string             `json:"symbol"`
	Action                  Action             `json:"action"`
	Confidence              float64            `json:"confidence"`
	Score                   float64            `json:"score"`
	SentimentScore          float64            `json:"sentiment_score"`
	TechnicalScore          *float64           `json:"technical_score,omitempty"`
	TargetAllocationPercent int                `json:"target_allocation_pct"`
	StoryCount              int                `json:"story_count"`
	Reason                  string             `json:"reason"`
	Technical               *TechnicalSnapshot `json:"technical,omitempty"`
}

// StoryTrace is the diagnostic record kept for every story with non-empty text.
type StoryTrace struct {
	ID                  string             `json:"id,omitempty"`
	Snippet             string             `json:"snippet"`
	Sentiment           string             `json:"sentiment"`
	SentimentScore      float64            `json:"sentiment_score"`
	SentimentConfidence float64            `json:"sentiment_confidence"`
	LexiconHits         int                `json:"lexicon_hits"`
	Detected            map[string]float64 `json:"detected_tickers"`
	Themes              map[string]float64 `json:"theme_tickers"`
	Combined            map[string]float64 `json:"combined_tickers"`
	AgeHours            float64            `json:"age_hours"`
}

type EngineResult struct {
	Recommendations  []Recommendation `json:"recommendations"`
	Stories          []StoryTrace     `json:"stories"`
	Timestamp        time.Time        `json:"timestamp"`
	StoriesAnalyzed  int              `json:"stories_analyzed"`
	TickersDetected  int              `json:"tickers_detected"`
	TechnicalApplied int              `json:"technical_applied"`
	Summary          string           `json:"summary"`
	Provider         string           `json:"provider"`
	Model            string           `json:"model"`
}

// AnalyzeOptions tunes a single engine run. Zero Now means wall-clock time;
// nil FilterHold and zero MaxRecommendations fall back to configuration.
type AnalyzeOptions struct {
	Now                time.Time
	FilterHold         *bool
	MaxRecommendations int
}
