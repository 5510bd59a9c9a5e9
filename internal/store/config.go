package store

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Universe  UniverseConfig  `yaml:"universe"`
	Filter    FilterConfig    `yaml:"filter"`
	Technical TechnicalConfig `yaml:"technical"`
	Signal    SignalConfig    `yaml:"signal"`
	Cache     CacheConfig     `yaml:"cache"`
	Engine    EngineConfig    `yaml:"engine"`
	Yahoo     YahooConfig     `yaml:"yahoo"`
	Feeds     FeedConfig      `yaml:"feeds"`
}

type UniverseConfig struct {
	Tradeable []string `yaml:"tradeable"`
	// tickers that are also common words; only matched as $TICKER
	Ambiguous []string `yaml:"ambiguous"`
	// let resolver hits outside the tradeable list through
	AllowDynamicOutside bool `yaml:"allow_dynamic_outside"`
}

type FilterConfig struct {
	MinPrice          float64  `yaml:"min_price"`
	AcceptedExchanges []string `yaml:"accepted_exchanges"`
}

type TechnicalConfig struct {
	MinBars  int    `yaml:"min_bars"`
	Period   string `yaml:"period"`
	Interval string `yaml:"interval"`
	Weights  struct {
		RSI  float64 `yaml:"rsi"`
		MA   float64 `yaml:"ma"`
		MACD float64 `yaml:"macd"`
		ROC  float64 `yaml:"roc"`
	} `yaml:"weights"`
}

type SignalConfig struct {
	DecayHalfLifeHours float64 `yaml:"decay_half_life_hours"`
	BuyThreshold       float64 `yaml:"buy_threshold"`
	SellThreshold      float64 `yaml:"sell_threshold"`
	MinConfidence      float64 `yaml:"min_confidence"`
	SentimentWeight    float64 `yaml:"sentiment_weight"`
	TechnicalWeight    float64 `yaml:"technical_weight"`
	MaxReasons         int     `yaml:"max_reasons"`
	MinWeight          float64 `yaml:"min_weight"`
}

type CacheConfig struct {
	ResolverTTL  time.Duration `yaml:"resolver_ttl"`
	PriceTTL     time.Duration `yaml:"price_ttl"`
	TechnicalTTL time.Duration `yaml:"technical_ttl"`
}

type EngineConfig struct {
	Workers            int           `yaml:"workers"`
	FetchTimeout       time.Duration `yaml:"fetch_timeout"`
	FilterHold         bool          `yaml:"filter_hold"`
	MaxRecommendations int           `yaml:"max_recommendations"`
	DefaultAgeHours    float64       `yaml:"default_age_hours"`
}

type YahooConfig struct {
	SearchBaseURL string        `yaml:"search_base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	// requests per second allowed against the search endpoint
	RateLimit  float64 `yaml:"rate_limit"`
	MaxRetries int     `yaml:"max_retries"`
}

type FeedSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type FeedConfig struct {
	Sources      []FeedSource  `yaml:"sources"`
	PerFeedLimit int           `yaml:"per_feed_limit"`
	SummaryChars int           `yaml:"summary_chars"`
	Timeout      time.Duration `yaml:"timeout"`
}

var defaultTradeable = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "NFLX", "AMD", "INTC",
	"PYPL", "ADBE", "CSCO", "CMCSA", "PEP", "COST", "TMUS", "AVGO", "TXN", "QCOM",
	"JPM", "V", "JNJ", "WMT", "PG", "MA", "UNH", "HD", "DIS", "BAC",
	"XOM", "CVX", "KO", "PFE", "MRK", "ABT", "VZ", "T", "NKE", "MCD",
}

var defaultExchanges = []string{"NMS", "NGM", "NCM", "NYQ", "NYSE", "NASDAQ", "NasdaqGS", "PCX"}

// Default returns the built-in configuration. ParseConfig decodes on top of
// it, so a key written as 0 or false in YAML overrides the default.
func Default() *Config {
	c := &Config{
		Universe: UniverseConfig{
			Tradeable: append([]string(nil), defaultTradeable...),
			Ambiguous: []string{"T", "V", "HD"},
		},
		Filter: FilterConfig{
			MinPrice:          8,
			AcceptedExchanges: append([]string(nil), defaultExchanges...),
		},
		Technical: TechnicalConfig{
			MinBars:  20,
			Period:   "3mo",
			Interval: "1d",
		},
		Signal: SignalConfig{
			DecayHalfLifeHours: 6,
			BuyThreshold:       0.15,
			SellThreshold:      -0.15,
			MinConfidence:      0.3,
			SentimentWeight:    0.55,
			TechnicalWeight:    0.45,
			MaxReasons:         3,
			MinWeight:          0.01,
		},
		Cache: CacheConfig{
			ResolverTTL:  30 * time.Minute,
			PriceTTL:     2 * time.Minute,
			TechnicalTTL: 10 * time.Minute,
		},
		Engine: EngineConfig{
			Workers:            8,
			FetchTimeout:       10 * time.Second,
			FilterHold:         true,
			MaxRecommendations: 8,
			DefaultAgeHours:    1.0,
		},
		Yahoo: YahooConfig{
			SearchBaseURL: "https://query2.finance.yahoo.com",
			Timeout:       10 * time.Second,
			RateLimit:     5,
			MaxRetries:    2,
		},
		Feeds: FeedConfig{
			Sources: []FeedSource{
				{Name: "Top News", URL: "https://finance.yahoo.com/news/rssindex"},
				{Name: "Market News", URL: "https://finance.yahoo.com/rss/topstories"},
				{Name: "Stock Market", URL: "https://finance.yahoo.com/rss/stock-market-news"},
			},
			PerFeedLimit: 8,
			SummaryChars: 500,
			Timeout:      15 * time.Second,
		},
	}
	w := &c.Technical.Weights
	w.RSI, w.MA, w.MACD, w.ROC = 0.25, 0.30, 0.30, 0.15
	return c
}

func (c *Config) Validate() error {
	if len(c.Universe.Tradeable) == 0 {
		return errors.New("universe.tradeable cannot be empty")
	}
	if c.Filter.MinPrice < 0 {
		return fmt.Errorf("filter.min_price must be >= 0, got %.2f", c.Filter.MinPrice)
	}
	if c.Technical.MinBars < 2 {
		return fmt.Errorf("technical.min_bars must be at least 2, got %d", c.Technical.MinBars)
	}
	if c.Signal.BuyThreshold <= c.Signal.SellThreshold {
		return fmt.Errorf("signal.buy_threshold (%.3f) must be greater than signal.sell_threshold (%.3f)",
			c.Signal.BuyThreshold, c.Signal.SellThreshold)
	}
	if c.Signal.MinConfidence < 0 || c.Signal.MinConfidence > 1 {
		return fmt.Errorf("signal.min_confidence must be between 0-1, got %.3f", c.Signal.MinConfidence)
	}
	if math.Abs(c.Signal.SentimentWeight+c.Signal.TechnicalWeight-1) > 1e-6 {
		return fmt.Errorf("signal.sentiment_weight + signal.technical_weight must equal 1, got %.3f",
			c.Signal.SentimentWeight+c.Signal.TechnicalWeight)
	}
	if c.Signal.DecayHalfLifeHours < 0 {
		return fmt.Errorf("signal.decay_half_life_hours must be >= 0, got %.2f", c.Signal.DecayHalfLifeHours)
	}
	if c.Engine.Workers < 1 {
		return fmt.Errorf("engine.workers must be positive, got %d", c.Engine.Workers)
	}
	if c.Engine.MaxRecommendations < 1 {
		return fmt.Errorf("engine.max_recommendations must be positive, got %d", c.Engine.MaxRecommendations)
	}
	return nil
}

// LoadConfig reads a YAML file over the defaults and validates the result.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// TradeableSet returns the universe as a lookup set.
func (u UniverseConfig) TradeableSet() map[string]bool {
	set := make(map[string]bool, len(u.Tradeable))
	for _, t := range u.Tradeable {
		set[t] = true
	}
	return set
}

func (f FilterConfig) ExchangeSet() map[string]bool {
	set := make(map[string]bool, len(f.AcceptedExchanges))
	for _, e := range f.AcceptedExchanges {
		set[e] = true
	}
	return set
}
