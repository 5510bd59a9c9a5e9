package signallog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"news-signal-engine/internal/types"
)

// Entry is one recommendation line in the daily run log.
type Entry struct {
	Time       string   `json:"time"`
	RunAt      string   `json:"run_at"`
	Symbol     string   `json:"symbol"`
	Action     string   `json:"action"`
	Confidence float64  `json:"confidence"`
	Score      float64  `json:"score"`
	Sentiment  float64  `json:"sentiment_score"`
	Technical  *float64 `json:"technical_score,omitempty"`
	Allocation int      `json:"allocation_pct"`
	Stories    int      `json:"story_count"`
	Reason     string   `json:"reason"`
}

// Log appends engine runs to <dir>/<yyyy-mm-dd>.jsonl.
type Log struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

// DirFromEnv returns SIGNAL_LOG_DIR or "logs".
func DirFromEnv() string {
	if v := os.Getenv("SIGNAL_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

func New(dir string) *Log {
	return &Log{dir: dir, now: time.Now}
}

func (l *Log) dailyFilepath(t time.Time) string {
	return filepath.Join(l.dir, t.Format("2006-01-02")+".jsonl")
}

// AppendRun writes one line per recommendation in res. Runs without
// recommendations write nothing.
func (l *Log) AppendRun(res *types.EngineResult) error {
	if res == nil || len(res.Recommendations) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	p := l.dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, r := range res.Recommendations {
		e := Entry{
			Time:       now.Format(time.RFC3339),
			RunAt:      res.Timestamp.Format(time.RFC3339),
			Symbol:     r.Symbol,
			Action:     string(r.Action),
			Confidence: r.Confidence,
			Score:      r.Score,
			Sentiment:  r.SentimentScore,
			Technical:  r.TechnicalScore,
			Allocation: r.TargetAllocationPercent,
			Stories:    r.StoryCount,
			Reason:     r.Reason,
		}
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	return nil
}

// CompressOlder gzips .jsonl files not modified within retentionDays and
// removes the originals. It returns the number of files compressed.
func (l *Log) CompressOlder(retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := l.now().AddDate(0, 0, -retentionDays)
	compressed := 0
	err := filepath.WalkDir(l.dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".jsonl" {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		// an earlier run already produced the archive
		if _, err := os.Stat(p + ".gz"); err == nil {
			return os.Remove(p)
		}
		if err := gzipFile(p); err != nil {
			return err
		}
		compressed++
		return nil
	})
	return compressed, err
}

func gzipFile(p string) error {
	in, err := os.Open(p)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(p+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	gw := gzip.NewWriter(out)
	if _, err := io.Copy(gw, in); err != nil {
		gw.Close()
		out.Close()
		os.Remove(p + ".gz")
		return fmt.Errorf("compress %s: %w", p, err)
	}
	if err := gw.Close(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	in.Close()
	return os.Remove(p)
}
