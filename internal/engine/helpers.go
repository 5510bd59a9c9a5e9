package engine

import (
	"math"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"news-signal-engine/internal/types"
)

// publishedLayouts are tried in order. Layouts without an offset are read in
// the reference time's location.
var publishedLayouts = []struct {
	layout string
	naive  bool
}{
	{"Mon, 2 Jan 2006 15:04:05 -0700", false},
	{"Mon, 2 Jan 2006 15:04:05 MST", false},
	{time.RFC3339, false},
	{"2006-01-02T15:04:05-0700", false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
}

// storyText prefers the full text and otherwise joins title and summary.
func storyText(s types.Story) string {
	if text := plainText(s.Text); text != "" {
		return text
	}
	joined := plainText(s.Title) + ". " + plainText(s.Summary)
	return strings.Trim(joined, ". ")
}

// plainText reduces feed markup such as "<p>Shares <b>rose</b></p>" to its
// text. Inputs without markup are returned trimmed.
func plainText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// parseAgeHours returns hours between published and now, never negative.
// Empty or unparseable input yields fallback.
func parseAgeHours(published string, now time.Time, fallback float64) float64 {
	published = strings.TrimSpace(published)
	if published == "" {
		return fallback
	}
	for _, l := range publishedLayouts {
		var (
			t   time.Time
			err error
		)
		if l.naive {
			t, err = time.ParseInLocation(l.layout, published, now.Location())
		} else {
			t, err = time.Parse(l.layout, published)
		}
		if err != nil {
			continue
		}
		return math.Max(0, now.Sub(t).Hours())
	}
	return fallback
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
