package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T, detailed bool) *bytes.Buffer {
	t.Helper()
	prevLogger, prevLevel, prevDetailed := globalLogger, logLevel, detailedLogging
	t.Cleanup(func() {
		globalLogger, logLevel, detailedLogging = prevLogger, prevLevel, prevDetailed
		slog.SetDefault(prevLogger)
	})

	var buf bytes.Buffer
	if err := InitWithConfig(LogConfig{Level: "INFO", Format: "json", DetailedLogging: detailed, Output: &buf}); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestOperationTimerEnd(t *testing.T) {
	buf := captureLogs(t, true)

	op := StartOperation(context.Background(), "pricefilter.quote", "symbol", "AAPL")
	if op.Context() == nil {
		t.Fatal("operation context is nil")
	}
	op.End("price", 189.5)

	recs := records(t, buf)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2: %s", len(recs), buf.String())
	}
	if recs[0]["msg"] != "Operation started" || recs[0]["operation"] != "pricefilter.quote" {
		t.Errorf("start record = %v", recs[0])
	}
	done := recs[1]
	if done["msg"] != "Operation completed" || done["symbol"] != "AAPL" || done["price"] != 189.5 {
		t.Errorf("end record = %v", done)
	}
	if _, ok := done["duration_ms"]; !ok {
		t.Error("end record missing duration_ms")
	}
}

func TestOperationTimerEndWithError(t *testing.T) {
	buf := captureLogs(t, false)

	op := StartOperation(context.Background(), "technical.history", "symbol", "MSFT")
	op.EndWithError(errors.New("upstream 503"))

	recs := records(t, buf)
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1: %s", len(recs), buf.String())
	}
	rec := recs[0]
	if rec["level"] != "ERROR" || rec["msg"] != "Operation failed" {
		t.Errorf("record = %v", rec)
	}
	if rec["symbol"] != "MSFT" || rec["error"] != "upstream 503" {
		t.Errorf("record fields = %v", rec)
	}
}

func TestDebugRequiresDetailedLogging(t *testing.T) {
	buf := captureLogs(t, false)
	if IsDebugEnabled() {
		t.Fatal("debug should be off")
	}
	Debug(context.Background(), "hidden")
	DebugSkip(context.Background(), 1, "hidden too")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	buf = captureLogs(t, true)
	if !IsDebugEnabled() {
		t.Fatal("debug should be on")
	}
	DebugSkip(context.Background(), 0, "shown", "k", "v")
	recs := records(t, buf)
	if len(recs) != 1 || recs[0]["msg"] != "shown" || recs[0]["k"] != "v" {
		t.Fatalf("records = %v", recs)
	}
	if _, ok := recs[0]["source"]; !ok {
		t.Error("detailed logging should add source")
	}
}
