package main

import (
	"context"
	"os"
	"strconv"

	"news-signal-engine/internal/engine"
	"news-signal-engine/internal/engine/engineobs"
	"news-signal-engine/internal/interfaces"
	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/marketdata/yahoo"
	"news-signal-engine/internal/signallog"
	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

// buildEngine wires the Yahoo adapters into an observable engine.
func buildEngine(cfg *store.Config) (interfaces.Engine, error) {
	yc := yahoo.New(cfg.Yahoo)
	eng, err := engine.New(cfg, engine.Deps{
		Quotes:  yc,
		History: yc,
		Search:  yc,
	})
	if err != nil {
		return nil, err
	}
	return engineobs.Wrap(eng), nil
}

// appendRunLog writes the run to the daily log and compresses old files when
// SIGNAL_LOG_RETENTION_DAYS is set. Failures are logged, never fatal.
func appendRunLog(ctx context.Context, res *types.EngineResult) {
	l := signallog.New(signallog.DirFromEnv())
	if err := l.AppendRun(res); err != nil {
		logger.Warn(ctx, "Failed to append run log", "error", err)
	}

	if v := os.Getenv("SIGNAL_LOG_RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn(ctx, "Invalid SIGNAL_LOG_RETENTION_DAYS", "value", v)
			return
		}
		if _, err := l.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old logs", "error", err)
		}
	}
}
