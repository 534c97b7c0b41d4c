package physics

import "go.uber.org/zap"

// NewLogger builds the package's structured logger. level is a zap level
// name such as "debug", "info", "warn" or "error"; a name zap does not
// recognize falls back to "info".
//
// Grounded on the sibling networked-simulation lineage's
// internal/core/observability/log package, which wraps zap.Logger behind
// a small level-string constructor; simplified here to the single
// SugaredLogger the engine actually calls, in place of that package's
// full Field-abstraction layer, which this single-package library has no
// use for.
func NewLogger(level string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = parseLevel(level)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		// Config.Build only fails on a broken encoder/sink registration,
		// never a runtime condition; fall back to a working default.
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

func parseLevel(level string) zap.AtomicLevel {
	l := zap.NewAtomicLevel()
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l.SetLevel(zap.InfoLevel)
	}
	return l
}

// nopLogger is used by constructors that accept an optional logger; a nil
// argument falls back to this rather than every call site nil-checking.
func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
