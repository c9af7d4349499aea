package report

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Ensure Zap implements Reporter
var _ Reporter = (*Zap)(nil)

// Zap is the production Reporter backend, writing structured leveled
// output through a zap sugared logger.
type Zap struct {
	s *zap.SugaredLogger
}

// NewZap builds a Reporter at the given level ("debug", "info", "warn",
// "error"). Output goes to stderr in zap's production encoding.
func NewZap(level string) (*Zap, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Zap{s: logger.Sugar()}, nil
}

func (z *Zap) Info(msg string, kv ...any)  { z.s.Infow(msg, kv...) }
func (z *Zap) Warn(msg string, kv ...any)  { z.s.Warnw(msg, kv...) }
func (z *Zap) Error(msg string, kv ...any) { z.s.Errorw(msg, kv...) }

// Sync flushes buffered output. Callers should defer this at shutdown.
func (z *Zap) Sync() error { return z.s.Sync() }
