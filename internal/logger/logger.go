// Package logger builds the zap loggers used by host programs and adapts them to the clock's
// Logger interface.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w, or stderr when w is nil. debug lowers the level
// from info to debug.
func New(w zapcore.WriteSyncer, debug bool) *zap.Logger {
	if w == nil {
		w = zapcore.Lock(os.Stderr)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	return zap.New(
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, level),
		zap.AddCaller(),
	)
}

// Sugar satisfies the clock's Logger interface on top of a zap logger.
type Sugar struct {
	s *zap.SugaredLogger
}

func Adapt(z *zap.Logger) Sugar {
	return Sugar{s: z.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l Sugar) Debug(msg string) { l.s.Debug(msg) }

func (l Sugar) Debugf(format string, v ...any) { l.s.Debugf(format, v...) }

func (l Sugar) Info(msg string) { l.s.Info(msg) }

func (l Sugar) Infof(format string, v ...any) { l.s.Infof(format, v...) }

// Sync flushes the underlying logger.
func (l Sugar) Sync() error { return l.s.Sync() }
