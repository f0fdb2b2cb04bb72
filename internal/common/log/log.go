package log

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is re-exported so callers never import zap directly.
type Field = zap.Field

var logger = zap.NewNop()

type options struct {
	level  zapcore.Level
	env    string
	caller bool
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithEnv(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) {
		o.caller = enabled
	}
}

// Init builds the process-wide logger. Local env gets a console encoder,
// everything else structured JSON.
func Init(name string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, caller: true}
	for _, opt := range opts {
		opt(o)
	}

	var cfg zap.Config
	if o.env == "local" || o.env == "" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(o.level)
	cfg.DisableCaller = !o.caller

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}

	logger = l.Named(name)
}

// InitForTest swaps in a no-op logger so test output stays clean.
func InitForTest() {
	logger = zap.NewNop()
}

// Logger exposes the underlying zap logger for integrations (nrzap).
func Logger() *zap.Logger {
	return logger
}

func Sync() {
	_ = logger.Sync()
}

func Debug(_ context.Context, msg string, fields ...Field) { logger.Debug(msg, fields...) }
func Info(_ context.Context, msg string, fields ...Field)  { logger.Info(msg, fields...) }
func Warn(_ context.Context, msg string, fields ...Field)  { logger.Warn(msg, fields...) }
func Error(_ context.Context, msg string, fields ...Field) { logger.Error(msg, fields...) }
func Panic(_ context.Context, msg string, fields ...Field) { logger.Panic(msg, fields...) }

func Debugf(_ context.Context, format string, args ...interface{}) {
	logger.Sugar().Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	logger.Sugar().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	logger.Sugar().Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	logger.Sugar().Errorf(format, args...)
}

func Fatalf(_ context.Context, format string, args ...interface{}) {
	logger.Sugar().Fatalf(format, args...)
}

func Err(err error) Field                          { return zap.Error(err) }
func String(key, value string) Field               { return zap.String(key, value) }
func Int(key string, value int) Field              { return zap.Int(key, value) }
func Int64(key string, value int64) Field          { return zap.Int64(key, value) }
func Uint64(key string, value uint64) Field        { return zap.Uint64(key, value) }
func Bool(key string, value bool) Field            { return zap.Bool(key, value) }
func Duration(key string, d time.Duration) Field   { return zap.Duration(key, d) }
func Time(key string, t time.Time) Field           { return zap.Time(key, t) }
func Any(key string, value interface{}) Field      { return zap.Any(key, value) }
