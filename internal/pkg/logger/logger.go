package logger

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var base atomic.Pointer[zap.Logger]

func init() {
	base.Store(zap.NewNop())
}

// Init builds the process logger. level is one of debug, info, warn, error.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("zap.Build: %w", err)
	}

	SetLogger(l)
	return nil
}

func SetLogger(l *zap.Logger) {
	base.Store(l)
}

// Logger returns the process logger without context fields.
func Logger() *zap.Logger {
	return base.Load()
}

func Sync() {
	_ = base.Load().Sync()
}

// With returns a context whose log lines carry the given fields.
func With(ctx context.Context, fields ...zap.Field) context.Context {
	prev, _ := ctx.Value(ctxKey{}).([]zap.Field)
	merged := make([]zap.Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

// Fields returns the fields With attached to ctx.
func Fields(ctx context.Context) []zap.Field {
	fields, _ := ctx.Value(ctxKey{}).([]zap.Field)
	return fields
}

func sugar(ctx context.Context) *zap.SugaredLogger {
	l := base.Load()
	if ctx != nil {
		if fields, ok := ctx.Value(ctxKey{}).([]zap.Field); ok {
			l = l.With(fields...)
		}
	}
	return l.Sugar()
}

func Debugf(ctx context.Context, template string, args ...interface{}) {
	sugar(ctx).Debugf(template, args...)
}

func Infof(ctx context.Context, template string, args ...interface{}) {
	sugar(ctx).Infof(template, args...)
}

func Warnf(ctx context.Context, template string, args ...interface{}) {
	sugar(ctx).Warnf(template, args...)
}

func Errorf(ctx context.Context, template string, args ...interface{}) {
	sugar(ctx).Errorf(template, args...)
}

func Info(ctx context.Context, msg string) {
	sugar(ctx).Info(msg)
}

func Error(ctx context.Context, msg string) {
	sugar(ctx).Error(msg)
}

func Fatal(ctx context.Context, args ...interface{}) {
	sugar(ctx).Fatal(args...)
}
