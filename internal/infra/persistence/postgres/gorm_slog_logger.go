package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wallet/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are logged at warn level.
const slowQueryThreshold = 200 * time.Millisecond

// slogQueryLogger routes GORM's internal logging through the process slog
// logger. Record-not-found is not logged; repositories translate it into
// domain sentinels.
type slogQueryLogger struct {
	base  *slog.Logger
	level logger.LogLevel
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &slogQueryLogger{base: base, level: level}
}

func (l *slogQueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &slogQueryLogger{base: l.base, level: level}
}

func (l *slogQueryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, "GORM info", msg, args...)
}

func (l *slogQueryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, "GORM warn", msg, args...)
}

func (l *slogQueryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, "GORM error", msg, args...)
}

func (l *slogQueryLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, title, msg string, args ...any) {
	if l.base == nil || l.level < min {
		return
	}

	l.base.LogAttrs(ctx, level, title, slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *slogQueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	queryAttrs := func() []slog.Attr {
		sql, rows := fc()

		return []slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}
	}

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(), slog.String("error", err.Error()))
		l.base.LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(), slog.Duration("slowThreshold", slowQueryThreshold))
		l.base.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		l.base.LogAttrs(ctx, slog.LevelInfo, "GORM query", queryAttrs()...)
	}
}
