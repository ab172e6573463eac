package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "sellerhub/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowStatementThreshold = 200 * time.Millisecond

// statementLogger writes gorm output through the request-scoped slog logger.
// Bound values are dropped from logged statements: they carry OTP codes,
// password hashes and refresh token hashes.
type statementLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var (
	_ logger.Interface = (*statementLogger)(nil)
	_ gorm.ParamsFilter = (*statementLogger)(nil)
)

func newStatementLogger(base *slog.Logger, debug bool) *statementLogger {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &statementLogger{
		logger:        base,
		level:         level,
		slowThreshold: defaultSlowStatementThreshold,
	}
}

func (l *statementLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter keeps the placeholders and discards the bound values.
func (l *statementLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *statementLogger) Info(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *statementLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *statementLogger) Error(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *statementLogger) print(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "Database notice", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *statementLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.statement(ctx, slog.LevelError, "SQL statement failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.statement(ctx, slog.LevelWarn, "Slow SQL statement", sqlAndRowsFn, elapsed, slog.Duration("slow_threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.statement(ctx, slog.LevelDebug, "SQL statement", sqlAndRowsFn, elapsed)
	}
}

func (l *statementLogger) statement(
	ctx context.Context,
	level slog.Level,
	msg string,
	sqlAndRowsFn func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *statementLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
