package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// QueryLogger implements GORM's logger interface on zap. Trace output is
// enriched with the request id and user id carried by the context.
type QueryLogger struct {
	log           *zap.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	skipNotFound  bool
}

// QueryLoggerOption configures a QueryLogger
type QueryLoggerOption func(*QueryLogger)

// WithSlowThreshold sets the slow query threshold
func WithSlowThreshold(threshold time.Duration) QueryLoggerOption {
	return func(l *QueryLogger) {
		l.slowThreshold = threshold
	}
}

// WithSkipNotFound controls whether record-not-found results are traced
// as errors. Lookups that translate gorm.ErrRecordNotFound into domain
// errors are expected misses, not failures.
func WithSkipNotFound(skip bool) QueryLoggerOption {
	return func(l *QueryLogger) {
		l.skipNotFound = skip
	}
}

// NewQueryLogger creates a GORM logger backed by zap
func NewQueryLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, opts ...QueryLoggerOption) *QueryLogger {
	ql := &QueryLogger{
		log:           zapLogger.Named("db"),
		level:         level,
		slowThreshold: 200 * time.Millisecond,
		skipNotFound:  true,
	}
	for _, opt := range opts {
		opt(ql)
	}
	return ql
}

// LogMode implements gormlogger.Interface
func (l *QueryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *QueryLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.log.Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *QueryLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *QueryLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.log.Sugar().Errorf(msg, data...)
	}
}

// Trace logs one executed statement with its timing and row count
func (l *QueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	took := time.Since(begin)
	sql, rows := fc()

	fields := []zap.Field{
		zap.Duration("took", took),
		zap.Int64("rows", rows),
		zap.String("query", sql),
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if userID := GetUserID(ctx); userID != 0 {
		fields = append(fields, zap.Int64("user_id", userID))
	}

	switch {
	case err != nil && l.level >= gormlogger.Error:
		if l.skipNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		l.log.Error("Query failed", append(fields, zap.Error(err))...)

	case l.slowThreshold != 0 && took > l.slowThreshold && l.level >= gormlogger.Warn:
		l.log.Warn("Slow query", append(fields, zap.Duration("threshold", l.slowThreshold))...)

	case l.level >= gormlogger.Info:
		l.log.Debug("Query", fields...)
	}
}

// QueryLogLevel maps the configured log level string to a GORM trace level
func QueryLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
