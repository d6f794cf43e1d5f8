// Package logger provides context-aware structured logging for the service.
// A request-scoped *logrus.Entry travels inside the context.Context so every
// log line carries the request id and any fields attached upstream.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const (
	loggerKey contextKey = "logger"

	// RequestIDField is the field name used for request correlation.
	RequestIDField = "request_id"
)

var std = logrus.New()

// Config controls the process-wide logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // optional log file, rotated; empty means stdout only
}

// Init configures the process-wide logger. Safe to call once at startup.
func Init(cfg Config) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	std.SetLevel(level)

	if cfg.Format == "json" {
		std.SetFormatter(&logrus.JSONFormatter{})
	} else {
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		std.SetOutput(io.MultiWriter(os.Stdout, rotated))
	}
}

// WithContext returns a context carrying the given entry.
func WithContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, entry)
}

// WithRequestID returns a context whose logger carries the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithContext(ctx, GetLogger(ctx).WithField(RequestIDField, requestID))
}

// WithField returns a context whose logger carries an extra field.
func WithField(ctx context.Context, key string, value interface{}) context.Context {
	return WithContext(ctx, GetLogger(ctx).WithField(key, value))
}

// GetLogger returns the entry stored in the context, or a plain entry on the
// process logger when none is present.
func GetLogger(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(std)
}

// GetRequestID returns the request id attached to the context logger, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := GetLogger(ctx).Data[RequestIDField].(string); ok {
		return id
	}
	return ""
}

func Debug(ctx context.Context, args ...interface{}) { GetLogger(ctx).Debug(args...) }

func Debugf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Debugf(format, args...)
}

func Info(ctx context.Context, args ...interface{}) { GetLogger(ctx).Info(args...) }

func Infof(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Infof(format, args...)
}

func Warn(ctx context.Context, args ...interface{}) { GetLogger(ctx).Warn(args...) }

func Warnf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, args ...interface{}) { GetLogger(ctx).Error(args...) }

func Errorf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Fatalf(format, args...)
}
