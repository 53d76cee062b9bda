package logger

import (
	"context"
	"sync"

	appcontext "github.com/piresc/smsmock/internal/pkg/context"
	"github.com/sirupsen/logrus"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *AppLogger
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, creating a default
// info-level logger when none has been set
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = NewAppLogger(Config{Level: "info"})
	}
	return globalLogger
}

func entry(fields []Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return GetGlobalLogger().WithFields(data)
}

func entryCtx(ctx context.Context, fields []Field) *logrus.Entry {
	e := entry(fields)
	if requestID := appcontext.GetRequestID(ctx); requestID != "" {
		e = e.WithField("request_id", requestID)
	}
	return e
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	entry(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	entry(fields).Warn(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	entry(fields).Debug(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	entry(fields).Error(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	entry(fields).Fatal(msg)
}

// InfoCtx logs an info message tagged with the request id carried by ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	entryCtx(ctx, fields).Info(msg)
}

// WarnCtx logs a warning message tagged with the request id carried by ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	entryCtx(ctx, fields).Warn(msg)
}

// ErrorCtx logs an error message tagged with the request id carried by ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	entryCtx(ctx, fields).Error(msg)
}
