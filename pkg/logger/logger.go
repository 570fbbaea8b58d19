package logger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  = zap.NewNop()
	once sync.Once
	atom = zap.NewAtomicLevel()

	buildLogger = func(cfg zap.Config) (*zap.Logger, error) {
		return cfg.Build(zap.AddCallerSkip(1))
	}
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
)

// Init initializes the global logger. "development" gets a colored console
// encoder at debug level, anything else the JSON production config.
func Init(env string) {
	once.Do(func() {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		if env == "development" {
			config = zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		built, err := buildLogger(config)
		if err != nil {
			panic(err)
		}
		log = built
		atom = config.Level
	})
}

// SetLevel changes the minimum enabled level at runtime.
func SetLevel(level zapcore.Level) {
	atom.SetLevel(level)
}

// GetLogger returns the underlying zap logger
func GetLogger() *zap.Logger {
	return log
}

// SetLogger replaces the global logger and returns a func restoring the previous one
func SetLogger(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}

// Sync flushes buffered entries
func Sync() {
	_ = log.Sync()
}

// WithContext adds request scoped fields (request_id, user_id) to the logger
func WithContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}

	var fields []zap.Field
	// gin stores the id under a plain string key, typed key is used elsewhere
	if reqID, ok := ctx.Value(string(RequestIDKey)).(string); ok {
		fields = append(fields, zap.String("request_id", reqID))
	} else if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		fields = append(fields, zap.String("request_id", reqID))
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}

	if len(fields) > 0 {
		return log.With(fields...)
	}
	return log
}

// Info logs a message at InfoLevel
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Error(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Debug(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Warn(msg, fields...)
}

// LogRequest logs an HTTP request details
func LogRequest(ctx context.Context, method, path string, status int, latency time.Duration, clientIP string) {
	entry := WithContext(ctx)
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.String("client_ip", clientIP),
	}
	switch {
	case status >= 500:
		entry.Error("HTTP Request", fields...)
	case status >= 400:
		entry.Warn("HTTP Request", fields...)
	default:
		entry.Info("HTTP Request", fields...)
	}
}
