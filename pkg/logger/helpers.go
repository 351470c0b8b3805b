package logger

import (
	"context"

	"github.com/rs/zerolog"
)

// LogRequest logs HTTP request information
func LogRequest(l Logger, method, url string, statusCode int, durationMS float64) {
	fields := map[string]interface{}{
		"method":      method,
		"url":         url,
		"status_code": statusCode,
		"duration_ms": durationMS,
	}

	switch {
	case statusCode >= 500:
		l.ErrorWithFields("HTTP request server error", fields)
	case statusCode >= 400:
		l.WarnWithFields("HTTP request client error", fields)
	default:
		l.DebugWithFields("HTTP request completed", fields)
	}
}

// LogProbe logs the outcome of a single presence probe
func LogProbe(l Logger, site, url string, found bool, statusCode int, err error) {
	fields := map[string]interface{}{
		"site":  site,
		"url":   url,
		"found": found,
	}
	if err != nil {
		l.WithError(err).WarnWithFields("Presence probe failed", fields)
		return
	}
	fields["status_code"] = statusCode
	l.DebugWithFields("Presence probe completed", fields)
}

// LogImageDownload logs profile image download outcomes
func LogImageDownload(l Logger, username, path string, size int, err error) {
	logger := l.WithField("username", username)

	if err != nil {
		logger.WithError(err).Error("Profile image download failed")
		return
	}

	logger.InfoWithFields("Profile image saved", map[string]interface{}{
		"path": path,
		"size": size,
	})
}

// LogComponentStart logs when a pipeline step starts
func LogComponentStart(l Logger, component string, config map[string]interface{}) {
	logger := l.WithField("component", component)

	if len(config) > 0 {
		logger = logger.WithFields(config)
	}

	logger.Debug("Component started")
}

// NewNopLogger creates a no-operation logger for testing
func NewNopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) WithContext(ctx context.Context) Logger                    { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) GetZerolog() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}
