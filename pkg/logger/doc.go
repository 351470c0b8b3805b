// Package logger provides structured logging for igosint.
//
// It wraps zerolog behind a small interface so pipeline steps can be handed a
// logger explicitly and tests can swap in NewTestLogger or NewNopLogger.
//
//	cfg := &config.LoggingConfig{Level: "debug"}
//	if err := logger.Initialize(cfg); err != nil {
//	    return err
//	}
//	logger.WithField("username", "john_doe").Info("Fetching profile")
//
// Console output uses compact coloured level labels. When LoggingConfig.File
// is set, JSON lines are appended to that file as well. Every logger created
// by New carries a run_id field so the lines of one run can be grouped.
package logger
