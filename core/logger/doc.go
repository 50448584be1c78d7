// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # Run Correlation
//
// Every sync run is tagged with a generated run id. The WithRunID helper
// attaches it to the log entry, ensuring that all logs belonging to one run
// can be correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
//
//	l := logger.WithRunID(log, runID)
//	l.Error("Sync failed", zap.Error(err))
package logger
