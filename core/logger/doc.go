// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Log lines go to stderr so that command output on
// stdout stays machine-readable.
//
// # Run Correlation
//
// Each CLI invocation gets a run id. WithRunID attaches it to the logger so that all
// lines of one run, including those from parallel payload decodes, can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Decoding payloads", zap.Int("count", 3))
package logger
