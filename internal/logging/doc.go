// Package logging provides structured logging for the fwstat commands.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used by the analysis commands. The commands are Unix-style
// filters: their reports go to stdout, so logging is silent by default and
// writes to stderr only when explicitly enabled.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed filtering info (skipped lines, dropped records)
//   - Info: Normal operations
//   - Warn: Non-fatal issues
//   - Error: Fatal issues
//
// # Configuration
//
// Set the FWSTAT_LOG_LEVEL environment variable to enable output:
//
//	FWSTAT_LOG_LEVEL=debug fwstat rom sections.txt
//
// Commands initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("Skipped unrecognized line",
//	    zap.Int("line", 12),
//	    zap.String("content", line),
//	)
package logging
