// Package logging provides structured logging utilities for quicktest.
//
// # Overview
//
// This package wraps the standard library slog package with quicktest defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("quicktest", "v1.0.0", "")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("device detected", "variant", "STX")
//	    slog.Debug("enumeration output", "bytes", len(raw))
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("quicktest", "v2.0.0", "debug")
//	logger.Info("session created", "provider", "VitisAIExecutionProvider")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("quicktest", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug quicktest run
//	LOG_LEVEL=error quicktest detect
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "session created",
//	    "module": "quicktest",
//	    "version": "v1.0.0",
//	    "provider": "VitisAIExecutionProvider"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "device.(*Identifier).Identify",
//	        "file": "identifier.go",
//	        "line": 45
//	    },
//	    "msg": "enumeration complete",
//	    "module": "quicktest",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// Logs go to stderr so that stdout carries only the user-facing quicktest
// output (detected profile, configured values, pass/fail marker).
package logging
