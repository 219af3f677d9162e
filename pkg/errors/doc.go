// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeEnumeration,
//	    "failed to enumerate PCI devices",
//	    ctx.Err(),
//	    map[string]any{
//	        "command": "pnputil",
//	    },
//	)
//
// Only the command-line entry point turns an error into a process exit status,
// see ExitCode.
package errors
