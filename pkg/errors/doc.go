// Package errors provides structured error types for better observability
// and programmatic error handling across the boot sequencer.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeSensorUnavailable,
//	    "failed to read CPU temperature",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "sensor": "cpu",
//	        "attempt": attemptNumber,
//	    },
//	)
package errors
