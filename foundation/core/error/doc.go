// Package error provides the coded error type used across TimeKit.
//
// Package: error
// Title: TimeKit Error Handling
// Description: Structured errors with a code, the failing operation, free-form
//              details and a captured stack trace. The temporal engine itself
//              reports invalid values through sentinels; this package covers
//              the hard failures around it: unknown time zones, unreadable
//              configuration and locale files.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reworked code set for zone, config and locale failures
//
// Usage:
//
//	import tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
//
//	err := tkerror.New("unknown time zone").
//		WithCode(tkerror.CodeInvalidTimezone).
//		WithOperation("timex.Tz").
//		WithDetail("zone", "Mars/Olympus")
//
//	if tkerror.HasCode(err, tkerror.CodeInvalidTimezone) {
//		// fall back to UTC
//	}
package error
