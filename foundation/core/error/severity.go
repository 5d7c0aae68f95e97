// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels let callers decide whether a failure is worth
//              surfacing loudly (a broken config file) or can be absorbed
//              (a skipped locale file).
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input that is easy to correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a sensible fallback
	SeverityMedium

	// SeverityHigh indicates a failure that leaves the caller without a result
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidTimezone, CodeInvalidConfig, CodeInternal:
		return SeverityHigh
	case CodeConfigNotFound, CodeLocaleNotFound, CodeInvalidLocale, CodeConfigWatch:
		return SeverityMedium
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
