// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes reported by TimeKit packages so callers
//              can branch on the failure class instead of matching messages.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Zone, configuration and locale codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Time zones
	CodeInvalidTimezone Code = "INVALID_TIMEZONE"

	// Configuration
	CodeConfigNotFound Code = "CONFIG_NOT_FOUND"
	CodeInvalidConfig  Code = "INVALID_CONFIG"
	CodeConfigWatch    Code = "CONFIG_WATCH"

	// Locales
	CodeLocaleNotFound Code = "LOCALE_NOT_FOUND"
	CodeInvalidLocale  Code = "INVALID_LOCALE"

	// Validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeInvalidTimezone,
		CodeConfigNotFound, CodeInvalidConfig, CodeConfigWatch,
		CodeLocaleNotFound, CodeInvalidLocale,
		CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidTimezone:
		return "timezone"
	case CodeConfigNotFound, CodeInvalidConfig, CodeConfigWatch:
		return "configuration"
	case CodeLocaleNotFound, CodeInvalidLocale:
		return "locale"
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
