// File: validation.go
// Title: Settings Validation
// Description: Range and consistency checks applied whenever settings are
//              loaded, reloaded or changed through a Store setter.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package config

import (
	"fmt"
	"strings"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
	"github.com/ersinkoc/TimeKit/foundation/core/i18n"
	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

// ValidationResult collects every problem found in a settings value
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Check validates settings and reports all problems
func Check(s Settings) *ValidationResult {
	result := &ValidationResult{Valid: true, Errors: make([]string, 0)}
	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if err := i18n.ValidateLocale(s.Locale); err != nil {
		fail("locale %q is not a valid language tag", s.Locale)
	}
	if s.WeekStart < 0 || s.WeekStart > 6 {
		fail("week_start must be between 0 and 6, got %d", s.WeekStart)
	}
	if s.FirstWeekContainsDate < 1 || s.FirstWeekContainsDate > 7 {
		fail("first_week_contains_date must be between 1 and 7, got %d", s.FirstWeekContainsDate)
	}

	for _, kind := range []FormatKind{FormatDate, FormatTime, FormatDateTime} {
		if stringx.IsBlank(s.Formats.Get(kind)) {
			fail("formats.%s cannot be empty", kind)
		}
	}

	thresholds := []struct {
		name  string
		value int
	}{
		{"second", s.Thresholds.Second},
		{"minute", s.Thresholds.Minute},
		{"hour", s.Thresholds.Hour},
		{"day", s.Thresholds.Day},
		{"month", s.Thresholds.Month},
	}
	for _, th := range thresholds {
		if th.value <= 0 {
			fail("thresholds.%s must be positive, got %d", th.name, th.value)
		}
	}

	if len(s.Labels) > 0 {
		if _, err := i18n.LabelsFromMap(s.Labels, nil); err != nil {
			fail("labels: %v", err)
		}
	}
	return result
}

// Validate returns a CodeInvalidConfig error listing every problem, or nil
func Validate(s Settings) error {
	result := Check(s)
	if result.Valid {
		return nil
	}
	return tkerror.New("invalid configuration: " + strings.Join(result.Errors, "; ")).
		WithCode(tkerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", result.Errors)
}
