// File: validate.go
// Title: Validation Helpers
// Description: Range checks for civil fields, UTC offsets and week starts,
//              and UTC offset parsing and rendering.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"regexp"
	"strconv"

	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

// Offset limits in minutes
const (
	MinOffset = -12 * 60
	MaxOffset = 14 * 60
)

var offsetPattern = regexp.MustCompile(`^([+-])?(\d{1,2}):?([0-5]\d)?$`)

// IsValidDate reports whether year-month-day exists in the Gregorian calendar
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// IsValidTime reports whether the fields form a wall-clock time of day
func IsValidTime(hour, minute, second, millisecond int) bool {
	return hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59 &&
		millisecond >= 0 && millisecond <= 999
}

// IsValidOffset reports whether minutes lies within UTC-12:00 to UTC+14:00
func IsValidOffset(minutes int) bool {
	return minutes >= MinOffset && minutes <= MaxOffset
}

// IsValidWeekStart reports whether weekday is 0 (Sunday) through 6
func IsValidWeekStart(weekday int) bool {
	return weekday >= 0 && weekday <= 6
}

// ParseOffset parses "+03:00", "+0300", "-03", "03:00" or "0300" into
// minutes east of UTC.
func ParseOffset(s string) (int, bool) {
	m := offsetPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	total := hours*60 + minutes
	if m[1] == "-" {
		total = -total
	}
	return total, true
}

// FormatOffset renders minutes as "+03:00", or "+0300" without the colon
func FormatOffset(minutes int, colon bool) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	separator := ""
	if colon {
		separator = ":"
	}
	return sign + stringx.ZeroPad(minutes/60, 2) + separator + stringx.ZeroPad(minutes%60, 2)
}
