// File: parse.go
// Title: String Parsing
// Description: Recognizes ISO 8601 timestamps, numeric D/M/YYYY dates and
//              English "Month D, YYYY" dates. Anything else is invalid.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	isoPattern       = regexp.MustCompile(`(?i)^(\d{4})-(\d{2})-(\d{2})(?:T(\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,3}))?(Z|([+-]\d{2}):?([0-5]\d))?)?$`)
	numericPattern   = regexp.MustCompile(`^(\d{1,2})[-./](\d{1,2})[-./](\d{4})$`)
	monthNamePattern = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})$`)
)

// englishMonths maps full and three-letter English month names to 1-12
var englishMonths = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func (e *Env) parse(s string) Instant {
	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return e.parseISO(m)
	}
	if m := numericPattern.FindStringSubmatch(s); m != nil {
		first, second := atoi(m[1]), atoi(m[2])
		day, month := second, first
		if first > 12 {
			day, month = first, second
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return e.invalid()
		}
		return e.fromLocal(Civil{Year: atoi(m[3]), Month: month, Day: day})
	}
	if m := monthNamePattern.FindStringSubmatch(s); m != nil {
		month, ok := englishMonths[strings.ToLower(m[1])]
		if !ok {
			return e.invalid()
		}
		return e.fromLocal(Civil{Year: atoi(m[3]), Month: month, Day: atoi(m[2])})
	}
	return e.invalid()
}

// parseISO builds an Instant from the isoPattern groups. A Z or numeric
// suffix becomes the offset; without one the fields are local time.
func (e *Env) parseISO(m []string) Instant {
	c := Civil{
		Year:   atoi(m[1]),
		Month:  atoi(m[2]),
		Day:    atoi(m[3]),
		Hour:   atoi(m[4]),
		Minute: atoi(m[5]),
		Second: atoi(m[6]),
	}
	if m[7] != "" {
		c.Millisecond = atoi((m[7] + "00")[:3])
	}

	switch {
	case strings.EqualFold(m[8], "Z"):
		return e.instant(c.UTCMillis(), 0, "")
	case m[9] != "":
		hours := atoi(m[9])
		minutes := atoi(m[10])
		offset := hours*60 + minutes
		if strings.HasPrefix(m[9], "-") {
			offset = hours*60 - minutes
		}
		if !IsValidOffset(offset) {
			return e.invalid()
		}
		return e.instant(c.UTCMillis()-int64(offset)*MillisPerMinute, offset, "")
	}
	return e.fromLocal(c)
}
