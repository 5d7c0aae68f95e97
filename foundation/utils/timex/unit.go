// File: unit.go
// Title: Time Units
// Description: The closed set of time units, their aliases and their fixed
//              lengths in milliseconds.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

// Unit is a time unit
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// Fixed unit lengths in milliseconds. Month and year are averages.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
	MillisPerDay    int64 = 24 * MillisPerHour
	MillisPerWeek   int64 = 7 * MillisPerDay
	MillisPerMonth  int64 = 2629800000  // 30.44 days
	MillisPerYear   int64 = 31557600000 // 365.25 days
)

var unitNames = [...]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
}

var unitAliases = map[string]Unit{
	"y": Year, "year": Year, "years": Year,
	"M": Month, "month": Month, "months": Month,
	"w": Week, "week": Week, "weeks": Week,
	"d": Day, "day": Day, "days": Day, "date": Day,
	"h": Hour, "hour": Hour, "hours": Hour,
	"m": Minute, "minute": Minute, "minutes": Minute,
	"s": Second, "second": Second, "seconds": Second,
	"ms": Millisecond, "millisecond": Millisecond, "milliseconds": Millisecond,
}

// Units lists every unit from largest to smallest
var Units = []Unit{Year, Month, Week, Day, Hour, Minute, Second, Millisecond}

// ParseUnit resolves a unit alias. Aliases are case-sensitive: "M" is month
// and "m" is minute.
func ParseUnit(alias string) (Unit, bool) {
	unit, ok := unitAliases[alias]
	return unit, ok
}

// String returns the singular unit name
func (u Unit) String() string {
	if !u.IsValid() {
		return "unknown"
	}
	return unitNames[u]
}

// IsValid reports whether u is one of the defined units
func (u Unit) IsValid() bool {
	return u >= Millisecond && u <= Year
}

// Milliseconds returns the fixed length of the unit
func (u Unit) Milliseconds() int64 {
	switch u {
	case Year:
		return MillisPerYear
	case Month:
		return MillisPerMonth
	case Week:
		return MillisPerWeek
	case Day:
		return MillisPerDay
	case Hour:
		return MillisPerHour
	case Minute:
		return MillisPerMinute
	case Second:
		return MillisPerSecond
	case Millisecond:
		return 1
	}
	return 0
}
