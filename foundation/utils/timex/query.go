// File: query.go
// Title: Instant Queries
// Description: Comparisons, differences, calendar facts and the "is this
//              today/this week/..." predicates.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import "math"

// Inclusivity selects which ends of a range IsBetween includes
type Inclusivity string

const (
	Exclusive      Inclusivity = "()"
	Inclusive      Inclusivity = "[]"
	LeftInclusive  Inclusivity = "[)"
	RightInclusive Inclusivity = "(]"
)

func (in Inclusivity) includesStart() bool {
	return in == "" || in[0] == '['
}

func (in Inclusivity) includesEnd() bool {
	return in == "" || in[len(in)-1] == ']'
}

// ===============================
// Comparison
// ===============================

// compare resolves other and returns the two timestamps, truncated to the
// start of unit when one is given. ok is false if either side is invalid.
func (i Instant) compare(other Input, unit []Unit) (a, b int64, ok bool) {
	if !i.valid {
		return 0, 0, false
	}
	o := i.environment().New(other)
	if !o.valid {
		return 0, 0, false
	}
	if len(unit) == 0 {
		return i.ms, o.ms, true
	}
	return i.StartOf(unit[0]).ms, o.StartOf(unit[0]).ms, true
}

// IsBefore reports whether the instant is before other, optionally at the
// granularity of unit.
func (i Instant) IsBefore(other Input, unit ...Unit) bool {
	a, b, ok := i.compare(other, unit)
	return ok && a < b
}

// IsAfter reports whether the instant is after other
func (i Instant) IsAfter(other Input, unit ...Unit) bool {
	a, b, ok := i.compare(other, unit)
	return ok && a > b
}

// IsSame reports whether the instant equals other
func (i Instant) IsSame(other Input, unit ...Unit) bool {
	a, b, ok := i.compare(other, unit)
	return ok && a == b
}

// IsSameOrBefore reports IsSame or IsBefore
func (i Instant) IsSameOrBefore(other Input, unit ...Unit) bool {
	a, b, ok := i.compare(other, unit)
	return ok && a <= b
}

// IsSameOrAfter reports IsSame or IsAfter
func (i Instant) IsSameOrAfter(other Input, unit ...Unit) bool {
	a, b, ok := i.compare(other, unit)
	return ok && a >= b
}

// IsBetween reports whether the instant lies between start and end. An
// empty inclusivity means Inclusive.
func (i Instant) IsBetween(start, end Input, inclusivity Inclusivity, unit ...Unit) bool {
	env := i.environment()
	if !env.New(start).valid || !env.New(end).valid {
		return false
	}
	afterStart := i.IsAfter(start, unit...)
	if inclusivity.includesStart() {
		afterStart = i.IsSameOrAfter(start, unit...)
	}
	beforeEnd := i.IsBefore(end, unit...)
	if inclusivity.includesEnd() {
		beforeEnd = i.IsSameOrBefore(end, unit...)
	}
	return afterStart && beforeEnd
}

// Diff returns the instant minus other in units. Without precise the result
// is truncated toward zero. Month and year use the fixed unit lengths.
func (i Instant) Diff(other Input, unit Unit, precise bool) float64 {
	a, b, ok := i.compare(other, nil)
	if !ok {
		return math.NaN()
	}
	value := float64(a-b) / float64(unit.Milliseconds())
	if precise {
		return value
	}
	return math.Trunc(value)
}

// ===============================
// Calendar Facts
// ===============================

func (i Instant) firstWeekContainsDate() int {
	return i.environment().settings.FirstWeekContainsDate()
}

// DaysInMonth returns the length of the instant's month
func (i Instant) DaysInMonth() int {
	return i.field(func(c Civil) int { return DaysInMonth(c.Year, c.Month) })
}

// DaysInYear returns 365 or 366
func (i Instant) DaysInYear() int {
	return i.field(func(c Civil) int { return DaysInYear(c.Year) })
}

// WeeksInYear returns the number of weeks in the instant's year under the
// configured first-week rule.
func (i Instant) WeeksInYear() int {
	return i.field(func(c Civil) int { return WeeksInYearWith(c.Year, i.firstWeekContainsDate()) })
}

// WeekOfYear returns the week number under the configured first-week rule
func (i Instant) WeekOfYear() int {
	return i.field(func(c Civil) int { return WeekNumber(c.Year, c.Month, c.Day, i.firstWeekContainsDate()) })
}

// DayOfYear returns the ordinal day, 1-366
func (i Instant) DayOfYear() int {
	return i.field(func(c Civil) int { return DayOfYear(c.Year, c.Month, c.Day) })
}

// Quarter returns 1-4
func (i Instant) Quarter() int {
	return i.field(func(c Civil) int { return (c.Month-1)/3 + 1 })
}

// IsLeapYear reports whether the instant's year is a leap year
func (i Instant) IsLeapYear() bool {
	return i.valid && IsLeapYear(i.Year())
}

// ===============================
// Relative Predicates
// ===============================

func (i Instant) now() Instant {
	return i.environment().Now()
}

// IsToday reports whether the instant falls on the current day
func (i Instant) IsToday() bool {
	return i.valid && i.IsSame(i.now(), Day)
}

// IsTomorrow reports whether the instant falls on the next day
func (i Instant) IsTomorrow() bool {
	return i.valid && i.IsSame(i.now().Add(1, Day), Day)
}

// IsYesterday reports whether the instant falls on the previous day
func (i Instant) IsYesterday() bool {
	return i.valid && i.IsSame(i.now().Subtract(1, Day), Day)
}

// IsThisWeek reports whether the instant falls in the current week
func (i Instant) IsThisWeek() bool {
	if !i.valid {
		return false
	}
	now := i.now()
	return i.IsBetween(now.StartOf(Week), now.EndOf(Week), Inclusive)
}

// IsThisMonth reports whether the instant falls in the current month
func (i Instant) IsThisMonth() bool {
	if !i.valid {
		return false
	}
	now := i.now()
	return i.Year() == now.Year() && i.Month() == now.Month()
}

// IsThisYear reports whether the instant falls in the current year
func (i Instant) IsThisYear() bool {
	return i.valid && i.Year() == i.now().Year()
}

// IsWeekend reports Saturday or Sunday
func (i Instant) IsWeekend() bool {
	if !i.valid {
		return false
	}
	day := i.Day()
	return day == 0 || day == 6
}

// IsWeekday reports Monday through Friday
func (i Instant) IsWeekday() bool {
	return i.valid && !i.IsWeekend()
}

// IsDST reports whether the instant's offset is the larger of the January
// and July offsets of its zone, or of the host location when it has none.
// A fixed offset that differs from the host offset at the instant is never
// daylight saving time.
func (i Instant) IsDST() bool {
	if !i.valid {
		return false
	}
	env := i.environment()
	year := i.Year()
	jan := Civil{Year: year, Month: 1, Day: 1}.UTCMillis()
	jul := Civil{Year: year, Month: 7, Day: 1}.UTCMillis()

	var janOffset, julOffset int
	if i.zone != "" && i.zone != "UTC" {
		_, a, errJan := env.zones.Resolve(i.zone, jan)
		_, b, errJul := env.zones.Resolve(i.zone, jul)
		if errJan != nil || errJul != nil {
			return false
		}
		janOffset, julOffset = a, b
	} else {
		if i.offset != env.hostOffset(i.ms) {
			return false
		}
		janOffset, julOffset = env.hostOffset(jan), env.hostOffset(jul)
	}
	if janOffset == julOffset {
		return false
	}
	return i.offset == max(janOffset, julOffset)
}
