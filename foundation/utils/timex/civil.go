// File: civil.go
// Title: Civil Calendar Math
// Description: Civil date-time fields, their conversion to and from epoch
//              milliseconds and the proleptic Gregorian calendar facts used
//              by the engine and the calendar package.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import "time"

// Civil holds wall-clock fields. Month is 1-12.
type Civil struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	Day         int `json:"date"`
	Hour        int `json:"hour"`
	Minute      int `json:"minute"`
	Second      int `json:"second"`
	Millisecond int `json:"millisecond"`
}

// civilAt decomposes ms shifted by offset minutes
func civilAt(ms int64, offset int) Civil {
	return civilOf(time.UnixMilli(ms + int64(offset)*MillisPerMinute).UTC())
}

func civilOf(t time.Time) Civil {
	return Civil{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// apply overwrites the fields named in fields. Week is ignored.
func (c *Civil) apply(fields Components) {
	for unit, value := range fields {
		switch unit {
		case Year:
			c.Year = value
		case Month:
			c.Month = value
		case Day:
			c.Day = value
		case Hour:
			c.Hour = value
		case Minute:
			c.Minute = value
		case Second:
			c.Second = value
		case Millisecond:
			c.Millisecond = value
		}
	}
}

// utc returns the fields as a UTC time. Out-of-range fields carry over into
// the next larger field.
func (c Civil) utc() time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second,
		c.Millisecond*int(time.Millisecond), time.UTC)
}

// maxCivilYear keeps civil arithmetic clear of int64 overflow. Valid
// instants never leave year 275760.
const maxCivilYear = 300000

func (c Civil) inRange() bool {
	return c.Year > -maxCivilYear && c.Year < maxCivilYear
}

// UTCMillis returns the epoch milliseconds of the fields read as UTC
func (c Civil) UTCMillis() int64 {
	return c.utc().UnixMilli()
}

// Weekday returns the day of week, 0 = Sunday
func (c Civil) Weekday() int {
	return int(c.utc().Weekday())
}

// Normalize carries out-of-range fields over, as time.Date does
func (c Civil) Normalize() Civil {
	return civilOf(c.utc())
}

// ===============================
// Calendar Facts
// ===============================

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month (1-12) of year. Months
// outside 1-12 report 31.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 31
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// epochDay returns the day number of a civil date, 0 = 1970-01-01
func epochDay(year, month, day int) int64 {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// firstWeekStart returns the epoch day of the Monday that opens week 1 of
// year: the week containing January firstWeekContainsDate.
func firstWeekStart(year, firstWeekContainsDate int) int64 {
	anchor := epochDay(year, 1, firstWeekContainsDate)
	weekday := int(time.Date(year, 1, firstWeekContainsDate, 0, 0, 0, 0, time.UTC).Weekday())
	return anchor - int64((weekday+6)%7)
}

// WeekNumber returns the week of year of a civil date. Weeks start on
// Monday and week 1 contains January firstWeekContainsDate, which gives ISO
// 8601 week numbers for the default of 4.
func WeekNumber(year, month, day, firstWeekContainsDate int) int {
	if firstWeekContainsDate < 1 || firstWeekContainsDate > 7 {
		firstWeekContainsDate = 4
	}
	d := epochDay(year, month, day)
	start := firstWeekStart(year, firstWeekContainsDate)
	if d < start {
		start = firstWeekStart(year-1, firstWeekContainsDate)
	} else if next := firstWeekStart(year+1, firstWeekContainsDate); d >= next {
		start = next
	}
	return int((d-start)/7) + 1
}

// WeeksInYear returns the number of ISO weeks in year (52 or 53)
func WeeksInYear(year int) int {
	return WeeksInYearWith(year, 4)
}

// WeeksInYearWith returns the number of weeks in year when week 1 contains
// January firstWeekContainsDate.
func WeeksInYearWith(year, firstWeekContainsDate int) int {
	if firstWeekContainsDate < 1 || firstWeekContainsDate > 7 {
		firstWeekContainsDate = 4
	}
	return int((firstWeekStart(year+1, firstWeekContainsDate) - firstWeekStart(year, firstWeekContainsDate)) / 7)
}

// DayOfYear returns the ordinal day of a civil date, 1-based
func DayOfYear(year, month, day int) int {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).YearDay()
}
