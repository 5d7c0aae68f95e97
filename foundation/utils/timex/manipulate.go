// File: manipulate.go
// Title: Instant Arithmetic
// Description: Fixed-length and calendar arithmetic, field setters and unit
//              boundaries. Every operation returns a new Instant that keeps
//              the offset and zone of its receiver.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"math"

	"github.com/ersinkoc/TimeKit/foundation/utils/mathx"
)

// Add moves the instant by amount fixed-length units. Months are 30.44 days
// and years 365.25 days; use AddCalendar for calendar months.
func (i Instant) Add(amount float64, unit Unit) Instant {
	if !i.valid {
		return i.invalidCopy()
	}
	shifted := float64(i.ms) + amount*float64(unit.Milliseconds())
	if math.IsNaN(shifted) || math.IsInf(shifted, 0) || math.Abs(shifted) >= float64(MaxMillis) {
		return i.invalidCopy()
	}
	return i.withMillis(int64(math.Round(shifted)))
}

// Subtract is Add with the amount negated
func (i Instant) Subtract(amount float64, unit Unit) Instant {
	return i.Add(-amount, unit)
}

// AddCalendar moves by calendar units. Months and years keep the day of
// month, clamped to the length of the target month, and the time of day.
// Other units behave as Add.
func (i Instant) AddCalendar(amount int, unit Unit) Instant {
	if !i.valid {
		return i.invalidCopy()
	}
	switch unit {
	case Year, Month:
		c := i.civil()
		if unit == Year {
			c.Year += amount
		} else {
			total := c.Year*12 + (c.Month - 1) + amount
			c.Year = mathx.FloorDiv(total, 12)
			c.Month = total - c.Year*12 + 1
		}
		if last := DaysInMonth(c.Year, c.Month); c.Day > last {
			c.Day = last
		}
		return i.fromCivil(c)
	}
	return i.Add(float64(amount), unit)
}

// ===============================
// Setters
// ===============================

func (i Instant) setField(apply func(*Civil)) Instant {
	if !i.valid {
		return i.invalidCopy()
	}
	c := i.civil()
	apply(&c)
	return i.fromCivil(c)
}

// SetYear sets the year. An out-of-range day rolls into the next month.
func (i Instant) SetYear(value int) Instant {
	return i.setField(func(c *Civil) { c.Year = value })
}

// SetMonth sets the month (1-12). Overflow carries into the year and an
// out-of-range day rolls into the next month.
func (i Instant) SetMonth(value int) Instant {
	return i.setField(func(c *Civil) { c.Month = value })
}

// SetDate sets the day of month
func (i Instant) SetDate(value int) Instant {
	return i.setField(func(c *Civil) { c.Day = value })
}

// SetHour sets the hour
func (i Instant) SetHour(value int) Instant {
	return i.setField(func(c *Civil) { c.Hour = value })
}

// SetMinute sets the minute
func (i Instant) SetMinute(value int) Instant {
	return i.setField(func(c *Civil) { c.Minute = value })
}

// SetSecond sets the second
func (i Instant) SetSecond(value int) Instant {
	return i.setField(func(c *Civil) { c.Second = value })
}

// SetMillisecond sets the millisecond
func (i Instant) SetMillisecond(value int) Instant {
	return i.setField(func(c *Civil) { c.Millisecond = value })
}

// Set sets the field selected by unit. Week has no field and returns the
// receiver unchanged.
func (i Instant) Set(unit Unit, value int) Instant {
	switch unit {
	case Year:
		return i.SetYear(value)
	case Month:
		return i.SetMonth(value)
	case Day:
		return i.SetDate(value)
	case Hour:
		return i.SetHour(value)
	case Minute:
		return i.SetMinute(value)
	case Second:
		return i.SetSecond(value)
	case Millisecond:
		return i.SetMillisecond(value)
	}
	if !i.valid {
		return i.invalidCopy()
	}
	return i
}

// SetFields sets several fields at once; overflow is carried after all of
// them are applied, so {Month: 2, Day: 29} on January 31 gives February 29.
func (i Instant) SetFields(fields Components) Instant {
	return i.setField(func(c *Civil) { c.apply(fields) })
}

// ===============================
// Boundaries
// ===============================

// startCivil truncates c to the start of unit. Weeks start on weekStart.
func startCivil(c Civil, unit Unit, weekStart int) Civil {
	switch unit {
	case Year:
		c.Month, c.Day = 1, 1
	case Month:
		c.Day = 1
	case Week:
		c.Day -= mathx.FloorMod(c.Weekday()-weekStart, 7)
	}
	switch unit {
	case Year, Month, Week, Day:
		c.Hour, c.Minute, c.Second, c.Millisecond = 0, 0, 0, 0
	case Hour:
		c.Minute, c.Second, c.Millisecond = 0, 0, 0
	case Minute:
		c.Second, c.Millisecond = 0, 0
	case Second:
		c.Millisecond = 0
	}
	return c.Normalize()
}

func (i Instant) weekStart() int {
	ws := i.environment().settings.WeekStart()
	if !IsValidWeekStart(ws) {
		return 1
	}
	return ws
}

// StartOf returns the first millisecond of the unit containing the instant.
// Weeks begin on the configured week start.
func (i Instant) StartOf(unit Unit) Instant {
	if !i.valid {
		return i.invalidCopy()
	}
	if unit == Millisecond {
		return i
	}
	return i.fromCivil(startCivil(i.civil(), unit, i.weekStart()))
}

// EndOf returns the last millisecond of the unit containing the instant
func (i Instant) EndOf(unit Unit) Instant {
	if !i.valid {
		return i.invalidCopy()
	}
	if unit == Millisecond {
		return i
	}
	next := startCivil(i.civil(), unit, i.weekStart())
	switch unit {
	case Year:
		next.Year++
	case Month:
		next.Month++
	case Week:
		next.Day += 7
	case Day:
		next.Day++
	case Hour:
		next.Hour++
	case Minute:
		next.Minute++
	case Second:
		next.Second++
	}
	return i.fromCivil(next).Add(-1, Millisecond)
}
