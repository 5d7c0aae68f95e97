// File: create.go
// Title: Instant Factory
// Description: The closed set of inputs an Instant can be created from and
//              the single factory that interprets them.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"math"
	"time"
)

// Input is anything an Instant can be created from. The set is closed:
// Now, Timestamp, FloatTimestamp, Native, Components, Array, String and
// Instant.
type Input interface {
	timeInput()
}

// Now is the current time
type Now struct{}

// Timestamp is milliseconds since the Unix epoch
type Timestamp int64

// FloatTimestamp is milliseconds since the Unix epoch; NaN and infinities
// are invalid and fractions are truncated.
type FloatTimestamp float64

// Native wraps a time.Time. The Instant keeps its offset.
type Native time.Time

// Components holds civil fields interpreted in the host location. Year,
// Month and Day default to the current date; time fields default to zero.
// Day is the day of month. Week is ignored.
type Components map[Unit]int

// Array is [year, month, day, hour, minute, second, millisecond] with month
// 1-12, interpreted in the host location. Day defaults to 1 and the rest
// to 0. Fewer than two elements is invalid.
type Array []int

// String is parsed as ISO 8601, D/M/YYYY or "Month D, YYYY"
type String string

func (Now) timeInput()            {}
func (Timestamp) timeInput()      {}
func (FloatTimestamp) timeInput() {}
func (Native) timeInput()         {}
func (Components) timeInput()     {}
func (Array) timeInput()          {}
func (String) timeInput()         {}
func (Instant) timeInput()        {}

// New creates an Instant. Input that cannot be interpreted yields an
// invalid Instant.
func (e *Env) New(in Input) Instant {
	switch v := in.(type) {
	case nil, Now:
		return e.Now()
	case Timestamp:
		return e.fromMillis(int64(v))
	case FloatTimestamp:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= float64(MaxMillis) {
			return e.invalid()
		}
		return e.fromMillis(int64(math.Trunc(f)))
	case Native:
		return e.fromTime(time.Time(v))
	case Components:
		return e.fromComponents(v)
	case Array:
		return e.fromArray(v)
	case String:
		return e.parse(string(v))
	case Instant:
		if v.env == nil {
			return e.instantLike(v)
		}
		return v.Clone()
	}
	return e.invalid()
}

func (e *Env) instantLike(v Instant) Instant {
	if !v.valid {
		return e.invalid()
	}
	return e.instant(v.ms, v.offset, v.zone)
}

// Now returns the current instant at the host offset
func (e *Env) Now() Instant {
	return e.fromMillis(e.clock().UnixMilli())
}

// Today returns the start of the current day
func (e *Env) Today() Instant {
	return e.Now().StartOf(Day)
}

// Unix creates an Instant from seconds since the epoch
func (e *Env) Unix(seconds float64) Instant {
	return e.New(FloatTimestamp(seconds * 1000))
}

// Parse creates an Instant from a string
func (e *Env) Parse(s string) Instant {
	return e.parse(s)
}

// IsValid reports whether in yields a valid Instant
func (e *Env) IsValid(in Input) bool {
	return e.New(in).IsValid()
}

// fromMillis views ms at the host offset in effect at that instant
func (e *Env) fromMillis(ms int64) Instant {
	if !inRange(ms) {
		return e.invalid()
	}
	return e.instant(ms, e.hostOffset(ms), "")
}

func (e *Env) fromTime(t time.Time) Instant {
	name, seconds := t.Zone()
	zone := ""
	if loc := t.Location().String(); loc != "Local" && loc != "UTC" && loc != name {
		zone = loc
	}
	return e.instant(t.UnixMilli(), seconds/60, zone)
}

// fromLocal interprets civil fields in the host location
func (e *Env) fromLocal(c Civil) Instant {
	if !c.inRange() {
		return e.invalid()
	}
	t := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second,
		c.Millisecond*int(time.Millisecond), e.host)
	_, seconds := t.Zone()
	return e.instant(t.UnixMilli(), seconds/60, "")
}

func (e *Env) fromComponents(fields Components) Instant {
	today := time.UnixMilli(e.clock().UnixMilli()).In(e.host)
	c := Civil{Year: today.Year(), Month: int(today.Month()), Day: today.Day()}
	c.apply(fields)
	return e.fromLocal(c)
}

func (e *Env) fromArray(values Array) Instant {
	if len(values) < 2 {
		return e.invalid()
	}
	fields := [7]int{0, 1, 1, 0, 0, 0, 0}
	copy(fields[:], values)
	return e.fromLocal(Civil{
		Year:        fields[0],
		Month:       fields[1],
		Day:         fields[2],
		Hour:        fields[3],
		Minute:      fields[4],
		Second:      fields[5],
		Millisecond: fields[6],
	})
}
