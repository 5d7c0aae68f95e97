// File: instant.go
// Title: Instant Value
// Description: The immutable Instant: a millisecond timestamp with the UTC
//              offset and optional zone it is viewed in. Civil getters read
//              the fields at that offset.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"encoding/json"
	"math"
	"time"

	"github.com/ersinkoc/TimeKit/foundation/utils/mathx"
	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

// InvalidNumber is returned by integer getters of invalid values
const InvalidNumber = math.MinInt

// MaxMillis bounds valid timestamps and durations (exclusive)
const MaxMillis int64 = 8_640_000_000_000_000

// InvalidDate is the string form of an invalid Instant
const InvalidDate = "Invalid Date"

// Instant is an immutable point in time viewed at a UTC offset
type Instant struct {
	env    *Env
	ms     int64
	offset int
	zone   string
	valid  bool
}

func inRange(ms int64) bool {
	return ms > -MaxMillis && ms < MaxMillis
}

// instant builds a value, invalid when ms is out of range
func (e *Env) instant(ms int64, offset int, zone string) Instant {
	if !inRange(ms) {
		return e.invalid()
	}
	return Instant{env: e, ms: ms, offset: offset, zone: zone, valid: true}
}

func (e *Env) invalid() Instant {
	return Instant{env: e}
}

func (i Instant) environment() *Env {
	if i.env == nil {
		return fallbackEnv
	}
	return i.env
}

func (i Instant) withMillis(ms int64) Instant {
	return i.environment().instant(ms, i.offset, i.zone)
}

func (i Instant) invalidCopy() Instant {
	return i.environment().invalid()
}

func (i Instant) civil() Civil {
	return civilAt(i.ms, i.offset)
}

// fromCivil converts fields at the Instant's offset back to a timestamp
func (i Instant) fromCivil(c Civil) Instant {
	if !c.inRange() {
		return i.invalidCopy()
	}
	return i.withMillis(c.UTCMillis() - int64(i.offset)*MillisPerMinute)
}

// IsValid reports whether the Instant holds a usable timestamp
func (i Instant) IsValid() bool {
	return i.valid
}

// ===============================
// Getters
// ===============================

func (i Instant) field(get func(Civil) int) int {
	if !i.valid {
		return InvalidNumber
	}
	return get(i.civil())
}

// Year returns the civil year
func (i Instant) Year() int { return i.field(func(c Civil) int { return c.Year }) }

// Month returns the civil month, 1-12
func (i Instant) Month() int { return i.field(func(c Civil) int { return c.Month }) }

// Date returns the day of month
func (i Instant) Date() int { return i.field(func(c Civil) int { return c.Day }) }

// Day returns the day of week, 0 = Sunday
func (i Instant) Day() int { return i.field(Civil.Weekday) }

// Hour returns the hour, 0-23
func (i Instant) Hour() int { return i.field(func(c Civil) int { return c.Hour }) }

// Minute returns the minute
func (i Instant) Minute() int { return i.field(func(c Civil) int { return c.Minute }) }

// Second returns the second
func (i Instant) Second() int { return i.field(func(c Civil) int { return c.Second }) }

// Millisecond returns the millisecond
func (i Instant) Millisecond() int { return i.field(func(c Civil) int { return c.Millisecond }) }

// Get returns the field selected by unit. Week has no field and returns
// InvalidNumber.
func (i Instant) Get(unit Unit) int {
	switch unit {
	case Year:
		return i.Year()
	case Month:
		return i.Month()
	case Day:
		return i.Date()
	case Hour:
		return i.Hour()
	case Minute:
		return i.Minute()
	case Second:
		return i.Second()
	case Millisecond:
		return i.Millisecond()
	}
	return InvalidNumber
}

// ===============================
// Conversion
// ===============================

// ValueOf returns the timestamp in milliseconds, or math.MinInt64 when invalid
func (i Instant) ValueOf() int64 {
	if !i.valid {
		return math.MinInt64
	}
	return i.ms
}

// Unix returns the timestamp in whole seconds, rounded down
func (i Instant) Unix() int64 {
	if !i.valid {
		return math.MinInt64
	}
	return mathx.FloorDiv(i.ms, 1000)
}

// ToTime converts to a time.Time at the Instant's offset. An invalid
// Instant yields the zero time.
func (i Instant) ToTime() time.Time {
	if !i.valid {
		return time.Time{}
	}
	return time.UnixMilli(i.ms).In(time.FixedZone(i.Timezone(), i.offset*60))
}

// ToArray returns [year, month, date, hour, minute, second, millisecond]
func (i Instant) ToArray() [7]int {
	if !i.valid {
		return [7]int{InvalidNumber, InvalidNumber, InvalidNumber, InvalidNumber, InvalidNumber, InvalidNumber, InvalidNumber}
	}
	c := i.civil()
	return [7]int{c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, c.Millisecond}
}

// ToObject returns the civil fields. ok is false for an invalid Instant.
func (i Instant) ToObject() (c Civil, ok bool) {
	if !i.valid {
		return Civil{}, false
	}
	return i.civil(), true
}

// Clone returns a copy
func (i Instant) Clone() Instant {
	return i
}

// ISOString renders the instant in UTC as YYYY-MM-DDTHH:mm:ss.sssZ
func (i Instant) ISOString() string {
	if !i.valid {
		return InvalidDate
	}
	c := civilAt(i.ms, 0)
	return isoYear(c.Year) + "-" + stringx.ZeroPad(c.Month, 2) + "-" + stringx.ZeroPad(c.Day, 2) +
		"T" + stringx.ZeroPad(c.Hour, 2) + ":" + stringx.ZeroPad(c.Minute, 2) + ":" + stringx.ZeroPad(c.Second, 2) +
		"." + stringx.ZeroPad(c.Millisecond, 3) + "Z"
}

// isoYear renders four-digit years plainly and others with a sign and six
// digits.
func isoYear(year int) string {
	if year >= 0 && year <= 9999 {
		return stringx.ZeroPad(year, 4)
	}
	if year < 0 {
		return "-" + stringx.ZeroPad(-year, 6)
	}
	return "+" + stringx.ZeroPad(year, 6)
}

// String renders the instant in English at its offset, for example
// "Fri Jan 01 2021 00:00:00 GMT+0000".
func (i Instant) String() string {
	if !i.valid {
		return InvalidDate
	}
	return i.formatIn("en", "ddd MMM DD YYYY HH:mm:ss [GMT]ZZ")
}

// MarshalJSON encodes the ISO string
func (i Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.ISOString())
}

// ===============================
// Offset & Zone
// ===============================

// UTCOffset returns the offset in minutes east of UTC
func (i Instant) UTCOffset() int {
	return i.offset
}

// Timezone returns the zone name, "UTC", or a label such as "UTC+0300"
func (i Instant) Timezone() string {
	if i.zone != "" {
		return i.zone
	}
	if i.offset == 0 {
		return "UTC"
	}
	return "UTC" + FormatOffset(i.offset, false)
}

// UTC returns the same instant viewed at offset zero
func (i Instant) UTC() Instant {
	if !i.valid {
		return i.invalidCopy()
	}
	return i.environment().instant(i.ms, 0, "UTC")
}

// Local returns the same instant viewed at the host offset in effect then
func (i Instant) Local() Instant {
	if !i.valid {
		return i.invalidCopy()
	}
	env := i.environment()
	return env.instant(i.ms, env.hostOffset(i.ms), "")
}

// Tz returns the same instant viewed in zone. An unknown zone is an error
// with code CodeInvalidTimezone, also for an invalid receiver.
func (i Instant) Tz(zone string) (Instant, error) {
	env := i.environment()
	if !i.valid {
		if _, _, err := env.zones.Resolve(zone, 0); err != nil {
			return i.invalidCopy(), err
		}
		return i.invalidCopy(), nil
	}
	c, offset, err := env.zones.Resolve(zone, i.ms)
	if err != nil {
		return i.invalidCopy(), err
	}
	return env.instant(c.UTCMillis()-int64(offset)*MillisPerMinute, offset, zone), nil
}

// WithUTCOffset keeps the civil fields and reinterprets them at minutes
// east of UTC. Offsets outside [MinOffset, MaxOffset] give an invalid
// Instant.
func (i Instant) WithUTCOffset(minutes int) Instant {
	if !i.valid || !IsValidOffset(minutes) {
		return i.invalidCopy()
	}
	shift := int64(minutes-i.offset) * MillisPerMinute
	return i.environment().instant(i.ms-shift, minutes, "")
}

// WithUTCOffsetString is WithUTCOffset for offsets such as "+03:00".
// Unparseable offsets give an invalid Instant.
func (i Instant) WithUTCOffsetString(offset string) Instant {
	minutes, ok := ParseOffset(offset)
	if !ok {
		return i.invalidCopy()
	}
	return i.WithUTCOffset(minutes)
}
