// File: duration.go
// Title: Duration Value
// Description: The immutable Duration: a signed span in milliseconds with
//              component and total getters, ISO 8601 parsing and rendering,
//              pattern formatting and humanization.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

// InvalidDurationText is the string form of an invalid Duration
const InvalidDurationText = "Invalid Duration"

// DurationInput is anything a Duration can be created from: Millis,
// DurationFields, ISODuration or Duration.
type DurationInput interface {
	durationInput()
}

// Millis is a span in milliseconds
type Millis float64

// DurationFields sums amounts of each unit
type DurationFields map[Unit]float64

// ISODuration is an ISO 8601 duration such as "P1Y2M3DT4H5M6.5S"
type ISODuration string

func (Millis) durationInput()         {}
func (DurationFields) durationInput() {}
func (ISODuration) durationInput()    {}
func (Duration) durationInput()       {}

var isoDurationPattern = regexp.MustCompile(`(?i)^([-+])?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// Duration is an immutable signed span of time
type Duration struct {
	env *Env
	ms  float64
}

// Duration creates a Duration. Unparseable ISO strings give an invalid
// Duration.
func (e *Env) Duration(in DurationInput) Duration {
	return Duration{env: e, ms: durationMillis(in)}
}

func durationMillis(in DurationInput) float64 {
	switch v := in.(type) {
	case Millis:
		return float64(v)
	case DurationFields:
		total := 0.0
		for unit, amount := range v {
			total += amount * float64(unit.Milliseconds())
		}
		return total
	case ISODuration:
		return parseISODuration(string(v))
	case Duration:
		return v.ms
	}
	return math.NaN()
}

// parseISODuration returns the span of s in milliseconds, or NaN
func parseISODuration(s string) float64 {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil || strings.HasSuffix(strings.ToUpper(s), "T") {
		return math.NaN()
	}
	total := 0.0
	units := []Unit{Year, Month, Week, Day, Hour, Minute}
	for n, unit := range units {
		if group := m[n+2]; group != "" {
			amount, err := strconv.ParseFloat(group, 64)
			if err != nil {
				return math.NaN()
			}
			total += amount * float64(unit.Milliseconds())
		}
	}
	if m[8] != "" {
		total += secondsMillis(m[8])
	}
	if m[1] == "-" {
		total = -total
	}
	return total
}

// secondsMillis converts "6.5" to 6500 without binary rounding of the
// first three decimals.
func secondsMillis(s string) float64 {
	whole, frac, _ := strings.Cut(s, ".")
	wholeSeconds, _ := strconv.ParseFloat(whole, 64)
	ms := wholeSeconds * 1000
	if frac == "" {
		return ms
	}
	frac += "00"
	millis, _ := strconv.Atoi(frac[:3])
	ms += float64(millis)
	if len(frac) > 3 {
		rest, _ := strconv.ParseFloat("0."+frac[3:], 64)
		ms += rest
	}
	return ms
}

func (d Duration) environment() *Env {
	if d.env == nil {
		return fallbackEnv
	}
	return d.env
}

// IsValid reports whether the span is finite and within the timestamp range
func (d Duration) IsValid() bool {
	return !math.IsNaN(d.ms) && !math.IsInf(d.ms, 0) && math.Abs(d.ms) < float64(MaxMillis)
}

// ===============================
// Component Getters
// ===============================

func (d Duration) count(unit Unit) int {
	if !d.IsValid() {
		return InvalidNumber
	}
	return int(math.Trunc(d.ms / float64(unit.Milliseconds())))
}

// Years returns the whole years in the span
func (d Duration) Years() int { return d.count(Year) }

// Months returns the whole months in the span
func (d Duration) Months() int { return d.count(Month) }

// Weeks returns the whole weeks in the span
func (d Duration) Weeks() int { return d.count(Week) }

// Days returns the whole days in the span
func (d Duration) Days() int { return d.count(Day) }

// Hours returns the hours part, -23 to 23
func (d Duration) Hours() int { return d.wrapped(Hour, 24) }

// Minutes returns the minutes part
func (d Duration) Minutes() int { return d.wrapped(Minute, 60) }

// Seconds returns the seconds part
func (d Duration) Seconds() int { return d.wrapped(Second, 60) }

// Milliseconds returns the milliseconds part
func (d Duration) Milliseconds() int { return d.wrapped(Millisecond, 1000) }

func (d Duration) wrapped(unit Unit, modulus int) int {
	n := d.count(unit)
	if n == InvalidNumber {
		return n
	}
	return n % modulus
}

// ===============================
// Totals
// ===============================

func (d Duration) as(unit Unit) float64 {
	if !d.IsValid() {
		return math.NaN()
	}
	return d.ms / float64(unit.Milliseconds())
}

// As returns the span in units
func (d Duration) As(unit Unit) float64 { return d.as(unit) }

// AsYears returns the span in years
func (d Duration) AsYears() float64 { return d.as(Year) }

// AsMonths returns the span in months
func (d Duration) AsMonths() float64 { return d.as(Month) }

// AsWeeks returns the span in weeks
func (d Duration) AsWeeks() float64 { return d.as(Week) }

// AsDays returns the span in days
func (d Duration) AsDays() float64 { return d.as(Day) }

// AsHours returns the span in hours
func (d Duration) AsHours() float64 { return d.as(Hour) }

// AsMinutes returns the span in minutes
func (d Duration) AsMinutes() float64 { return d.as(Minute) }

// AsSeconds returns the span in seconds
func (d Duration) AsSeconds() float64 { return d.as(Second) }

// AsMilliseconds returns the span in milliseconds
func (d Duration) AsMilliseconds() float64 { return d.as(Millisecond) }

// ===============================
// Arithmetic
// ===============================

// Add lengthens the span by amount units
func (d Duration) Add(amount float64, unit Unit) Duration {
	return Duration{env: d.env, ms: d.ms + amount*float64(unit.Milliseconds())}
}

// Subtract shortens the span by amount units
func (d Duration) Subtract(amount float64, unit Unit) Duration {
	return d.Add(-amount, unit)
}

// Plus adds another span
func (d Duration) Plus(other DurationInput) Duration {
	return Duration{env: d.env, ms: d.ms + durationMillis(other)}
}

// Minus subtracts another span
func (d Duration) Minus(other DurationInput) Duration {
	return Duration{env: d.env, ms: d.ms - durationMillis(other)}
}

// Clone returns a copy
func (d Duration) Clone() Duration {
	return d
}

// ===============================
// Conversion
// ===============================

// DurationObject lists the component getters
type DurationObject struct {
	Years        int `json:"years"`
	Months       int `json:"months"`
	Weeks        int `json:"weeks"`
	Days         int `json:"days"`
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	Seconds      int `json:"seconds"`
	Milliseconds int `json:"milliseconds"`
}

// ToObject returns every component getter
func (d Duration) ToObject() DurationObject {
	return DurationObject{
		Years:        d.Years(),
		Months:       d.Months(),
		Weeks:        d.Weeks(),
		Days:         d.Days(),
		Hours:        d.Hours(),
		Minutes:      d.Minutes(),
		Seconds:      d.Seconds(),
		Milliseconds: d.Milliseconds(),
	}
}

// ISOString renders the span as ISO 8601. Years, months, days, hours and
// minutes are taken largest first from the remainder, so parsing the result
// gives the same span back. Negative spans carry a leading minus.
func (d Duration) ISOString() string {
	if !d.IsValid() {
		return InvalidDurationText
	}
	rest := math.Abs(d.ms)
	take := func(unit Unit) int64 {
		n := math.Floor(rest / float64(unit.Milliseconds()))
		rest -= n * float64(unit.Milliseconds())
		return int64(n)
	}
	years, months, days := take(Year), take(Month), take(Day)
	hours, minutes := take(Hour), take(Minute)

	var b strings.Builder
	if d.ms < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	writePart := func(n int64, designator byte) {
		if n > 0 {
			b.WriteString(strconv.FormatInt(n, 10))
			b.WriteByte(designator)
		}
	}
	writePart(years, 'Y')
	writePart(months, 'M')
	writePart(days, 'D')
	if hours > 0 || minutes > 0 || rest > 0 {
		b.WriteByte('T')
		writePart(hours, 'H')
		writePart(minutes, 'M')
		if rest > 0 {
			b.WriteString(formatSeconds(rest))
			b.WriteByte('S')
		}
	}
	if b.Len() == 1 || (b.Len() == 2 && d.ms < 0) {
		return "PT0S"
	}
	return b.String()
}

// formatSeconds renders ms as seconds with only the decimals needed
func formatSeconds(ms float64) string {
	if ms == math.Trunc(ms) {
		whole := int64(ms)
		s := strconv.FormatInt(whole/1000, 10)
		if frac := whole % 1000; frac != 0 {
			s += "." + strings.TrimRight(stringx.ZeroPad(int(frac), 3), "0")
		}
		return s
	}
	return strconv.FormatFloat(ms/1000, 'f', -1, 64)
}

// String returns the ISO form
func (d Duration) String() string {
	return d.ISOString()
}

// MarshalJSON encodes the ISO form
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ISOString())
}

// ===============================
// Formatting
// ===============================

// Digital templates that count hours across days
const (
	DigitalClock       = "HH:mm:ss"
	DigitalClockMillis = "HH:mm:ss.SSS"
)

type durationToken func(d Duration) string

func pad2(n int) string { return stringx.ZeroPad(n, 2) }

var durationTokens = map[string]durationToken{
	"YYYY": func(d Duration) string { return itoa(d.Years()) },
	"YY":   func(d Duration) string { return lastTwo(itoa(d.Years())) },
	"M":    func(d Duration) string { return itoa(d.Months()) },
	"MM":   func(d Duration) string { return pad2(d.Months()) },
	"d":    func(d Duration) string { return itoa(d.Days()) },
	"dd":   func(d Duration) string { return pad2(d.Days()) },
	"w":    func(d Duration) string { return itoa(d.Weeks()) },
	"ww":   func(d Duration) string { return pad2(d.Weeks()) },
	"H":    func(d Duration) string { return strconv.FormatFloat(d.AsHours(), 'f', -1, 64) },
	"HH":   func(d Duration) string { return pad2(d.count(Hour)) },
	"h":    func(d Duration) string { return itoa(d.Hours()) },
	"hh":   func(d Duration) string { return pad2(d.Hours()) },
	"m":    func(d Duration) string { return itoa(d.Minutes()) },
	"mm":   func(d Duration) string { return pad2(d.Minutes()) },
	"s":    func(d Duration) string { return itoa(d.Seconds()) },
	"ss":   func(d Duration) string { return pad2(d.Seconds()) },
	"SSS":  func(d Duration) string { return stringx.ZeroPad(d.Milliseconds(), 3) },
	"S":    func(d Duration) string { return itoa(d.Milliseconds() / 100) },
}

// Format renders the span with template. DigitalClock and
// DigitalClockMillis show total hours; other templates use the duration
// tokens YYYY YY M MM d dd w ww H HH h hh m mm s ss SSS S. An empty
// template means DigitalClock.
func (d Duration) Format(template string) string {
	if !d.IsValid() {
		return InvalidDurationText
	}
	switch template {
	case "", DigitalClock:
		return pad2(d.count(Hour)) + ":" + pad2(d.Minutes()) + ":" + pad2(d.Seconds())
	case DigitalClockMillis:
		return pad2(d.count(Hour)) + ":" + pad2(d.Minutes()) + ":" + pad2(d.Seconds()) +
			"." + stringx.ZeroPad(d.Milliseconds(), 3)
	}
	return expandTokens(template, func(token string) (string, bool) {
		if fn, ok := durationTokens[token]; ok {
			return fn(d), true
		}
		return "", false
	})
}

// Humanize describes the span in words, with the future/past wrapping when
// withSuffix is set.
func (d Duration) Humanize(withSuffix bool) string {
	if !d.IsValid() {
		return InvalidDurationText
	}
	return d.environment().FormatRelative(math.Abs(d.ms), d.ms < 0, !withSuffix)
}

// ===============================
// Duration Utilities
// ===============================

// DurationStyle selects the FormatDuration rendering
type DurationStyle int

const (
	// DurationLong lists units in words: "1 day, 2 hours"
	DurationLong DurationStyle = iota
	// DurationDigital renders HH:mm:ss
	DurationDigital
)

// DurationFormatOptions configures FormatDuration
type DurationFormatOptions struct {
	Style DurationStyle
	// Units to list, largest first. Defaults to days, hours, minutes and
	// seconds.
	Units []Unit
	// Largest caps the number of listed units; zero lists all.
	Largest int
	// Template, when set, is passed to Duration.Format.
	Template string
}

var defaultDurationUnits = []Unit{Day, Hour, Minute, Second}

func (d Duration) component(unit Unit) int {
	switch unit {
	case Year:
		return d.Years()
	case Month:
		return d.Months()
	case Week:
		return d.Weeks()
	case Day:
		return d.Days()
	case Hour:
		return d.Hours()
	case Minute:
		return d.Minutes()
	case Second:
		return d.Seconds()
	}
	return d.Milliseconds()
}

// FormatDuration renders ms according to options
func (e *Env) FormatDuration(ms float64, options DurationFormatOptions) string {
	d := e.Duration(Millis(ms))
	if options.Template != "" {
		return d.Format(options.Template)
	}
	if options.Style == DurationDigital {
		return d.Format(DigitalClock)
	}
	if !d.IsValid() {
		return InvalidDurationText
	}

	units := options.Units
	if len(units) == 0 {
		units = defaultDurationUnits
	}
	largest := options.Largest
	if largest <= 0 {
		largest = len(units)
	}

	parts := make([]string, 0, largest)
	for _, unit := range units {
		if len(parts) >= largest {
			break
		}
		value := d.component(unit)
		if value <= 0 {
			continue
		}
		name := unit.String()
		if value != 1 {
			name += "s"
		}
		parts = append(parts, itoa(value)+" "+name)
	}
	if len(parts) == 0 {
		return "0 milliseconds"
	}
	return strings.Join(parts, ", ")
}

// HumanizeDuration describes ms in words without a suffix
func (e *Env) HumanizeDuration(ms float64) string {
	return e.Duration(Millis(ms)).Humanize(false)
}
