// File: relative.go
// Title: Relative Time
// Description: Turns a span into "5 minutes", "in a day" or "3 years ago"
//              using the configured thresholds and labels.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"math"
	"strings"

	"github.com/ersinkoc/TimeKit/foundation/core/config"
	"github.com/ersinkoc/TimeKit/foundation/core/i18n"
)

// averageMonthDays scales the month threshold
const averageMonthDays = 30.44

// relativeUnit picks the unit that describes absMs. The week step has a
// fixed 7-day limit, so with a day threshold above 7 it is never chosen.
func relativeUnit(absMs float64, t config.Thresholds) Unit {
	switch {
	case absMs < float64(t.Second)*float64(MillisPerSecond):
		return Second
	case absMs < float64(t.Minute)*float64(MillisPerMinute):
		return Minute
	case absMs < float64(t.Hour)*float64(MillisPerHour):
		return Hour
	case absMs < float64(t.Day)*float64(MillisPerDay):
		return Day
	case absMs < 7*float64(MillisPerDay):
		return Week
	case absMs < float64(t.Month)*averageMonthDays*float64(MillisPerDay):
		return Month
	}
	return Year
}

var relativeKeys = map[Unit][2]string{
	Second: {"s", "ss"},
	Minute: {"m", "mm"},
	Hour:   {"h", "hh"},
	Day:    {"d", "dd"},
	Week:   {"w", "ww"},
	Month:  {"M", "MM"},
	Year:   {"y", "yy"},
}

// relativeLabels returns configured overrides, else the default locale's
func (e *Env) relativeLabels() *i18n.RelativeLabels {
	if labels := e.settings.RelativeLabels(); labels != nil {
		return labels
	}
	return e.locales.RelativeLabels(e.locale())
}

// FormatRelative renders a span of absMs milliseconds. isPast selects the
// past template; withoutSuffix drops the future/past wrapping. A NaN or
// infinite span renders as InvalidDurationText.
func (e *Env) FormatRelative(absMs float64, isPast, withoutSuffix bool) string {
	if math.IsNaN(absMs) || math.IsInf(absMs, 0) {
		return InvalidDurationText
	}
	absMs = math.Abs(absMs)
	unit := relativeUnit(absMs, e.settings.Thresholds())
	value := int(math.Round(absMs / float64(unit.Milliseconds())))

	key := relativeKeys[unit][1]
	if value == 1 {
		key = relativeKeys[unit][0]
	}

	labels := e.relativeLabels()
	text := labels.Unit(key).Render(value, withoutSuffix, key, !isPast)
	if withoutSuffix {
		return text
	}

	wrap := labels.Future
	if isPast {
		wrap = labels.Past
	}
	return strings.Replace(wrap.Render(value, withoutSuffix, key, !isPast), "%s", text, 1)
}

func (i Instant) relativeTo(other Input, diff func(a, b int64) int64, withoutSuffix bool) string {
	env := i.environment()
	o := env.New(other)
	if !i.valid || !o.valid {
		return InvalidDate
	}
	d := diff(i.ms, o.ms)
	return env.FormatRelative(math.Abs(float64(d)), d < 0, withoutSuffix)
}

// From describes the instant relative to other: "in 5 minutes" when the
// instant is later, "5 minutes ago" when earlier.
func (i Instant) From(other Input, withoutSuffix bool) string {
	return i.relativeTo(other, func(a, b int64) int64 { return a - b }, withoutSuffix)
}

// To describes other relative to the instant
func (i Instant) To(other Input, withoutSuffix bool) string {
	return i.relativeTo(other, func(a, b int64) int64 { return b - a }, withoutSuffix)
}

// FromNow is From the current time
func (i Instant) FromNow(withoutSuffix bool) string {
	return i.From(i.environment().Now(), withoutSuffix)
}

// ToNow is To the current time
func (i Instant) ToNow(withoutSuffix bool) string {
	return i.To(i.environment().Now(), withoutSuffix)
}
