// Package timex is the TimeKit temporal value engine.
//
// Package: timex
// Title: Immutable Instants, Durations and Relative Time
// Description: An Instant is a millisecond timestamp plus the UTC offset and
//              optional zone name it is viewed in. A Duration is a signed span
//              in milliseconds. Both are immutable values: every operation
//              returns a new value, and invalid input produces an invalid
//              value instead of an error. Formatting, relative-time
//              humanization and week rules read their configuration from the
//              Env that created the value.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Instant/Duration engine replacing the time.Time helper collection
//
// Package Overview:
//
// # Environment
//
// An Env bundles the collaborators the engine consults on each call:
//   - Settings: default locale, week start, first-week rule, default
//     patterns, relative-time thresholds and label overrides (*config.Store)
//   - Locales: month and weekday names, ordinals, relative labels and
//     long-date aliases (*i18n.Registry)
//   - ZoneResolver: IANA zone lookups (HostZones, or FixedZones in tests)
//   - a clock and the host location used for local-time interpretation
//
// # Creating values
//
//	env := timex.NewEnv()
//	t := env.New(timex.String("2021-06-15T10:30:00+03:00"))
//	u := env.New(timex.Timestamp(1609459200000))
//	c := env.New(timex.Components{timex.Year: 2024, timex.Month: 2, timex.Day: 29})
//
// Strings are parsed as ISO 8601, then D/M/YYYY (day-first when the first
// group exceeds 12), then "Month D, YYYY". Anything else is invalid.
//
// # Invalid values
//
// Integer getters of an invalid Instant return InvalidNumber, float results
// are NaN, predicates are false and strings render as "Invalid Date" or
// "Invalid Duration". Invalidity propagates through every operation.
//
// # Arithmetic
//
// Add and Subtract use fixed unit lengths (a month is 30.44 days, a year
// 365.25 days). AddCalendar moves by calendar months and years and clamps the
// day of month:
//
//	t.Add(1, timex.Month)          // +2,629,800,000 ms
//	t.AddCalendar(1, timex.Month)  // 2024-01-31 -> 2024-02-29
//
// # Formatting
//
//	t.Format("dddd, MMMM Do YYYY [at] HH:mm Z")
//	t.FormatLocale("tr", "LLLL")
//	env.Duration(timex.ISODuration("PT1H30M")).Format("HH:mm:ss")
//	t.FromNow(false) // "in 5 minutes"
package timex
