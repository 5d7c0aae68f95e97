// File: format.go
// Title: Pattern Formatter
// Description: The token scanner shared by Instant and Duration formatting
//              and the Instant token table. Bracketed text is literal, a run
//              of letters is looked up as a whole and unknown runs pass
//              through unchanged.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ersinkoc/TimeKit/foundation/core/i18n"
	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

var tokenPattern = regexp.MustCompile(`\[([^\]]+)\]|([a-zA-Z]+)`)

var longDateAliases = func() map[string]bool {
	set := make(map[string]bool, len(i18n.LongDateKeys))
	for _, key := range i18n.LongDateKeys {
		set[key] = true
	}
	return set
}()

// expandTokens rewrites pattern, replacing each letter run for which
// resolve reports true and copying everything else.
func expandTokens(pattern string, resolve func(token string) (string, bool)) string {
	var b strings.Builder
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(pattern[last:m[0]])
		last = m[1]
		if m[2] >= 0 {
			b.WriteString(pattern[m[2]:m[3]])
			continue
		}
		token := pattern[m[4]:m[5]]
		if out, ok := resolve(token); ok {
			b.WriteString(out)
		} else {
			b.WriteString(token)
		}
	}
	b.WriteString(pattern[last:])
	return b.String()
}

// instantFormat is the state one Format call works on
type instantFormat struct {
	i       Instant
	c       Civil
	locale  string
	locales Locales
}

type instantToken func(f *instantFormat) string

func itoa(n int) string { return strconv.Itoa(n) }

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

func lastTwo(s string) string {
	if len(s) <= 2 {
		return s
	}
	return s[len(s)-2:]
}

var instantTokens = map[string]instantToken{
	"YYYY": func(f *instantFormat) string { return itoa(f.c.Year) },
	"YY":   func(f *instantFormat) string { return lastTwo(itoa(f.c.Year)) },

	"MMMM": func(f *instantFormat) string { return f.locales.MonthName(f.locale, f.c.Month-1) },
	"MMM":  func(f *instantFormat) string { return f.locales.MonthNameShort(f.locale, f.c.Month-1) },
	"MM":   func(f *instantFormat) string { return stringx.ZeroPad(f.c.Month, 2) },
	"M":    func(f *instantFormat) string { return itoa(f.c.Month) },

	"DD": func(f *instantFormat) string { return stringx.ZeroPad(f.c.Day, 2) },
	"D":  func(f *instantFormat) string { return itoa(f.c.Day) },
	"Do": func(f *instantFormat) string { return f.locales.Ordinal(f.locale, f.c.Day) },

	"dddd": func(f *instantFormat) string { return f.locales.WeekdayName(f.locale, f.c.Weekday()) },
	"ddd":  func(f *instantFormat) string { return f.locales.WeekdayNameShort(f.locale, f.c.Weekday()) },
	"dd":   func(f *instantFormat) string { return f.locales.WeekdayNameMin(f.locale, f.c.Weekday()) },
	"d":    func(f *instantFormat) string { return itoa(f.c.Weekday()) },
	"E": func(f *instantFormat) string {
		if wd := f.c.Weekday(); wd != 0 {
			return itoa(wd)
		}
		return "7"
	},

	"HH": func(f *instantFormat) string { return stringx.ZeroPad(f.c.Hour, 2) },
	"H":  func(f *instantFormat) string { return itoa(f.c.Hour) },
	"hh": func(f *instantFormat) string { return stringx.ZeroPad(hour12(f.c.Hour), 2) },
	"h":  func(f *instantFormat) string { return itoa(hour12(f.c.Hour)) },

	"mm": func(f *instantFormat) string { return stringx.ZeroPad(f.c.Minute, 2) },
	"m":  func(f *instantFormat) string { return itoa(f.c.Minute) },
	"ss": func(f *instantFormat) string { return stringx.ZeroPad(f.c.Second, 2) },
	"s":  func(f *instantFormat) string { return itoa(f.c.Second) },

	"SSS": func(f *instantFormat) string { return stringx.ZeroPad(f.c.Millisecond, 3) },
	"SS":  func(f *instantFormat) string { return stringx.ZeroPad(f.c.Millisecond/10, 2) },
	"S":   func(f *instantFormat) string { return itoa(f.c.Millisecond / 100) },

	"A": func(f *instantFormat) string {
		if f.c.Hour < 12 {
			return "AM"
		}
		return "PM"
	},
	"a": func(f *instantFormat) string {
		if f.c.Hour < 12 {
			return "am"
		}
		return "pm"
	},

	"Z":   func(f *instantFormat) string { return FormatOffset(f.i.offset, true) },
	"ZZ":  func(f *instantFormat) string { return FormatOffset(f.i.offset, false) },
	"z":   func(f *instantFormat) string { return f.i.Timezone() },
	"zzz": func(f *instantFormat) string { return f.i.Timezone() },

	"X": func(f *instantFormat) string { return strconv.FormatInt(f.i.Unix(), 10) },
	"x": func(f *instantFormat) string { return strconv.FormatInt(f.i.ms, 10) },

	"Q":  func(f *instantFormat) string { return itoa(f.i.Quarter()) },
	"Qo": func(f *instantFormat) string { return f.locales.Ordinal(f.locale, f.i.Quarter()) },

	"W":  func(f *instantFormat) string { return itoa(f.i.WeekOfYear()) },
	"WW": func(f *instantFormat) string { return stringx.ZeroPad(f.i.WeekOfYear(), 2) },
	"Wo": func(f *instantFormat) string { return f.locales.Ordinal(f.locale, f.i.WeekOfYear()) },

	"DDD":  func(f *instantFormat) string { return itoa(DayOfYear(f.c.Year, f.c.Month, f.c.Day)) },
	"DDDD": func(f *instantFormat) string { return stringx.ZeroPad(DayOfYear(f.c.Year, f.c.Month, f.c.Day), 3) },
}

// Format renders the instant with pattern in the configured locale. An
// empty pattern uses the configured datetime pattern. Long-date aliases
// (LT, LTS, L, LL, LLL, LLLL) expand to the locale's patterns.
func (i Instant) Format(pattern string) string {
	return i.FormatLocale(i.environment().locale(), pattern)
}

// FormatAs renders the instant with the configured pattern of kind
func (i Instant) FormatAs(kind FormatKind) string {
	return i.Format(i.environment().settings.DefaultFormat(kind))
}

// FormatLocale renders the instant with pattern using the names of locale
func (i Instant) FormatLocale(locale, pattern string) string {
	if !i.valid {
		return InvalidDate
	}
	if pattern == "" {
		pattern = i.environment().settings.DefaultFormat(FormatDateTime)
	}
	return i.formatIn(locale, pattern)
}

func (i Instant) formatIn(locale, pattern string) string {
	f := &instantFormat{i: i, c: i.civil(), locale: locale, locales: i.environment().locales}
	return f.render(pattern, true)
}

// render expands pattern. Long-date aliases are resolved one level deep.
func (f *instantFormat) render(pattern string, aliases bool) string {
	return expandTokens(pattern, func(token string) (string, bool) {
		if fn, ok := instantTokens[token]; ok {
			return fn(f), true
		}
		if aliases && longDateAliases[token] {
			if expanded, ok := f.locales.LongDateFormat(f.locale, token); ok {
				return f.render(expanded, false), true
			}
		}
		return "", false
	})
}
