// File: settings.go
// Title: Settings Model
// Description: The typed settings model, its defaults and deep copying.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package config

import "github.com/ersinkoc/TimeKit/foundation/utils/mapx"

// FormatKind selects one of the default format patterns
type FormatKind int

const (
	// FormatDate is the default pattern for dates
	FormatDate FormatKind = iota
	// FormatTime is the default pattern for times of day
	FormatTime
	// FormatDateTime is the default pattern for full timestamps
	FormatDateTime
)

// String returns the settings key of the kind
func (k FormatKind) String() string {
	switch k {
	case FormatDate:
		return "date"
	case FormatTime:
		return "time"
	case FormatDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Default values
const (
	DefaultLocale                = "en"
	DefaultWeekStart             = 1
	DefaultFirstWeekContainsDate = 4
	DefaultDateFormat            = "YYYY-MM-DD"
	DefaultTimeFormat            = "HH:mm:ss"
	DefaultDateTimeFormat        = "YYYY-MM-DD HH:mm:ss"
)

// Thresholds are the relative-time cut-over points. A span below Second
// seconds renders in seconds, below Minute minutes in minutes, and so on;
// Month is counted in average months.
type Thresholds struct {
	Second int `toml:"second" yaml:"second"`
	Minute int `toml:"minute" yaml:"minute"`
	Hour   int `toml:"hour" yaml:"hour"`
	Day    int `toml:"day" yaml:"day"`
	Month  int `toml:"month" yaml:"month"`
}

// DefaultThresholds returns 45 s, 45 min, 22 h, 26 d, 11 months
func DefaultThresholds() Thresholds {
	return Thresholds{Second: 45, Minute: 45, Hour: 22, Day: 26, Month: 11}
}

// Formats are the default patterns used when no pattern is given
type Formats struct {
	Date     string `toml:"date" yaml:"date"`
	Time     string `toml:"time" yaml:"time"`
	DateTime string `toml:"datetime" yaml:"datetime"`
}

// Get returns the pattern for kind; unknown kinds get the datetime pattern
func (f Formats) Get(kind FormatKind) string {
	switch kind {
	case FormatDate:
		return f.Date
	case FormatTime:
		return f.Time
	default:
		return f.DateTime
	}
}

// Settings is the complete configuration
type Settings struct {
	Locale                string     `toml:"locale" yaml:"locale"`
	Timezone              string     `toml:"timezone" yaml:"timezone"`
	WeekStart             int        `toml:"week_start" yaml:"week_start"`
	FirstWeekContainsDate int        `toml:"first_week_contains_date" yaml:"first_week_contains_date"`
	Formats               Formats    `toml:"formats" yaml:"formats"`
	Thresholds            Thresholds `toml:"thresholds" yaml:"thresholds"`

	// Labels override relative-time labels by key ("future", "past", "s",
	// "ss", ...). Empty means the locale's labels apply.
	Labels map[string]string `toml:"labels" yaml:"labels"`
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		Locale:                DefaultLocale,
		WeekStart:             DefaultWeekStart,
		FirstWeekContainsDate: DefaultFirstWeekContainsDate,
		Formats: Formats{
			Date:     DefaultDateFormat,
			Time:     DefaultTimeFormat,
			DateTime: DefaultDateTimeFormat,
		},
		Thresholds: DefaultThresholds(),
	}
}

// Clone returns a deep copy
func (s Settings) Clone() Settings {
	s.Labels = mapx.Clone(s.Labels)
	return s
}
