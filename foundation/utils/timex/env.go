// File: env.go
// Title: Engine Environment
// Description: The collaborators every Instant and Duration consults: the
//              settings store, the locale registry, the zone resolver, the
//              clock and the host location.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"time"

	"github.com/ersinkoc/TimeKit/foundation/core/config"
	"github.com/ersinkoc/TimeKit/foundation/core/i18n"
)

// FormatKind selects one of the configured default patterns
type FormatKind = config.FormatKind

const (
	FormatDate     = config.FormatDate
	FormatTime     = config.FormatTime
	FormatDateTime = config.FormatDateTime
)

// Settings is the configuration read by the engine. *config.Store
// implements it.
type Settings interface {
	DefaultLocale() string
	WeekStart() int
	FirstWeekContainsDate() int
	DefaultFormat(kind FormatKind) string
	Thresholds() config.Thresholds
	// RelativeLabels returns configured label overrides, or nil to use the
	// labels of the default locale.
	RelativeLabels() *i18n.RelativeLabels
}

// Locales provides locale-dependent names. Unknown locales fall back to
// English and out-of-range indexes yield "". *i18n.Registry implements it.
type Locales interface {
	MonthName(locale string, month int) string
	MonthNameShort(locale string, month int) string
	WeekdayName(locale string, weekday int) string
	WeekdayNameShort(locale string, weekday int) string
	WeekdayNameMin(locale string, weekday int) string
	Ordinal(locale string, n int) string
	RelativeLabels(locale string) *i18n.RelativeLabels
	LongDateFormat(locale string, key string) (string, bool)
}

// ZoneResolver maps an IANA zone and an instant to the civil fields and the
// UTC offset in minutes observed there.
type ZoneResolver interface {
	Resolve(zone string, ms int64) (Civil, int, error)
}

// Env carries the injected configuration of the engine
type Env struct {
	settings Settings
	locales  Locales
	zones    ZoneResolver
	clock    func() time.Time
	host     *time.Location
}

// Option configures an Env
type Option func(*Env)

// WithSettings sets the configuration source
func WithSettings(settings Settings) Option {
	return func(e *Env) { e.settings = settings }
}

// WithLocales sets the locale registry
func WithLocales(locales Locales) Option {
	return func(e *Env) { e.locales = locales }
}

// WithZones sets the zone resolver
func WithZones(zones ZoneResolver) Option {
	return func(e *Env) { e.zones = zones }
}

// WithClock sets the source of the current time
func WithClock(clock func() time.Time) Option {
	return func(e *Env) { e.clock = clock }
}

// WithHostLocation sets the location that zone-less input is interpreted in
func WithHostLocation(loc *time.Location) Option {
	return func(e *Env) { e.host = loc }
}

// NewEnv creates an environment. Unset collaborators default to a fresh
// config.Store, a fresh i18n.Registry, HostZones, time.Now and time.Local.
func NewEnv(opts ...Option) *Env {
	e := &Env{}
	for _, opt := range opts {
		opt(e)
	}
	if e.settings == nil {
		e.settings = config.NewStore()
	}
	if e.locales == nil {
		e.locales = i18n.NewRegistry()
	}
	if e.zones == nil {
		e.zones = NewHostZones()
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.host == nil {
		e.host = time.Local
	}
	return e
}

// fallbackEnv serves values that were not created through an Env, such as
// the zero Instant.
var fallbackEnv = NewEnv()

// Settings returns the configuration source
func (e *Env) Settings() Settings { return e.settings }

// Locales returns the locale registry
func (e *Env) Locales() Locales { return e.locales }

// Zones returns the zone resolver
func (e *Env) Zones() ZoneResolver { return e.zones }

// Location returns the host location
func (e *Env) Location() *time.Location { return e.host }

// hostOffset returns the host UTC offset in minutes at ms
func (e *Env) hostOffset(ms int64) int {
	_, seconds := time.UnixMilli(ms).In(e.host).Zone()
	return seconds / 60
}

func (e *Env) locale() string {
	return e.settings.DefaultLocale()
}
