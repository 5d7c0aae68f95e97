// File: registry.go
// Title: Locale Registry
// Description: Caller-owned registry of locales with lenient lookups. Region
//              tags resolve to their base language and anything unknown falls
//              back to English.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package i18n

import (
	"sort"
	"sync"

	"golang.org/x/text/language"

	tklog "github.com/ersinkoc/TimeKit/foundation/core/log"
)

// DefaultLocale is the fallback for unknown locales
const DefaultLocale = "en"

// Registry holds the known locales. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	locales map[string]*Locale
	order   []string
	matcher language.Matcher
	logger  *tklog.Logger
}

// NewRegistry creates a registry with the built-in English and Turkish locales
func NewRegistry() *Registry {
	r := &Registry{
		locales: make(map[string]*Locale),
		logger:  tklog.Discard(),
	}
	r.put(English())
	r.put(Turkish())
	return r
}

// WithLogger sets the logger used while loading locale files
func (r *Registry) WithLogger(logger *tklog.Logger) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger != nil {
		r.logger = logger.WithName("i18n")
	}
	return r
}

// Register validates and adds a locale, replacing any locale of the same name
func (r *Registry) Register(locale *Locale) error {
	if err := locale.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(locale)
	return nil
}

// put stores locale; callers hold the write lock
func (r *Registry) put(locale *Locale) {
	name := NormalizeLocale(locale.Name)
	if _, exists := r.locales[name]; !exists {
		r.order = append(r.order, name)
	}
	r.locales[name] = locale

	tags := make([]language.Tag, 0, len(r.order))
	for _, n := range r.order {
		tags = append(tags, language.MustParse(n))
	}
	r.matcher = language.NewMatcher(tags)
}

// Get returns the locale registered under name or its base language
func (r *Registry) Get(name string) (*Locale, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.find(name)
}

func (r *Registry) find(name string) (*Locale, bool) {
	normalized := NormalizeLocale(name)
	if normalized == "" {
		return nil, false
	}
	if loc, ok := r.locales[normalized]; ok {
		return loc, true
	}
	if loc, ok := r.locales[BaseLanguage(normalized)]; ok {
		return loc, true
	}
	return nil, false
}

// lookup returns the locale for name, or English
func (r *Registry) lookup(name string) *Locale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if loc, ok := r.find(name); ok {
		return loc
	}
	if loc, ok := r.locales[DefaultLocale]; ok {
		return loc
	}
	return English()
}

// Has reports whether name resolves to a registered locale
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the registered locale names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Detect picks the best registered locale for an Accept-Language header
// value, falling back to English.
func (r *Registry) Detect(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(r.order) {
		return DefaultLocale
	}
	return r.order[index]
}

func pick(table []string, index int) string {
	if index < 0 || index >= len(table) {
		return ""
	}
	return table[index]
}

// MonthName returns the full name of month (0-11)
func (r *Registry) MonthName(locale string, month int) string {
	return pick(r.lookup(locale).Months[:], month)
}

// MonthNameShort returns the abbreviated name of month (0-11)
func (r *Registry) MonthNameShort(locale string, month int) string {
	return pick(r.lookup(locale).MonthsShort[:], month)
}

// WeekdayName returns the full name of weekday (0 = Sunday)
func (r *Registry) WeekdayName(locale string, weekday int) string {
	return pick(r.lookup(locale).Weekdays[:], weekday)
}

// WeekdayNameShort returns the abbreviated name of weekday (0 = Sunday)
func (r *Registry) WeekdayNameShort(locale string, weekday int) string {
	return pick(r.lookup(locale).WeekdaysShort[:], weekday)
}

// WeekdayNameMin returns the two-letter name of weekday (0 = Sunday)
func (r *Registry) WeekdayNameMin(locale string, weekday int) string {
	return pick(r.lookup(locale).WeekdaysMin[:], weekday)
}

// Ordinal renders n as an ordinal in locale
func (r *Registry) Ordinal(locale string, n int) string {
	loc := r.lookup(locale)
	if loc.Ordinal == nil {
		return EnglishOrdinal(n)
	}
	return loc.Ordinal(n)
}

// RelativeLabels returns the relative-time labels of locale
func (r *Registry) RelativeLabels(locale string) *RelativeLabels {
	loc := r.lookup(locale)
	if loc.Relative == nil {
		return EnglishLabels()
	}
	return loc.Relative
}

// LongDateFormat returns the pattern behind a long-date alias such as "LL"
func (r *Registry) LongDateFormat(locale string, key string) (string, bool) {
	loc := r.lookup(locale)
	pattern, ok := loc.Formats[key]
	if !ok {
		pattern, ok = English().Formats[key]
	}
	return pattern, ok
}
