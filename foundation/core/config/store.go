// File: store.go
// Title: Settings Store
// Description: A concurrency-safe holder of the current settings. The
//              temporal engine reads through it on every call, so setters,
//              Reset and file reloads are seen by values created earlier.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package config

import (
	"sync"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
	"github.com/ersinkoc/TimeKit/foundation/core/i18n"
	tklog "github.com/ersinkoc/TimeKit/foundation/core/log"
	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

// ChangeHandler is called after the settings changed
type ChangeHandler func(oldSettings, newSettings Settings)

// Store holds the current settings
type Store struct {
	mu       sync.RWMutex
	current  Settings
	labels   *i18n.RelativeLabels
	filePath string
	options  LoadOptions
	handlers []ChangeHandler
	logger   *tklog.Logger
}

// NewStore creates a store holding the default settings
func NewStore() *Store {
	return &Store{current: Defaults(), logger: tklog.Discard()}
}

// NewStoreWith creates a store holding settings, which must be valid
func NewStoreWith(settings Settings) (*Store, error) {
	if err := Validate(settings); err != nil {
		return nil, err
	}
	s := NewStore()
	s.current = settings.Clone()
	s.labels = buildLabels(settings.Labels)
	return s, nil
}

// Open loads filePath into a new store that can later Reload or Watch it
func Open(filePath string, options LoadOptions) (*Store, error) {
	settings, err := LoadWithOptions(filePath, options)
	if err != nil {
		return nil, err
	}
	s, err := NewStoreWith(settings)
	if err != nil {
		return nil, err
	}
	s.filePath = filePath
	s.options = options
	return s, nil
}

// WithLogger sets the logger used for reloads and watch events
func (s *Store) WithLogger(logger *tklog.Logger) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if logger != nil {
		s.logger = logger.WithName("config")
	}
	return s
}

// FilePath returns the backing file, or "" for in-memory stores
func (s *Store) FilePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filePath
}

// Snapshot returns a copy of the current settings
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// OnChange registers a handler called after every successful change
func (s *Store) OnChange(handler ChangeHandler) {
	if handler == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// DefaultLocale returns the configured locale
func (s *Store) DefaultLocale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stringx.FirstNonBlank(s.current.Locale, DefaultLocale)
}

// Timezone returns the configured default time zone, or ""
func (s *Store) Timezone() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Timezone
}

// WeekStart returns the first day of the week (0 = Sunday)
func (s *Store) WeekStart() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.WeekStart
}

// FirstWeekContainsDate returns the January day that the first week of a
// year must contain
func (s *Store) FirstWeekContainsDate() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.FirstWeekContainsDate
}

// DefaultFormat returns the default pattern for kind
func (s *Store) DefaultFormat(kind FormatKind) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pattern := s.current.Formats.Get(kind); pattern != "" {
		return pattern
	}
	return Defaults().Formats.Get(kind)
}

// Thresholds returns the relative-time thresholds
func (s *Store) Thresholds() Thresholds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Thresholds
}

// RelativeLabels returns the configured label overrides merged over the
// English defaults, or nil when no labels are configured.
func (s *Store) RelativeLabels() *i18n.RelativeLabels {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labels
}

// Configure applies update to a copy of the settings, validates the result
// and swaps it in. On error nothing changes.
func (s *Store) Configure(update func(*Settings)) error {
	s.mu.Lock()
	next := s.current.Clone()
	update(&next)
	if err := Validate(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.swapLocked(next)
	return nil
}

// SetLocale sets the default locale
func (s *Store) SetLocale(locale string) error {
	return s.Configure(func(c *Settings) { c.Locale = locale })
}

// SetTimezone sets the default time zone name
func (s *Store) SetTimezone(zone string) error {
	return s.Configure(func(c *Settings) { c.Timezone = zone })
}

// SetWeekStart sets the first day of the week (0 = Sunday ... 6 = Saturday)
func (s *Store) SetWeekStart(weekday int) error {
	return s.Configure(func(c *Settings) { c.WeekStart = weekday })
}

// SetFirstWeekContainsDate sets the first-week rule (1-7)
func (s *Store) SetFirstWeekContainsDate(day int) error {
	return s.Configure(func(c *Settings) { c.FirstWeekContainsDate = day })
}

// SetFormat sets the default pattern for kind
func (s *Store) SetFormat(kind FormatKind, pattern string) error {
	return s.Configure(func(c *Settings) {
		switch kind {
		case FormatDate:
			c.Formats.Date = pattern
		case FormatTime:
			c.Formats.Time = pattern
		default:
			c.Formats.DateTime = pattern
		}
	})
}

// SetThresholds merges thresholds into the current ones; zero fields keep
// their current value.
func (s *Store) SetThresholds(thresholds Thresholds) error {
	return s.Configure(func(c *Settings) {
		merge := func(dst *int, v int) {
			if v != 0 {
				*dst = v
			}
		}
		merge(&c.Thresholds.Second, thresholds.Second)
		merge(&c.Thresholds.Minute, thresholds.Minute)
		merge(&c.Thresholds.Hour, thresholds.Hour)
		merge(&c.Thresholds.Day, thresholds.Day)
		merge(&c.Thresholds.Month, thresholds.Month)
	})
}

// SetLabels replaces the relative-label overrides; nil removes them
func (s *Store) SetLabels(labels map[string]string) error {
	return s.Configure(func(c *Settings) {
		c.Labels = nil
		if len(labels) > 0 {
			c.Labels = make(map[string]string, len(labels))
			for k, v := range labels {
				c.Labels[k] = v
			}
		}
	})
}

// Reset restores the built-in defaults
func (s *Store) Reset() {
	s.mu.Lock()
	s.swapLocked(Defaults())
}

// Reload re-reads the backing file. A failed reload keeps the current
// settings.
func (s *Store) Reload() error {
	s.mu.RLock()
	filePath, options := s.filePath, s.options
	s.mu.RUnlock()

	if filePath == "" {
		return tkerror.New("store has no backing file").
			WithCode(tkerror.CodeConfigNotFound).
			WithOperation("config.Store.Reload")
	}

	settings, err := LoadWithOptions(filePath, options)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.swapLocked(settings)
	return nil
}

// swapLocked installs next, releases the lock and notifies handlers
func (s *Store) swapLocked(next Settings) {
	old := s.current
	s.current = next
	s.labels = buildLabels(next.Labels)
	handlers := make([]ChangeHandler, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, handler := range handlers {
		handler(old.Clone(), next.Clone())
	}
}

func buildLabels(values map[string]string) *i18n.RelativeLabels {
	if len(values) == 0 {
		return nil
	}
	labels, err := i18n.LabelsFromMap(values, i18n.EnglishLabels())
	if err != nil {
		return nil
	}
	return labels
}
