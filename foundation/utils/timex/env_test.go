// File: env_test.go
// Title: Engine Environment Tests
// Description: Shared fixtures and tests for Env construction and the zero
//              Instant.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"testing"
	"time"

	"github.com/ersinkoc/TimeKit/foundation/core/config"
	"github.com/ersinkoc/TimeKit/foundation/core/i18n"
)

// fixedNow is a Friday
var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

var testZones = FixedZones{
	"UTC":              0,
	"Europe/Istanbul":  180,
	"America/New_York": -300,
	"Asia/Kolkata":     330,
}

// newTestEnv returns a deterministic environment: UTC host, fixed clock,
// fixed zones and a fresh store the test may mutate.
func newTestEnv(t *testing.T, opts ...Option) (*Env, *config.Store) {
	t.Helper()
	store := config.NewStore()
	base := []Option{
		WithSettings(store),
		WithLocales(i18n.NewRegistry()),
		WithZones(testZones),
		WithClock(func() time.Time { return fixedNow }),
		WithHostLocation(time.UTC),
	}
	return NewEnv(append(base, opts...)...), store
}

func mustParse(t *testing.T, env *Env, s string) Instant {
	t.Helper()
	i := env.New(String(s))
	if !i.IsValid() {
		t.Fatalf("New(String(%q)) is invalid", s)
	}
	return i
}

func TestNewEnvDefaults(t *testing.T) {
	env := NewEnv()
	if env.Settings() == nil || env.Locales() == nil || env.Zones() == nil {
		t.Fatal("NewEnv() left a collaborator unset")
	}
	if env.Location() != time.Local {
		t.Errorf("Location() = %v, want time.Local", env.Location())
	}
	if _, ok := env.Zones().(*HostZones); !ok {
		t.Errorf("Zones() = %T, want *HostZones", env.Zones())
	}
}

func TestEnvReadsSettingsOnEachCall(t *testing.T) {
	env, store := newTestEnv(t)
	friday := mustParse(t, env, "2024-03-15T10:00:00Z")

	if got := friday.StartOf(Week).Date(); got != 11 {
		t.Errorf("StartOf(Week).Date() with Monday start = %d, want 11", got)
	}
	if err := store.SetWeekStart(0); err != nil {
		t.Fatalf("SetWeekStart() error = %v", err)
	}
	if got := friday.StartOf(Week).Date(); got != 10 {
		t.Errorf("StartOf(Week).Date() with Sunday start = %d, want 10", got)
	}
}

func TestZeroInstant(t *testing.T) {
	var zero Instant
	if zero.IsValid() {
		t.Fatal("zero Instant is valid")
	}
	if got := zero.Year(); got != InvalidNumber {
		t.Errorf("Year() = %d, want InvalidNumber", got)
	}
	if got := zero.Format("YYYY"); got != InvalidDate {
		t.Errorf("Format() = %q, want %q", got, InvalidDate)
	}
	if got := zero.Add(1, Day); got.IsValid() {
		t.Error("Add() on zero Instant returned a valid value")
	}
}
