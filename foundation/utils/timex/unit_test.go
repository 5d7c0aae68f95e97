// File: unit_test.go
// Title: Time Unit Tests
// Description: Alias resolution and unit lengths.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import "testing"

func TestParseUnit(t *testing.T) {
	tests := []struct {
		alias  string
		want   Unit
		wantOk bool
	}{
		{"y", Year, true},
		{"years", Year, true},
		{"M", Month, true},
		{"months", Month, true},
		{"w", Week, true},
		{"d", Day, true},
		{"date", Day, true},
		{"h", Hour, true},
		{"m", Minute, true},
		{"minutes", Minute, true},
		{"s", Second, true},
		{"ms", Millisecond, true},
		{"milliseconds", Millisecond, true},
		{"Y", 0, false},
		{"mo", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, ok := ParseUnit(tt.alias)
			if ok != tt.wantOk {
				t.Fatalf("ParseUnit(%q) ok = %v, want %v", tt.alias, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.alias, got, tt.want)
			}
		})
	}
}

func TestUnitMilliseconds(t *testing.T) {
	tests := []struct {
		unit Unit
		want int64
	}{
		{Year, 31557600000},
		{Month, 2629800000},
		{Week, 604800000},
		{Day, 86400000},
		{Hour, 3600000},
		{Minute, 60000},
		{Second, 1000},
		{Millisecond, 1},
		{Unit(42), 0},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			if got := tt.unit.Milliseconds(); got != tt.want {
				t.Errorf("%v.Milliseconds() = %d, want %d", tt.unit, got, tt.want)
			}
		})
	}
}

func TestUnitString(t *testing.T) {
	if got := Month.String(); got != "month" {
		t.Errorf("Month.String() = %q, want %q", got, "month")
	}
	if got := Unit(-1).String(); got != "unknown" {
		t.Errorf("Unit(-1).String() = %q, want %q", got, "unknown")
	}
	if len(Units) != 8 || Units[0] != Year || Units[7] != Millisecond {
		t.Errorf("Units = %v, want Year..Millisecond", Units)
	}
}
