// File: validate_test.go
// Title: Validation Helper Tests
// Description: Range checks and UTC offset parsing and rendering.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import "testing"

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             bool
	}{
		{"leap day", 2024, 2, 29, true},
		{"missing leap day", 2023, 2, 29, false},
		{"April 31", 2023, 4, 31, false},
		{"month 13", 2023, 13, 1, false},
		{"day zero", 2023, 1, 0, false},
		{"December 31", 2023, 12, 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDate(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("IsValidDate(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		h, m, s, ms int
		want        bool
	}{
		{0, 0, 0, 0, true},
		{23, 59, 59, 999, true},
		{24, 0, 0, 0, false},
		{12, 60, 0, 0, false},
		{12, 0, 60, 0, false},
		{12, 0, 0, 1000, false},
		{-1, 0, 0, 0, false},
	}

	for _, tt := range tests {
		if got := IsValidTime(tt.h, tt.m, tt.s, tt.ms); got != tt.want {
			t.Errorf("IsValidTime(%d, %d, %d, %d) = %v, want %v", tt.h, tt.m, tt.s, tt.ms, got, tt.want)
		}
	}
}

func TestOffsetAndWeekStartRanges(t *testing.T) {
	offsets := map[int]bool{-721: false, -720: true, 0: true, 840: true, 841: false}
	for minutes, want := range offsets {
		if got := IsValidOffset(minutes); got != want {
			t.Errorf("IsValidOffset(%d) = %v, want %v", minutes, got, want)
		}
	}
	weekStarts := map[int]bool{-1: false, 0: true, 6: true, 7: false}
	for weekday, want := range weekStarts {
		if got := IsValidWeekStart(weekday); got != want {
			t.Errorf("IsValidWeekStart(%d) = %v, want %v", weekday, got, want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOk bool
	}{
		{"+03:00", 180, true},
		{"+0300", 180, true},
		{"03:00", 180, true},
		{"-03", -180, true},
		{"-05:30", -330, true},
		{"+5:45", 345, true},
		{"+3:0", 0, false},
		{"+05:59", 359, true},
		{"+05:60", 0, false},
		{"+05:75", 0, false},
		{"+0575", 0, false},
		{"UTC", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseOffset(tt.input)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("ParseOffset(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		minutes int
		colon   bool
		want    string
	}{
		{0, true, "+00:00"},
		{180, true, "+03:00"},
		{180, false, "+0300"},
		{-330, true, "-05:30"},
		{-330, false, "-0530"},
		{840, false, "+1400"},
	}

	for _, tt := range tests {
		if got := FormatOffset(tt.minutes, tt.colon); got != tt.want {
			t.Errorf("FormatOffset(%d, %v) = %q, want %q", tt.minutes, tt.colon, got, tt.want)
		}
	}
}
