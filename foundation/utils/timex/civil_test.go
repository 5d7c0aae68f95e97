// File: civil_test.go
// Title: Calendar Math Tests
// Description: Leap years, month lengths, week numbering and day of year.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import "testing"

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInYearMatchesLeapRule(t *testing.T) {
	for year := 1890; year <= 2110; year++ {
		want := 365
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			want = 366
		}
		if got := DaysInYear(year); got != want {
			t.Errorf("DaysInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"leap February", 2024, 2, 29},
		{"century February", 1900, 2, 28},
		{"400-year February", 2000, 2, 29},
		{"January", 2023, 1, 31},
		{"April", 2023, 4, 30},
		{"December", 2023, 12, 31},
		{"out of range", 2023, 13, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		name                  string
		year, month, day      int
		firstWeekContainsDate int
		want                  int
	}{
		{"ISO week 53 of previous year", 2021, 1, 3, 4, 53},
		{"ISO first Monday", 2021, 1, 4, 4, 1},
		{"year starting on Monday", 2024, 1, 1, 4, 1},
		{"February", 2024, 2, 10, 4, 6},
		{"mid year", 2021, 6, 15, 4, 24},
		{"December in next year's week 1", 2019, 12, 30, 4, 1},
		{"long year end", 2020, 12, 31, 4, 53},
		{"long year starting Thursday", 2026, 12, 31, 4, 53},
		{"week containing January 1", 2021, 1, 3, 1, 1},
		{"second week with January 1 rule", 2021, 1, 4, 1, 2},
		{"invalid rule falls back to ISO", 2021, 1, 3, 9, 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekNumber(tt.year, tt.month, tt.day, tt.firstWeekContainsDate)
			if got != tt.want {
				t.Errorf("WeekNumber(%d, %d, %d, %d) = %d, want %d",
					tt.year, tt.month, tt.day, tt.firstWeekContainsDate, got, tt.want)
			}
		})
	}
}

func TestWeeksInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2015, 53},
		{2020, 53},
		{2021, 52},
		{2024, 52},
		{2026, 53},
	}

	for _, tt := range tests {
		if got := WeeksInYear(tt.year); got != tt.want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}

	rules := []struct {
		year, firstWeekContainsDate int
		want                        int
	}{
		{2017, 1, 53},
		{2021, 1, 52},
		{2020, 4, 53},
		{2020, 0, 53},
	}
	for _, tt := range rules {
		if got := WeeksInYearWith(tt.year, tt.firstWeekContainsDate); got != tt.want {
			t.Errorf("WeeksInYearWith(%d, %d) = %d, want %d", tt.year, tt.firstWeekContainsDate, got, tt.want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int
	}{
		{2023, 1, 1, 1},
		{2023, 3, 1, 60},
		{2024, 3, 1, 61},
		{2024, 12, 31, 366},
	}

	for _, tt := range tests {
		if got := DayOfYear(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("DayOfYear(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestCivilNormalize(t *testing.T) {
	got := Civil{Year: 2024, Month: 13, Day: 32, Hour: 24}.Normalize()
	want := Civil{Year: 2025, Month: 2, Day: 2}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if wd := (Civil{Year: 2024, Month: 3, Day: 15}).Weekday(); wd != 5 {
		t.Errorf("Weekday() = %d, want 5", wd)
	}
}
