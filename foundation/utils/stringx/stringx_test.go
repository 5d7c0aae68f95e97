// File: stringx_test.go
// Title: String Helper Tests
// Description: Tests for padding, centering and blank checks.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" en ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "tr", "en"); got != "tr" {
		t.Errorf("FirstNonBlank() = %q, want tr", got)
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"pad left", PadLeft("7", 3, '0'), "007"},
		{"pad left no-op", PadLeft("2024", 2, '0'), "2024"},
		{"pad right", PadRight("Mo", 4, ' '), "Mo  "},
		{"pad right unicode", PadRight("Şub", 5, '.'), "Şub.."},
		{"center even", Center("Mart", 8, ' '), "  Mart  "},
		{"center odd", Center("May", 6, '-'), "-May--"},
		{"center unicode", Center("Ağustos", 9, ' '), " Ağustos "},
		{"center wider input", Center("September", 3, ' '), "September"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestZeroPad(t *testing.T) {
	tests := []struct {
		n, width int
		want     string
	}{
		{5, 2, "05"},
		{12, 2, "12"},
		{7, 3, "007"},
		{0, 4, "0000"},
		{-5, 2, "-05"},
		{123, 2, "123"},
	}
	for _, tt := range tests {
		if got := ZeroPad(tt.n, tt.width); got != tt.want {
			t.Errorf("ZeroPad(%d, %d) = %q, want %q", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	if got := UpperFirst("in 3 days"); got != "In 3 days" {
		t.Errorf("UpperFirst() = %q", got)
	}
	if got := UpperFirst("ıslak"); got != "Islak" {
		t.Errorf("UpperFirst() = %q", got)
	}
	if got := UpperFirst(""); got != "" {
		t.Errorf("UpperFirst(\"\") = %q", got)
	}
}
