// File: stringx.go
// Title: Core String Helpers
// Description: Padding, centering and blank checks. Widths are counted in
//              runes so Turkish month names pad the same as ASCII ones.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first non-blank string, or "" when all are blank.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// PadLeft pads s on the left to width runes.
// If s is already at least width runes long, it is returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right to width runes.
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Center centers s within width runes; the extra pad rune goes to the right.
func Center(s string, width int, pad rune) string {
	total := width - utf8.RuneCountInString(s)
	if total <= 0 {
		return s
	}
	left := total / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), total-left)
}

// ZeroPad formats n with at least width digits. The sign of a negative
// number is not counted as a digit.
func ZeroPad(n int, width int) string {
	if n < 0 {
		return "-" + PadLeft(strconv.Itoa(-n), width, '0')
	}
	return PadLeft(strconv.Itoa(n), width, '0')
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
