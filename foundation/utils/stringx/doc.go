// Package stringx provides the small string helpers TimeKit needs on top of
// the standard strings package.
//
// Package: stringx
// Title: String Helpers for TimeKit
// Description: Rune-aware padding and centering used by the token formatter
//              and the calendar renderer, plus blank checks used when
//              validating configuration and locale files.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Trimmed to padding and blank helpers, added ZeroPad
//
// Usage:
//
//	stringx.ZeroPad(7, 2)           // "07"
//	stringx.ZeroPad(-7, 3)          // "-007"
//	stringx.Center("March", 9, ' ') // "  March  "
package stringx
