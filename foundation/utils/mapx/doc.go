// File: doc.go
// Title: Package Documentation for mapx
// Description: Package documentation for the generic map helpers.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced to the helpers used by logging and configuration

// Package mapx provides generic map helpers.
//
// Clone and Merge always return a fresh map so callers can hand out
// copies of shared state such as log fields or label overrides:
//
//	labels := mapx.Clone(settings.Labels)
//	fields := mapx.Merge(base, extra) // keys of extra win
//	for _, k := range mapx.SortedKeys(fields) { ... }
package mapx
