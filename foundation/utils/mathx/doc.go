// File: doc.go
// Title: Package Documentation for mathx
// Description: Package documentation for the integer helpers.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced to floored integer division for calendar math

// Package mathx provides floored integer division.
//
// Go's / and % truncate toward zero, so -1 / 7 == 0 and -1 % 7 == -1.
// Calendar arithmetic needs the floored forms: walking back from a Monday
// to the previous Saturday, or converting -1 months to the previous year.
//
//	mathx.FloorDiv(-1, 12) // -1
//	mathx.FloorMod(-1, 7)  // 6
package mathx
