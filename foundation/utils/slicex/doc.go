// Package slicex provides the generic slice helpers TimeKit uses to lay
// out calendar grids and filter listings.
//
// Package: slicex
// Title: Slice Helpers for TimeKit
// Description: Range, Fill, Map and Filter build slices; Chunk, Flatten and
//              Rotate reshape them; Some and Count test them. Nil inputs and
//              nil functions yield nil or zero results instead of panicking.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Trimmed to the helpers used by the calendar, added Rotate
//
// Usage:
//
//	cells := slicex.Fill(35, func(i int) int { return i - 1 })
//	rows := slicex.Chunk(cells, 7)            // five rows of seven
//	order := slicex.Rotate(slicex.Range(0, 7), 1) // [1 2 3 4 5 6 0]
package slicex
