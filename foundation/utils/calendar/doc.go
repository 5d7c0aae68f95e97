// File: doc.go
// Title: Calendar Package Documentation
// Description: Package documentation for the calendar layout helpers.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
// Change History:
// - 2026-10-19 Initial implementation

// Package calendar lays out months and weeks for date pickers and terminal
// calendars.
//
// A Builder reads the week start, the first-week rule, the locale and the
// clock from a timex.Env:
//
//	b := calendar.New(env)
//	grid := b.Grid(2024, 1, 1)   // [][]*int, nil for padding
//	month := b.Month(2024, 1, calendar.Options{Selected: &picked})
//	week := b.Week(timex.String("2024-03-15"), calendar.DefaultWeekStart)
//	header := b.Header(calendar.DefaultWeekStart) // ["Mo" "Tu" ...]
//
// Grid rows always hold seven cells. Month decorates each cell with today,
// weekend, selection and disabled flags. Padding cells of a Month are
// disabled and carry a zero Instant.
package calendar
