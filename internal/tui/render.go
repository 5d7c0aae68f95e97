// File: render.go
// Title: Terminal Renderers
// Description: Renders calendar months and labelled value lists for the
//              timekit command line.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ersinkoc/TimeKit/foundation/utils/calendar"
)

// Field is one labelled line of command output
type Field struct {
	Label string
	Value string
}

// MonthView controls RenderMonth
type MonthView struct {
	Title       string
	Header      []string
	WeekNumbers bool
}

// RenderMonth draws month as a boxed grid. Padding cells stay blank.
func RenderMonth(month calendar.Month, view MonthView) string {
	lines := make([]string, 0, len(month.Weeks)+2)
	if view.Title != "" {
		lines = append(lines, RenderTitle(view.Title))
	}

	if len(view.Header) > 0 {
		cells := make([]string, len(view.Header))
		for i, name := range view.Header {
			cells[i] = HeaderStyle.Render(fmt.Sprintf("%2s", name))
		}
		lines = append(lines, weekPrefix(view.WeekNumbers, "")+strings.Join(cells, " "))
	}

	for _, week := range month.Weeks {
		cells := make([]string, len(week.Days))
		for i, day := range week.Days {
			cells[i] = renderDay(day)
		}
		prefix := weekPrefix(view.WeekNumbers, WeekNumberStyle.Render(fmt.Sprintf("%2d", week.Number)))
		lines = append(lines, prefix+strings.Join(cells, " "))
	}

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func weekPrefix(enabled bool, number string) string {
	if !enabled {
		return ""
	}
	if number == "" {
		number = "  "
	}
	return number + "  "
}

func renderDay(day calendar.Day) string {
	if day.Date == 0 {
		return "  "
	}
	text := fmt.Sprintf("%2d", day.Date)
	switch {
	case day.IsSelected:
		return SelectedStyle.Render(text)
	case day.IsDisabled:
		return DisabledStyle.Render(text)
	case day.IsToday:
		return TodayStyle.Render(text)
	case day.IsWeekend:
		return WeekendStyle.Render(text)
	default:
		return DayStyle.Render(text)
	}
}

// RenderFields aligns labels in a column followed by their values
func RenderFields(fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Label))
	}

	lines := make([]string, len(fields))
	for i, f := range fields {
		label := LabelStyle.Width(width + 2).Render(f.Label + ":")
		lines[i] = label + ValueStyle.Render(f.Value)
	}
	return strings.Join(lines, "\n")
}
