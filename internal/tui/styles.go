// File: styles.go
// Title: Terminal Styles
// Description: Color palette and lipgloss styles shared by the timekit
//              command output.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Calendar cells
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	WeekNumberStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	DayStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	WeekendStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	TodayStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Reverse(true)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true)
)

func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorStyle.Render("Error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
