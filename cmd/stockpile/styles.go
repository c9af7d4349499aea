package main

import "github.com/charmbracelet/lipgloss"

var (
	green  = lipgloss.Color("#00C832")
	cyan   = lipgloss.Color("#00D4AA")
	yellow = lipgloss.Color("#E5C07B")
	red    = lipgloss.Color("#E06C75")
	gray   = lipgloss.Color("#aaaaaa")

	headerStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(cyan)

	qtyStyle = lipgloss.NewStyle().
			Foreground(gray)

	lowStyle = lipgloss.NewStyle().
			Foreground(yellow).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)
)

// plain disables all styling; set from config or the -plain flag.
var plain bool

func render(style lipgloss.Style, s string) string {
	if plain {
		return s
	}
	return style.Render(s)
}
