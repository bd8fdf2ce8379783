package ui

import "github.com/charmbracelet/lipgloss"

// palette holds the styles shared by the list, detail and confirm views.
type palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	muted lipgloss.Style
}

var styles = palette{
	title: foreground("#7D56F4").Bold(true).MarginBottom(1),
	ok:    foreground("#04B575").Bold(true),
	err:   foreground("#FF0000").Bold(true),
	warn:  foreground("#FFA500"),
	muted: foreground("#626262").Italic(true),
}

func foreground(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
