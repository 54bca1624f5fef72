package menu

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zoomgrab/zoomgrab/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Blue).
			Foreground(style.Mist)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Blue).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
