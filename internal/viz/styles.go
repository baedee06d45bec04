package viz

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	StatValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	// Per-kind accents for summary rows.
	KindEscaping = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	KindBounded  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4444aa"))
	KindPeriodic = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	KindOther    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)
