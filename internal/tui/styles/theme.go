package styles

import (
	"github.com/allbin/go-dmx/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Status styles
	StatusOpenStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	StatusClosedStyle = lipgloss.NewStyle().
				Foreground(colors.Red).
				Bold(true)

	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colors.Red)

	// Channel grid styles
	ChannelStyle = lipgloss.NewStyle().
			Foreground(colors.Text)

	ChannelZeroStyle = lipgloss.NewStyle().
				Foreground(colors.Overlay0)

	ChannelSelectedStyle = lipgloss.NewStyle().
				Foreground(colors.Peach).
				Background(colors.Surface1).
				Bold(true)

	ChannelLabelStyle = lipgloss.NewStyle().
				Foreground(colors.Subtext0)

	LevelBarStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow)

	// Help area
	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0).
			PaddingTop(1)
)
