package components

import (
	"fmt"

	"github.com/allbin/go-dmx/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the console header: title, port identity, open state
// and frame counters.
type StatusBar struct {
	title    string
	portName string
	open     bool
	universe int
	fps      int
	frames   uint64
	err      error
	width    int
}

func NewStatusBar(title string) *StatusBar {
	return &StatusBar{title: title}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetPort(name string, open bool) {
	sb.portName = name
	sb.open = open
}

func (sb *StatusBar) SetUniverse(universe, fps int) {
	sb.universe = universe
	sb.fps = fps
}

func (sb *StatusBar) SetFrames(frames uint64) {
	sb.frames = frames
}

func (sb *StatusBar) SetError(err error) {
	sb.err = err
}

func (sb *StatusBar) View() string {
	title := styles.TitleStyle.Render(sb.title)

	status := styles.StatusClosedStyle.Render("CLOSED")
	if sb.open {
		status = styles.StatusOpenStyle.Render("OPEN")
	}

	info := styles.StatusInfoStyle.Render(fmt.Sprintf(
		" %s  %d ch @ %d fps  %d frames sent",
		sb.portName, sb.universe, sb.fps, sb.frames,
	))

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", status, info)
	if sb.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(sb.width).Render(line)
	}

	if sb.err != nil {
		line = lipgloss.JoinVertical(lipgloss.Left, line,
			styles.ErrorStyle.Render("error: "+sb.err.Error()))
	}
	return line
}
