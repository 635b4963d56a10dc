package components

import (
	"fmt"
	"strings"

	"github.com/allbin/go-dmx/internal/tui/styles"
)

const gridColumns = 16

// ChannelGrid renders a universe of channel levels as rows of 16 cells
// with the selected channel highlighted, plus a fader bar for the
// selection.
type ChannelGrid struct {
	height int
}

func NewChannelGrid() *ChannelGrid {
	return &ChannelGrid{}
}

func (g *ChannelGrid) SetHeight(height int) {
	g.height = height
}

func (g *ChannelGrid) View(levels []byte, cursor int) string {
	var b strings.Builder

	rows := (len(levels) + gridColumns - 1) / gridColumns

	// Keep the cursor's row on screen when the universe doesn't fit.
	firstRow := 0
	if g.height > 0 && rows > g.height {
		cursorRow := cursor / gridColumns
		firstRow = cursorRow - g.height/2
		if firstRow < 0 {
			firstRow = 0
		}
		if firstRow > rows-g.height {
			firstRow = rows - g.height
		}
		rows = firstRow + g.height
	}

	for row := firstRow; row < rows; row++ {
		start := row * gridColumns
		b.WriteString(styles.ChannelLabelStyle.Render(fmt.Sprintf("%3d ", start+1)))

		for col := 0; col < gridColumns; col++ {
			i := start + col
			if i >= len(levels) {
				break
			}
			cell := fmt.Sprintf("%3d ", levels[i])
			switch {
			case i == cursor:
				cell = styles.ChannelSelectedStyle.Render(cell)
			case levels[i] == 0:
				cell = styles.ChannelZeroStyle.Render(cell)
			default:
				cell = styles.ChannelStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(g.faderView(levels, cursor))
	return b.String()
}

// faderView draws the selected channel as a horizontal bar.
func (g *ChannelGrid) faderView(levels []byte, cursor int) string {
	const barWidth = 32

	level := int(levels[cursor])
	filled := level * barWidth / 255

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	label := fmt.Sprintf("ch %d  %3d/255  ", cursor+1, level)

	return styles.ChannelLabelStyle.Render(label) + styles.LevelBarStyle.Render(bar)
}
