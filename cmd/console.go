/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	dmx "github.com/allbin/go-dmx"
	"github.com/allbin/go-dmx/internal/tui/components"
	"github.com/allbin/go-dmx/internal/tui/keys"
	"github.com/allbin/go-dmx/internal/tui/models"
	"github.com/allbin/go-dmx/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive lighting console",
	Long: `Open an interactive DMX console in the terminal.

Pick a port from the table, then fade channels with vim-style keys while
frames stream to the port at a fixed rate:
- h/l select a channel, j/k lower/raise its level (J/K in steps of 16)
- f drives the selected channel to full, b blacks out the universe
- q quits, sending a final blackout before the port is closed

Example usage:
  dmx console
  dmx console --fps 44 --universe 24`,
	Run: func(cmd *cobra.Command, args []string) {
		flagFPS, _ := cmd.Flags().GetInt("fps")
		fps := resolveFPS(flagFPS)
		universe, _ := cmd.Flags().GetInt("universe")
		if universe < 1 {
			universe = defaultUniverse()
		}

		ports, err := dmx.AvailablePorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		model := newConsoleModel(ports, universe, fps)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().Int("fps", 0, "Frames per second to send (default from config, 30)")
	consoleCmd.Flags().IntP("universe", "u", 0, "Universe size in channels (default from config, 512)")
}

// resolveFPS picks the frame rate from the flag, then the config, and
// clamps it so the send ticker always has a positive interval.
func resolveFPS(flagFPS int) int {
	fps := flagFPS
	if fps < 1 {
		fps = viper.GetInt("fps")
	}
	if fps < 1 {
		fps = 30
	}
	if fps > 44 {
		fps = 44 // DMX512 full-universe refresh tops out around 44 Hz
	}
	return fps
}

// frameMsg triggers one frame transmission.
type frameMsg time.Time

func frameTick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// consoleModel is the Bubble Tea model for the console command. It starts
// in the port-picking phase and switches to the fader phase once a port is
// open.
type consoleModel struct {
	picker  table.Model
	ports   dmx.PortListing
	picking bool
	pickErr error

	console *models.Console
	status  *components.StatusBar
	grid    *components.ChannelGrid
	help    help.Model
	keys    keys.ConsoleKeys

	fps    int
	width  int
	height int
}

func newConsoleModel(ports dmx.PortListing, universe, fps int) *consoleModel {
	rows := make([]table.Row, 0, len(ports))
	for i, port := range ports {
		rows = append(rows, table.NewRow(table.RowData{
			"idx":  i,
			"kind": port.Kind(),
			"name": port.Name(),
		}))
	}

	picker := table.New([]table.Column{
		table.NewColumn("idx", "#", 4),
		table.NewColumn("kind", "Kind", 10),
		table.NewColumn("name", "Name", 32),
	}).WithRows(rows).Focused(true)

	status := components.NewStatusBar("DMX Console")
	status.SetUniverse(universe, fps)

	return &consoleModel{
		picker:  picker,
		ports:   ports,
		picking: true,
		console: models.NewConsole(universe),
		status:  status,
		grid:    components.NewChannelGrid(),
		help:    help.New(),
		keys:    keys.NewConsoleKeys(),
		fps:     fps,
	}
}

func (m *consoleModel) Init() tea.Cmd {
	return nil
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.status.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.grid.SetHeight(msg.Height - 8)
		return m, nil

	case frameMsg:
		if m.picking {
			return m, nil
		}
		m.console.Send()
		m.status.SetFrames(m.console.FramesSent())
		m.status.SetError(m.console.LastErr())
		return m, frameTick(m.fps)

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicking(msg)
		}
		return m.updateFading(msg)
	}

	return m, nil
}

func (m *consoleModel) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		data := m.picker.HighlightedRow().Data
		idx, ok := data["idx"].(int)
		if !ok || idx >= len(m.ports) {
			return m, nil
		}

		port := m.ports[idx]
		if err := port.Open(); err != nil {
			m.pickErr = err
			return m, nil
		}

		m.console.SetPort(port)
		m.status.SetPort(port.Name(), true)
		m.picking = false
		m.pickErr = nil
		return m, frameTick(m.fps)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *consoleModel) updateFading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.console.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.PrevChannel):
		m.console.MoveCursor(-1)

	case key.Matches(msg, m.keys.NextChannel):
		m.console.MoveCursor(1)

	case key.Matches(msg, m.keys.Raise):
		m.console.Adjust(1)

	case key.Matches(msg, m.keys.Lower):
		m.console.Adjust(-1)

	case key.Matches(msg, m.keys.RaiseCoarse):
		m.console.Adjust(16)

	case key.Matches(msg, m.keys.LowerCoarse):
		m.console.Adjust(-16)

	case key.Matches(msg, m.keys.Full):
		m.console.Full()

	case key.Matches(msg, m.keys.Blackout):
		m.console.Blackout()
	}

	return m, nil
}

func (m *consoleModel) View() string {
	if m.picking {
		view := styles.TitleStyle.Render("DMX Console") + "\n\n" +
			m.picker.View() + "\n\n" +
			styles.HelpStyle.Render("enter: open port • q: quit")
		if m.pickErr != nil {
			view += "\n" + styles.ErrorStyle.Render("error: "+m.pickErr.Error())
		}
		return view
	}

	return m.status.View() + "\n\n" +
		m.grid.View(m.console.Levels(), m.console.Cursor()) + "\n" +
		styles.HelpStyle.Render(m.help.View(m.keys))
}
