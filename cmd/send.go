/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <values>",
	Short: "Send one DMX frame",
	Long: `Send a single DMX frame to a port.

Channel values are given as a comma-separated list of integers (0-255),
value N applying to DMX channel N+1. Missing trailing channels are sent
as zero by the port; values beyond the port's universe are dropped.

The port is taken from --port (or the "port" config key). Without it,
an interactive chooser is shown.

Example usage:
  dmx send 255,0,128
  dmx send 255,255 --port /dev/ttyUSB0
  dmx send 10,20,30 --universe 24`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		frame, err := parseLevels(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing values: %v\n", err)
			os.Exit(1)
		}

		universe, _ := cmd.Flags().GetInt("universe")
		if universe > 0 && len(frame) < universe {
			padded := make([]byte, universe)
			copy(padded, frame)
			frame = padded
		}

		port, err := resolvePort()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		if err := port.Write(frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending frame: %v\n", err)
			os.Exit(1)
		}

		okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
		fmt.Printf("%s sent %d channel(s) to %s\n",
			okStyle.Render("✓"), len(frame), port.Name())
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().IntP("universe", "u", 0, "Pad the frame with zeros up to this many channels")
}

// parseLevels parses "10,20,30" into channel values.
func parseLevels(s string) ([]byte, error) {
	parts := strings.Split(s, ",")
	frame := make([]byte, 0, len(parts))

	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("channel %d: %q is not an integer", i+1, part)
		}
		if value < 0 || value > 255 {
			return nil, fmt.Errorf("channel %d: %d is out of range 0-255", i+1, value)
		}
		frame = append(frame, byte(value))
	}
	return frame, nil
}

// defaultUniverse returns the configured universe size.
func defaultUniverse() int {
	universe := viper.GetInt("universe")
	if universe < 1 || universe > 512 {
		return 512
	}
	return universe
}
