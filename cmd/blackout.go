/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// blackoutCmd represents the blackout command
var blackoutCmd = &cobra.Command{
	Use:   "blackout",
	Short: "Send an all-zero frame",
	Long: `Send a full universe of zeros to a port, turning the rig dark.

Example usage:
  dmx blackout
  dmx blackout --port /dev/ttyUSB0`,
	Run: func(cmd *cobra.Command, args []string) {
		port, err := resolvePort()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		frame := make([]byte, defaultUniverse())
		if err := port.Write(frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending blackout: %v\n", err)
			os.Exit(1)
		}

		okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
		fmt.Printf("%s blackout sent to %s\n", okStyle.Render("✓"), port.Name())
	},
}

func init() {
	rootCmd.AddCommand(blackoutCmd)
}
