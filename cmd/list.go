/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	dmx "github.com/allbin/go-dmx"
	"github.com/allbin/go-dmx/internal/serial"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available DMX ports",
	Long: `List all available DMX output ports.

The listing aggregates every known port kind in selection order:
- offline: a no-op port that accepts frames without hardware
- enttec: Enttec DMX USB Pro widgets on USB serial adapters

The index shown is the same index the interactive chooser uses.`,
	Run: func(cmd *cobra.Command, args []string) {
		ports, err := dmx.AvailablePorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		kindFilter, _ := cmd.Flags().GetString("kind")
		tableFormat, _ := cmd.Flags().GetBool("table")

		filtered := filterByKind(ports, kindFilter)
		if len(filtered) == 0 {
			if kindFilter != "" {
				fmt.Printf("No DMX ports of kind %q found\n", kindFilter)
			} else {
				fmt.Println("No DMX ports found")
			}
			return
		}

		if tableFormat {
			renderTable(filtered)
		} else {
			renderSimple(filtered)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("kind", "k", "", "Filter by port kind: offline, enttec")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// filterByKind keeps ports whose kind matches the filter ("" keeps all).
func filterByKind(ports dmx.PortListing, kind string) dmx.PortListing {
	if kind == "" || strings.EqualFold(kind, "all") {
		return ports
	}

	var filtered dmx.PortListing
	for _, port := range ports {
		if strings.EqualFold(port.Kind(), kind) {
			filtered = append(filtered, port)
		}
	}
	return filtered
}

// portDescription returns display metadata for a port.
func portDescription(port dmx.DmxPort) string {
	if port.Kind() == dmx.KindOffline {
		return "No-op test port"
	}
	info, err := serial.GetPortInfo(port.Name())
	if err != nil {
		return "Enttec DMX USB Pro"
	}
	return info.Description
}

// renderSimple prints one styled line per port.
func renderSimple(ports dmx.PortListing) {
	kindStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		Width(8)

	for i, port := range ports {
		fmt.Printf("%d: %s %s\n", i, kindStyle.Render(port.Kind()), port.Name())
	}
}

// renderTable renders the port list in a styled static table format
func renderTable(ports dmx.PortListing) {
	fmt.Printf("Found %d DMX port(s):\n\n", len(ports))

	idxWidth := 4
	kindWidth := 10
	nameWidth := 20
	descWidth := 28

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingBottom(1)

	cellStyle := lipgloss.NewStyle().
		PaddingRight(2)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(idxWidth).Render("#"),
		headerStyle.Width(kindWidth).Render("Kind"),
		headerStyle.Width(nameWidth).Render("Name"),
		headerStyle.Width(descWidth).Render("Description"),
	)
	fmt.Println(header)

	for i, port := range ports {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Width(idxWidth).Render(fmt.Sprintf("%d", i)),
			cellStyle.Width(kindWidth).Render(port.Kind()),
			cellStyle.Width(nameWidth).Render(port.Name()),
			cellStyle.Width(descWidth).Render(portDescription(port)),
		)
		fmt.Println(row)
	}
}
