package dmx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SelectPort prompts the user on the terminal to pick one of the available
// ports, opens it and returns it.
func SelectPort() (DmxPort, error) {
	ports, err := AvailablePorts()
	if err != nil {
		return nil, err
	}
	return selectPortFrom(ports, os.Stdin, os.Stdout)
}

// selectPortFrom runs the numbered-menu loop: non-integer or out-of-range
// input produces a corrective message and re-prompts rather than failing.
func selectPortFrom(ports PortListing, in io.Reader, out io.Writer) (DmxPort, error) {
	if len(ports) == 0 {
		return nil, ErrNoPortsFound
	}

	fmt.Fprintln(out, "Available DMX ports:")
	for i, port := range ports {
		fmt.Fprintf(out, "%d: %s\n", i, port.Name())
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Select a port: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading selection: %w", err)
			}
			return nil, io.ErrUnexpectedEOF
		}

		index, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Please enter an integer.")
			continue
		}
		if index < 0 || index >= len(ports) {
			fmt.Fprintf(out, "Please enter a value less than %d.\n", len(ports))
			continue
		}

		port := ports[index]
		if err := port.Open(); err != nil {
			return nil, err
		}
		return port, nil
	}
}
