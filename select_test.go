package dmx

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestSelectPortFrom(t *testing.T) {
	first := &stubPort{name: "offline"}
	second := &stubPort{name: "/dev/ttyUSB0"}
	ports := PortListing{first, second}

	var out strings.Builder
	in := strings.NewReader("1\n")

	port, err := selectPortFrom(ports, in, &out)
	if err != nil {
		t.Fatalf("selectPortFrom failed: %v", err)
	}
	if port.Name() != "/dev/ttyUSB0" {
		t.Errorf("Selected %q, expected %q", port.Name(), "/dev/ttyUSB0")
	}
	if !second.open {
		t.Error("Selected port was not opened")
	}
	if first.open {
		t.Error("Unselected port was opened")
	}

	menu := out.String()
	if !strings.Contains(menu, "0: offline") || !strings.Contains(menu, "1: /dev/ttyUSB0") {
		t.Errorf("Menu missing entries:\n%s", menu)
	}
}

func TestSelectPortFromRetriesOnBadInput(t *testing.T) {
	ports := PortListing{&stubPort{name: "offline"}}

	var out strings.Builder
	in := strings.NewReader("x\n7\n0\n")

	port, err := selectPortFrom(ports, in, &out)
	if err != nil {
		t.Fatalf("selectPortFrom failed: %v", err)
	}
	if port.Name() != "offline" {
		t.Errorf("Selected %q, expected %q", port.Name(), "offline")
	}

	prompts := strings.Count(out.String(), "Select a port: ")
	if prompts != 3 {
		t.Errorf("Expected 3 prompts, got %d", prompts)
	}
	if !strings.Contains(out.String(), "Please enter an integer.") {
		t.Error("Missing corrective message for non-integer input")
	}
	if !strings.Contains(out.String(), "Please enter a value less than 1.") {
		t.Error("Missing corrective message for out-of-range input")
	}
}

func TestSelectPortFromEmptyListing(t *testing.T) {
	var out strings.Builder
	_, err := selectPortFrom(nil, strings.NewReader(""), &out)
	if !errors.Is(err, ErrNoPortsFound) {
		t.Errorf("Expected ErrNoPortsFound, got %v", err)
	}
}

func TestSelectPortFromEOF(t *testing.T) {
	ports := PortListing{&stubPort{name: "offline"}}

	var out strings.Builder
	_, err := selectPortFrom(ports, strings.NewReader(""), &out)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestSelectPortFromOpenFailure(t *testing.T) {
	openErr := errors.New("device busy")
	ports := PortListing{&stubPort{name: "offline", openErr: openErr}}

	var out strings.Builder
	_, err := selectPortFrom(ports, strings.NewReader("0\n"), &out)
	if !errors.Is(err, openErr) {
		t.Errorf("Expected open error, got %v", err)
	}
}
