package serial

import (
	"strings"
	"testing"
)

func TestListPorts(t *testing.T) {
	ports, err := ListPorts()
	if err != nil {
		t.Fatalf("ListPorts failed: %v", err)
	}

	for _, port := range ports {
		if !strings.HasPrefix(port, "/dev/") {
			t.Errorf("Port path doesn't start with /dev/: %s", port)
		}
		if !isCharacterDevice(port) {
			t.Errorf("Port is not a character device: %s", port)
		}
	}

	// Check that ports are sorted
	for i := 1; i < len(ports); i++ {
		if ports[i-1] > ports[i] {
			t.Errorf("Ports are not sorted: %s > %s", ports[i-1], ports[i])
		}
	}
}

func TestMatchesDevicePattern(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"ttyUSB0", true},
		{"ttyACM3", true},
		{"ttyS0", true},
		{"ttyAMA0", true},
		{"tty1", false},
		{"console", false},
		{"ptmx", false},
		{"ttyUSB", false},
	}

	for _, test := range tests {
		if got := matchesDevicePattern(test.name); got != test.expected {
			t.Errorf("matchesDevicePattern(%s) = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestIsCharacterDevice(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/dev/null", true},
		{"/dev/zero", true},
		{"/tmp", false},
		{"/nonexistent", false},
	}

	for _, test := range tests {
		if got := isCharacterDevice(test.path); got != test.expected {
			t.Errorf("isCharacterDevice(%s) = %v, expected %v", test.path, got, test.expected)
		}
	}
}

func TestGetPortDescription(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ttyUSB0", "USB Serial Port"},
		{"ttyACM1", "USB CDC/ACM Device"},
		{"ttyAMA0", "ARM Serial Port"},
		{"ttyS4", "Standard Serial Port"},
		{"rfcomm0", "Serial Port"},
	}

	for _, test := range tests {
		if got := getPortDescription(test.name); got != test.expected {
			t.Errorf("getPortDescription(%s) = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestGetPortInfoMissingDevice(t *testing.T) {
	if _, err := GetPortInfo("/nonexistent"); err != ErrDeviceNotFound {
		t.Errorf("GetPortInfo(/nonexistent) error = %v, expected ErrDeviceNotFound", err)
	}
}
