package dmx

import (
	"errors"
	"testing"
)

func TestOfflinePortsListing(t *testing.T) {
	ports, err := OfflinePorts()
	if err != nil {
		t.Fatalf("OfflinePorts failed: %v", err)
	}
	if len(ports) != 1 {
		t.Fatalf("Expected exactly 1 offline port, got %d", len(ports))
	}
	if ports[0].Name() != "offline" {
		t.Errorf("Name() = %q, expected %q", ports[0].Name(), "offline")
	}
	if ports[0].Kind() != KindOffline {
		t.Errorf("Kind() = %q, expected %q", ports[0].Kind(), KindOffline)
	}
}

func TestOfflinePortLifecycle(t *testing.T) {
	port := NewOfflinePort()

	if err := port.Write([]byte{1, 2, 3}); !errors.Is(err, ErrPortClosed) {
		t.Errorf("Write before Open = %v, expected ErrPortClosed", err)
	}

	if err := port.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := port.Write([]byte{1, 2, 3}); err != nil {
		t.Errorf("Write after Open failed: %v", err)
	}

	port.Close()
	if err := port.Write([]byte{1, 2, 3}); !errors.Is(err, ErrPortClosed) {
		t.Errorf("Write after Close = %v, expected ErrPortClosed", err)
	}
}

func TestOfflinePortOpenIdempotent(t *testing.T) {
	port := NewOfflinePort()

	if err := port.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := port.Open(); err != nil {
		t.Errorf("Second Open failed: %v", err)
	}
	if err := port.Write(nil); err != nil {
		t.Errorf("Write after double Open failed: %v", err)
	}
}

func TestOfflinePortCloseIsSafe(t *testing.T) {
	port := NewOfflinePort()

	// Never-opened and repeated closes must not panic.
	port.Close()
	port.Close()

	if err := port.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	port.Close()
	port.Close()
}
