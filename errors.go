package dmx

import (
	"errors"
	"fmt"
)

// Predefined error types for robust error handling
var (
	ErrPortClosed      = errors.New("dmx port is not open")
	ErrNoPortsFound    = errors.New("no dmx ports available")
	ErrUnknownPortKind = errors.New("unknown dmx port kind")
)

// SerialError wraps a transport-level failure: device enumeration, open,
// or frame transmission.
type SerialError struct {
	Op     string
	Device string
	Err    error
}

func (e *SerialError) Error() string {
	if e.Device == "" {
		return fmt.Sprintf("serial %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("serial %s %s: %v", e.Op, e.Device, e.Err)
}

func (e *SerialError) Unwrap() error {
	return e.Err
}
