package serial

import "errors"

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound  = errors.New("serial device not found")
	ErrInvalidBaudRate = errors.New("invalid baud rate")
	ErrInvalidConfig   = errors.New("invalid serial configuration")
	ErrPortClosed      = errors.New("serial port is closed")
)
