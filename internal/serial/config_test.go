package serial

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaudRate != 115200 {
		t.Errorf("Expected BaudRate 115200, got %d", config.BaudRate)
	}
	if config.DataBits != 8 {
		t.Errorf("Expected DataBits 8, got %d", config.DataBits)
	}
	if config.StopBits != 1 {
		t.Errorf("Expected StopBits 1, got %d", config.StopBits)
	}
	if config.Parity != ParityNone {
		t.Errorf("Expected Parity None, got %v", config.Parity)
	}
}

func TestFunctionalOptions(t *testing.T) {
	config := DefaultConfig()

	if err := WithBaudRate(57600)(&config); err != nil {
		t.Errorf("WithBaudRate failed: %v", err)
	}
	if config.BaudRate != 57600 {
		t.Errorf("Expected BaudRate 57600, got %d", config.BaudRate)
	}

	if err := WithDataBits(7)(&config); err != nil {
		t.Errorf("WithDataBits failed: %v", err)
	}
	if config.DataBits != 7 {
		t.Errorf("Expected DataBits 7, got %d", config.DataBits)
	}

	if err := WithStopBits(2)(&config); err != nil {
		t.Errorf("WithStopBits failed: %v", err)
	}
	if config.StopBits != 2 {
		t.Errorf("Expected StopBits 2, got %d", config.StopBits)
	}

	if err := WithParity(ParityEven)(&config); err != nil {
		t.Errorf("WithParity failed: %v", err)
	}
	if config.Parity != ParityEven {
		t.Errorf("Expected Parity Even, got %v", config.Parity)
	}
}

func TestInvalidOptions(t *testing.T) {
	config := DefaultConfig()

	if err := WithBaudRate(12345)(&config); err != ErrInvalidBaudRate {
		t.Errorf("WithBaudRate(12345) error = %v, expected ErrInvalidBaudRate", err)
	}
	if err := WithDataBits(9)(&config); err != ErrInvalidConfig {
		t.Errorf("WithDataBits(9) error = %v, expected ErrInvalidConfig", err)
	}
	if err := WithStopBits(3)(&config); err != ErrInvalidConfig {
		t.Errorf("WithStopBits(3) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestGetBaudRate(t *testing.T) {
	valid := []int{9600, 19200, 38400, 57600, 115200, 230400}
	for _, rate := range valid {
		if _, err := getBaudRate(rate); err != nil {
			t.Errorf("getBaudRate(%d) failed: %v", rate, err)
		}
	}

	if _, err := getBaudRate(250000); err != ErrInvalidBaudRate {
		t.Errorf("getBaudRate(250000) error = %v, expected ErrInvalidBaudRate", err)
	}
}
