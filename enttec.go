package dmx

import (
	"encoding/binary"
	"io"
	"path/filepath"
	"strings"

	"github.com/allbin/go-dmx/internal/serial"
)

// KindEnttec identifies the Enttec DMX USB Pro port type.
const KindEnttec = "enttec"

// Enttec DMX USB Pro message framing, per the widget API datasheet.
const (
	enttecStartByte   = 0x7E
	enttecEndByte     = 0xE7
	enttecLabelOutput = 0x06 // Output Only Send DMX Packet

	// Universe bounds enforced at encoding time. The widget refreshes
	// reliably from 24 channels up to the full DMX512 universe.
	enttecMinChannels = 24
	enttecMaxChannels = 512
)

// Line parameters for the widget's FTDI bridge. The bridge ignores the
// baud rate, 57600 is the conventional setting.
const enttecBaudRate = 57600

// wirePort is the serial surface the Enttec port drives.
type wirePort interface {
	io.WriteCloser
	Drain() error
}

// openWire opens the serial connection for an Enttec port. Package-level
// so tests can substitute a recording transport.
var openWire = func(device string) (wirePort, error) {
	return serial.Open(device,
		serial.WithBaudRate(enttecBaudRate),
		serial.WithDataBits(8),
		serial.WithStopBits(1),
		serial.WithParity(serial.ParityNone),
	)
}

// EnttecPort drives an Enttec DMX USB Pro widget over a serial device.
type EnttecPort struct {
	device string
	conn   wirePort
}

// Ensure EnttecPort implements DmxPort at compile time
var _ DmxPort = (*EnttecPort)(nil)

// NewEnttecPort returns a closed port for the given serial device path.
func NewEnttecPort(device string) *EnttecPort {
	return &EnttecPort{device: device}
}

// EnttecPorts enumerates USB serial adapters on the host and wraps each
// into a closed port. Enumeration does not open any device.
func EnttecPorts() (PortListing, error) {
	devices, err := serial.ListPorts()
	if err != nil {
		return nil, &SerialError{Op: "enumerate", Err: err}
	}

	var ports PortListing
	for _, device := range devices {
		if !isUSBSerialDevice(device) {
			continue
		}
		ports = append(ports, NewEnttecPort(device))
	}
	return ports, nil
}

// isUSBSerialDevice reports whether the path looks like a USB serial
// adapter. The widget always enumerates as ttyUSB* or ttyACM*.
func isUSBSerialDevice(device string) bool {
	base := filepath.Base(device)
	return strings.HasPrefix(base, "ttyUSB") || strings.HasPrefix(base, "ttyACM")
}

func (p *EnttecPort) Kind() string {
	return KindEnttec
}

func (p *EnttecPort) Name() string {
	return p.device
}

// Open establishes the serial connection. No-op if already open, so a
// second call never acquires a second handle.
func (p *EnttecPort) Open() error {
	if p.conn != nil {
		return nil
	}

	conn, err := openWire(p.device)
	if err != nil {
		return &SerialError{Op: "open", Device: p.device, Err: err}
	}
	p.conn = conn
	return nil
}

// Close releases the serial connection. Teardown errors are swallowed;
// there is nothing actionable to report.
func (p *EnttecPort) Close() {
	if p.conn == nil {
		return
	}
	p.conn.Close()
	p.conn = nil
}

// Write encodes one frame into the widget's message framing and transmits
// it in a single write. A short write fails the whole operation; partial
// delivery is never reported as success.
func (p *EnttecPort) Write(frame []byte) error {
	if p.conn == nil {
		return ErrPortClosed
	}

	packet := enttecPacket(frame)
	n, err := p.conn.Write(packet)
	if err != nil {
		return &SerialError{Op: "write", Device: p.device, Err: err}
	}
	if n != len(packet) {
		return &SerialError{Op: "write", Device: p.device, Err: io.ErrShortWrite}
	}
	// The frame only counts as sent once the kernel has drained it to the
	// widget.
	if err := p.conn.Drain(); err != nil {
		return &SerialError{Op: "drain", Device: p.device, Err: err}
	}
	return nil
}

// enttecPacket frames a universe of channel values:
// start marker, message label, little-endian payload length, payload,
// end marker.
func enttecPacket(frame []byte) []byte {
	payload := normalizeFrame(frame, enttecMinChannels, enttecMaxChannels)

	packet := make([]byte, 0, len(payload)+5)
	packet = append(packet, enttecStartByte, enttecLabelOutput)
	packet = binary.LittleEndian.AppendUint16(packet, uint16(len(payload)))
	packet = append(packet, payload...)
	packet = append(packet, enttecEndByte)
	return packet
}
