// Package dmx provides a uniform abstraction over DMX512 output ports,
// so callers can send 8-bit channel frames without knowing whether the
// transport is a USB-to-DMX interface or an offline stand-in.
//
// # Basic Usage
//
// Enumerate ports, open one and send a frame:
//
//	ports, err := dmx.AvailablePorts()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port := ports[0]
//	if err := port.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	frame := []byte{255, 0, 128} // channels 1-3
//	if err := port.Write(frame); err != nil {
//	    log.Fatal(err)
//	}
//
// Frames shorter than a transport's minimum universe size are padded with
// zeros (blackout padding); frames longer than the maximum are truncated.
// A single fixed-size buffer therefore works against every port kind.
//
// # Interactive Selection
//
// Prompt the user to pick a port on the terminal:
//
//	port, err := dmx.SelectPort()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
// # Persistence
//
// A port handle can be saved and reconstructed across process restarts.
// The reconstructed port starts closed and must be re-opened:
//
//	data, _ := dmx.MarshalPort(port)
//	later, _ := dmx.UnmarshalPort(data)
//	err = later.Open()
//
// The offline port ("offline") accepts writes and performs no I/O, so code
// that depends on a port can run headless or under test without hardware.
package dmx
