package models

import (
	dmx "github.com/allbin/go-dmx"
)

// Console holds the fader state behind the console TUI: one port, one
// universe of channel levels, and a cursor over the channels.
type Console struct {
	port     dmx.DmxPort
	levels   []byte
	cursor   int
	lastErr  error
	sent     uint64
	universe int
}

func NewConsole(universe int) *Console {
	if universe < 1 {
		universe = 1
	}
	if universe > 512 {
		universe = 512
	}
	return &Console{
		levels:   make([]byte, universe),
		universe: universe,
	}
}

func (c *Console) SetPort(port dmx.DmxPort) {
	c.port = port
}

func (c *Console) Port() dmx.DmxPort {
	return c.port
}

func (c *Console) Universe() int {
	return c.universe
}

func (c *Console) Levels() []byte {
	return c.levels
}

func (c *Console) Cursor() int {
	return c.cursor
}

// MoveCursor shifts the selected channel, clamped to the universe.
func (c *Console) MoveCursor(delta int) {
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= c.universe {
		c.cursor = c.universe - 1
	}
}

// Adjust changes the selected channel's level, clamped to 0-255.
func (c *Console) Adjust(delta int) {
	level := int(c.levels[c.cursor]) + delta
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	c.levels[c.cursor] = byte(level)
}

// Full drives the selected channel to 255.
func (c *Console) Full() {
	c.levels[c.cursor] = 255
}

// Blackout zeroes every channel.
func (c *Console) Blackout() {
	for i := range c.levels {
		c.levels[i] = 0
	}
}

// Send writes the current universe to the port. The last error is retained
// for the status bar; a successful send clears it.
func (c *Console) Send() error {
	if c.port == nil {
		return nil
	}
	err := c.port.Write(c.levels)
	c.lastErr = err
	if err == nil {
		c.sent++
	}
	return err
}

func (c *Console) FramesSent() uint64 {
	return c.sent
}

func (c *Console) LastErr() error {
	return c.lastErr
}

// Shutdown blacks out the rig and closes the port.
func (c *Console) Shutdown() {
	if c.port == nil {
		return
	}
	c.Blackout()
	c.port.Write(c.levels) // best effort on the way out
	c.port.Close()
	c.port = nil
}
