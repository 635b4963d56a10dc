package dmx

// KindOffline identifies the no-op port type.
const KindOffline = "offline"

// OfflinePort is a DmxPort that accepts writes and performs no I/O. It
// slots into place wherever an API requires an output but no hardware is
// attached.
type OfflinePort struct {
	open bool
}

// Ensure OfflinePort implements DmxPort at compile time
var _ DmxPort = (*OfflinePort)(nil)

// NewOfflinePort returns a closed offline port.
func NewOfflinePort() *OfflinePort {
	return &OfflinePort{}
}

// OfflinePorts lists the single synthetic offline port. It never fails.
func OfflinePorts() (PortListing, error) {
	return PortListing{NewOfflinePort()}, nil
}

func (p *OfflinePort) Kind() string {
	return KindOffline
}

func (p *OfflinePort) Name() string {
	return "offline"
}

func (p *OfflinePort) Open() error {
	p.open = true
	return nil
}

func (p *OfflinePort) Close() {
	p.open = false
}

// Write discards the frame. It still enforces the open/closed contract so
// offline behavior matches every other port under test.
func (p *OfflinePort) Write(frame []byte) error {
	if !p.open {
		return ErrPortClosed
	}
	return nil
}
