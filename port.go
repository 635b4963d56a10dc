package dmx

import (
	"encoding/json"
	"fmt"
)

// DmxPort is the uniform surface every DMX transport provides. Ports are
// single-owner: one caller holds a port, opens it, writes frames and closes
// it on shutdown. No operation is safe for concurrent use on one instance.
type DmxPort interface {
	// Kind returns the discriminator identifying the concrete port type.
	Kind() string

	// Name returns the identity string for this port. It is immutable for
	// the lifetime of the port and unique within one kind.
	Name() string

	// Open prepares the port for writing. Calling Open on an already-open
	// port is a no-op, primarily so a reconstructed port can be re-opened
	// without state checks.
	Open() error

	// Close releases the underlying transport. Close-time errors are
	// swallowed; calling Close repeatedly or on a never-opened port is safe.
	Close()

	// Write transmits one DMX frame. Frames shorter than the transport's
	// minimum universe size are zero-padded; frames longer than the maximum
	// are truncated. Returns ErrPortClosed if the port is not open.
	Write(frame []byte) error
}

// PortListing is an ordered collection of ports gathered from one or more
// kinds. The caller owns the listing exclusively.
type PortListing []DmxPort

// PortProvider lists the currently discoverable ports of one kind without
// opening any of them.
type PortProvider func() (PortListing, error)

// DefaultProviders returns the built-in port kinds in selection order:
// the offline port first, then Enttec hardware ports.
func DefaultProviders() []PortProvider {
	return []PortProvider{OfflinePorts, EnttecPorts}
}

// AvailablePorts gathers the listings of all default port kinds into one.
// The ports will need to be opened before use. This function does not check
// whether any of the ports are already in use.
func AvailablePorts() (PortListing, error) {
	return CollectPorts(DefaultProviders()...)
}

// CollectPorts concatenates the listings of the given providers in order.
// If any provider fails, the whole aggregation fails; no partial listing
// is returned.
func CollectPorts(providers ...PortProvider) (PortListing, error) {
	var ports PortListing
	for _, provider := range providers {
		listing, err := provider()
		if err != nil {
			return nil, err
		}
		ports = append(ports, listing...)
	}
	return ports, nil
}

// normalizeFrame fits a frame into [min, max] channels: excess trailing
// channels are dropped, missing trailing channels are treated as zero.
func normalizeFrame(frame []byte, min, max int) []byte {
	if len(frame) > max {
		return frame[:max]
	}
	if len(frame) < min {
		padded := make([]byte, min)
		copy(padded, frame)
		return padded
	}
	return frame
}

// portEnvelope is the persisted form of a port handle. Only identity is
// stored; the live transport handle never survives a process.
type portEnvelope struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// MarshalPort serializes a port handle so it can be reconstructed later
// with UnmarshalPort.
func MarshalPort(p DmxPort) ([]byte, error) {
	return json.Marshal(portEnvelope{Kind: p.Kind(), Name: p.Name()})
}

// UnmarshalPort reconstructs a port handle from its serialized form. The
// returned port is closed regardless of the original's state and must be
// opened before use.
func UnmarshalPort(data []byte) (DmxPort, error) {
	var env portEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding port: %w", err)
	}

	switch env.Kind {
	case KindOffline:
		return NewOfflinePort(), nil
	case KindEnttec:
		return NewEnttecPort(env.Name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPortKind, env.Kind)
	}
}
