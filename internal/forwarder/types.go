// internal/forwarder/types.go
package forwarder

import "github.com/tamzrod/sensorwire/internal/packet"

// SlaveMapping is the register span reserved for one sensor slave.
type SlaveMapping struct {
	BaseAddress uint16
	Quantity    uint16
}

// Plan is the fully-built forwarding plan for one Modbus target.
type Plan struct {
	UnitID uint8
	Slaves map[uint8]SlaveMapping
}

// Forwarder delivers decoded packets into target registers.
// The boolean reports whether anything was written: packets from slaves the
// plan does not map are skipped, not failed.
type Forwarder interface {
	Forward(p packet.Packet) (bool, error)
}
