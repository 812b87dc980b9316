// internal/forwarder/forwarder.go
package forwarder

import (
	"errors"
	"fmt"
	"math"

	"github.com/tamzrod/sensorwire/internal/packet"
)

// endpointClient is the exact contract the forwarder uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

type registerForwarder struct {
	plan   Plan
	client endpointClient
}

// New creates a forwarder over a connected endpoint client.
func New(plan Plan, client endpointClient) (Forwarder, error) {
	if client == nil {
		return nil, errors.New("forwarder: client required")
	}
	if len(plan.Slaves) == 0 {
		return nil, errors.New("forwarder: at least one slave mapping required")
	}
	return &registerForwarder{plan: plan, client: client}, nil
}

// Forward writes one packet's values into the slave's reserved span.
// All-or-nothing: a packet larger than its reservation writes nothing.
func (f *registerForwarder) Forward(p packet.Packet) (bool, error) {
	m, ok := f.plan.Slaves[p.SlaveAddress]
	if !ok {
		return false, nil
	}

	regs := packValues(p)
	if len(regs) > int(m.Quantity) {
		return false, fmt.Errorf(
			"forwarder: slave %d: packet needs %d registers, %d reserved",
			p.SlaveAddress, len(regs), m.Quantity,
		)
	}

	if err := f.client.WriteRegisters(f.plan.UnitID, m.BaseAddress, regs); err != nil {
		return false, fmt.Errorf("forwarder: slave %d: %w", p.SlaveAddress, err)
	}
	return true, nil
}

// packValues lays packet values into registers, big-endian word order:
// int8 -> 1 register, float32 -> 2, float64 -> 4.
func packValues(p packet.Packet) []uint16 {
	var out []uint16

	switch p.Type {
	case packet.Int8:
		out = make([]uint16, 0, len(p.Values))
		for _, v := range p.Values {
			out = append(out, uint16(uint8(v)))
		}

	case packet.Float32:
		out = make([]uint16, 0, 2*len(p.Values))
		for _, v := range p.Values {
			bits := math.Float32bits(float32(v))
			out = append(out, uint16(bits>>16), uint16(bits))
		}

	case packet.Float64:
		out = make([]uint16, 0, 4*len(p.Values))
		for _, v := range p.Values {
			bits := math.Float64bits(v)
			out = append(out,
				uint16(bits>>48), uint16(bits>>32),
				uint16(bits>>16), uint16(bits))
		}
	}

	return out
}
