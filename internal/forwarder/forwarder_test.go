// internal/forwarder/forwarder_test.go
package forwarder

import (
	"errors"
	"testing"

	cfg "github.com/tamzrod/sensorwire/internal/config"
	"github.com/tamzrod/sensorwire/internal/packet"
)

// ---- fake endpoint client ----

type fakeEndpointClient struct {
	writes []writeCall
	fail   error
}

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

func (f *fakeEndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail != nil {
		return f.fail
	}
	f.writes = append(f.writes, writeCall{unitID: unitID, addr: addr, regs: regs})
	return nil
}

func testPlan() Plan {
	return Plan{
		UnitID: 7,
		Slaves: map[uint8]SlaveMapping{
			1: {BaseAddress: 100, Quantity: 8},
		},
	}
}

// ---- tests ----

func TestForward_Int8Packing(t *testing.T) {
	fake := &fakeEndpointClient{}
	f, err := New(testPlan(), fake)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	written, err := f.Forward(packet.Packet{
		SlaveAddress: 1,
		Type:         packet.Int8,
		Values:       []float64{25, 60, 99},
	})
	if err != nil || !written {
		t.Fatalf("Forward written=%v err=%v", written, err)
	}

	w := fake.writes[0]
	if w.unitID != 7 || w.addr != 100 {
		t.Fatalf("write unit=%d addr=%d, want 7/100", w.unitID, w.addr)
	}
	want := []uint16{25, 60, 99}
	if len(w.regs) != len(want) {
		t.Fatalf("got %d registers, want %d", len(w.regs), len(want))
	}
	for i := range want {
		if w.regs[i] != want[i] {
			t.Fatalf("regs[%d]=%d, want %d", i, w.regs[i], want[i])
		}
	}
}

func TestForward_Float32Packing(t *testing.T) {
	fake := &fakeEndpointClient{}
	f, err := New(testPlan(), fake)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	// 3.25 = 0x40500000
	written, err := f.Forward(packet.Packet{
		SlaveAddress: 1,
		Type:         packet.Float32,
		Values:       []float64{3.25},
	})
	if err != nil || !written {
		t.Fatalf("Forward written=%v err=%v", written, err)
	}

	regs := fake.writes[0].regs
	if len(regs) != 2 || regs[0] != 0x4050 || regs[1] != 0x0000 {
		t.Fatalf("regs=%04X, want [4050 0000]", regs)
	}
}

func TestForward_Float64Packing(t *testing.T) {
	fake := &fakeEndpointClient{}
	f, err := New(testPlan(), fake)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	// 1.0 = 0x3FF0000000000000
	written, err := f.Forward(packet.Packet{
		SlaveAddress: 1,
		Type:         packet.Float64,
		Values:       []float64{1.0},
	})
	if err != nil || !written {
		t.Fatalf("Forward written=%v err=%v", written, err)
	}

	regs := fake.writes[0].regs
	want := []uint16{0x3FF0, 0x0000, 0x0000, 0x0000}
	if len(regs) != len(want) {
		t.Fatalf("got %d registers, want 4", len(regs))
	}
	for i := range want {
		if regs[i] != want[i] {
			t.Fatalf("regs[%d]=%04X, want %04X", i, regs[i], want[i])
		}
	}
}

func TestForward_UnmappedSlaveIsSkipped(t *testing.T) {
	fake := &fakeEndpointClient{}
	f, err := New(testPlan(), fake)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	written, err := f.Forward(packet.Packet{
		SlaveAddress: 99,
		Type:         packet.Int8,
		Values:       []float64{1},
	})
	if err != nil {
		t.Fatalf("Forward err=%v", err)
	}
	if written {
		t.Fatalf("unmapped slave was written")
	}
	if len(fake.writes) != 0 {
		t.Fatalf("unexpected write: %+v", fake.writes)
	}
}

func TestForward_SpanOverflowWritesNothing(t *testing.T) {
	fake := &fakeEndpointClient{}
	f, err := New(testPlan(), fake) // slave 1 reserves 8 registers
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	// 3 float64 values need 12 registers.
	written, err := f.Forward(packet.Packet{
		SlaveAddress: 1,
		Type:         packet.Float64,
		Values:       []float64{1, 2, 3},
	})
	if err == nil {
		t.Fatalf("expected span overflow error")
	}
	if written || len(fake.writes) != 0 {
		t.Fatalf("overflowing packet was written")
	}
}

func TestBuildPlan(t *testing.T) {
	plan, err := BuildPlan(&cfg.ForwardConfig{
		UnitID: 3,
		Slaves: []cfg.SlaveConfig{
			{SlaveAddress: 1, BaseAddress: 0, Quantity: 10},
			{SlaveAddress: 2, BaseAddress: 10, Quantity: 20},
		},
	})
	if err != nil {
		t.Fatalf("BuildPlan err=%v", err)
	}
	if plan.UnitID != 3 || len(plan.Slaves) != 2 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if m := plan.Slaves[2]; m.BaseAddress != 10 || m.Quantity != 20 {
		t.Fatalf("slave 2 mapping: %+v", m)
	}

	if _, err := BuildPlan(nil); err == nil {
		t.Fatalf("expected error for nil forward config")
	}
}

func TestForward_ClientErrorPropagates(t *testing.T) {
	fake := &fakeEndpointClient{fail: errors.New("connection reset")}
	f, err := New(testPlan(), fake)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	written, err := f.Forward(packet.Packet{
		SlaveAddress: 1,
		Type:         packet.Int8,
		Values:       []float64{1},
	})
	if err == nil || written {
		t.Fatalf("written=%v err=%v, want propagated error", written, err)
	}
}
