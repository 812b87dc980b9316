// internal/packet/builder.go
package packet

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Builder accumulates one outgoing packet.
// It is owned by a single caller for its whole init -> append -> serialize
// life; appends are not safe for concurrent use.
type Builder struct {
	slaveAddress uint8
	dataType     DataType
	count        int

	// payload holds only completed elements. An append either commits all
	// width bytes of one element or commits nothing.
	payload []byte
}

// NewBuilder starts a packet for count elements of type dt.
// The data type is validated eagerly: an unknown type can never reach an
// append or serialize call.
func NewBuilder(slaveAddress uint8, dt DataType, count int) (*Builder, error) {
	if count < 1 || count > MaxCount {
		return nil, fmt.Errorf("%w: count %d out of range [1,%d]", ErrInvalidArgument, count, MaxCount)
	}
	if dt.Width() == 0 {
		return nil, fmt.Errorf("%w: code 0x%02X", ErrUnknownType, uint8(dt))
	}
	return &Builder{
		slaveAddress: slaveAddress,
		dataType:     dt,
		count:        count,
		payload:      make([]byte, 0, count*dt.Width()),
	}, nil
}

// Filled returns the number of completed elements.
func (b *Builder) Filled() int {
	return len(b.payload) / b.dataType.Width()
}

// AppendInt8 appends one unsigned byte element.
func (b *Builder) AppendInt8(v uint8) error {
	if err := b.checkAppend(Int8); err != nil {
		return err
	}
	b.payload = append(b.payload, v)
	return nil
}

// AppendFloat32 appends one IEEE-754 single, little-endian.
func (b *Builder) AppendFloat32(v float32) error {
	if err := b.checkAppend(Float32); err != nil {
		return err
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	b.payload = append(b.payload, buf[:]...)
	return nil
}

// AppendFloat64 appends one IEEE-754 double, little-endian.
func (b *Builder) AppendFloat64(v float64) error {
	if err := b.checkAppend(Float64); err != nil {
		return err
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	b.payload = append(b.payload, buf[:]...)
	return nil
}

// checkAppend enforces the append invariants in order:
// type match, declared count, absolute byte ceiling.
func (b *Builder) checkAppend(dt DataType) error {
	if b == nil {
		return fmt.Errorf("%w: nil builder", ErrInvalidArgument)
	}
	if b.dataType != dt {
		return fmt.Errorf("%w: packet is %s, append is %s", ErrTypeMismatch, b.dataType, dt)
	}

	width := b.dataType.Width()

	// Declared count first: under-declaring must reject extra appends even
	// though physical buffer space remains.
	if b.Filled() >= b.count {
		return fmt.Errorf("%w: declared count %d reached", ErrCapacityExceeded, b.count)
	}

	// Absolute ceiling second. Unreachable while the count check holds, but
	// the two bounds are not the same expression and are checked separately.
	if len(b.payload)+width > MaxCount*width {
		return fmt.Errorf("%w: payload ceiling %d bytes", ErrCapacityExceeded, MaxCount*width)
	}

	return nil
}
