// internal/packet/serialize.go
package packet

import "fmt"

//
// ---- wire layout (LOCKED) ----
//
// [0]   slave address  u8
// [1]   data type      u8   (1 = int8, 2 = float32, 3 = float64)
// [2]   count          u8   (1..255)
// [3..] payload        count * width bytes, little-endian elements
//
// No delimiter, length prefix, or checksum. Framing belongs to the transport.
//

// Serialize flattens a fully populated builder into wire bytes.
// No side effects on the builder.
func (b *Builder) Serialize() ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil builder", ErrInvalidArgument)
	}

	expected := b.count * b.dataType.Width()
	if len(b.payload) != expected {
		return nil, fmt.Errorf("%w: %d of %d elements appended",
			ErrIncompletePacket, b.Filled(), b.count)
	}

	out := make([]byte, HeaderSize, HeaderSize+len(b.payload))
	out[0] = b.slaveAddress
	out[1] = byte(b.dataType)
	out[2] = byte(b.count)

	return append(out, b.payload...), nil
}
