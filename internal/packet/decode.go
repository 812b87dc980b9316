// internal/packet/decode.go
package packet

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// Decode recovers a Packet from wire bytes.
// Pure and total: every input yields either a Packet or a specific error.
// Safe for concurrent callers; it reads nothing outside its argument.
func Decode(data []byte) (Packet, error) {
	if len(data) < HeaderSize {
		return Packet{}, fmt.Errorf("%w: %d bytes, header needs %d",
			ErrPayloadSize, len(data), HeaderSize)
	}

	slave := data[0]
	dt := DataType(data[1])
	count := int(data[2])

	// The raw type byte is trusted no further than this lookup.
	width := dt.Width()
	if width == 0 {
		return Packet{}, fmt.Errorf("%w: code 0x%02X", ErrUnknownType, data[1])
	}

	if count < 1 {
		return Packet{}, fmt.Errorf("%w: count 0", ErrInvalidArgument)
	}

	payload := data[HeaderSize:]
	expected := count * width
	if len(payload) != expected {
		return Packet{}, fmt.Errorf("%w: got %d payload bytes, want %d (type=%s count=%d)",
			ErrPayloadSize, len(payload), expected, dt, count)
	}

	values := make([]float64, count)
	for i := 0; i < count; i++ {
		chunk := payload[i*width : (i+1)*width]
		switch dt {
		case Int8:
			values[i] = float64(chunk[0])
		case Float32:
			values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(chunk)))
		case Float64:
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(chunk))
		}
	}

	return Packet{
		SlaveAddress: slave,
		Type:         dt,
		Values:       values,
	}, nil
}

// DecodeHex decodes a packet from its textual hex form: case-insensitive
// digit pairs, no separators. Bad hex is reported as ErrMalformedHex,
// distinct from a structurally invalid packet.
func DecodeHex(s string) (Packet, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Packet{}, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return Decode(raw)
}
