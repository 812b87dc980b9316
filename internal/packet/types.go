// internal/packet/types.go
package packet

// Sensor packet wire layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- HEADER GEOMETRY ----

// HeaderSize is the fixed header length: slave address, type code, count.
const HeaderSize = 3

// MaxCount is the largest element count a packet may declare.
const MaxCount = 255

// ---- DATA TYPES ----

// DataType is the wire code for one element kind.
// Only the three declared codes exist; everything else is invalid.
type DataType uint8

const (
	// Int8 is a single unsigned byte per element.
	Int8 DataType = 0x01

	// Float32 is an IEEE-754 single, little-endian, 4 bytes per element.
	Float32 DataType = 0x02

	// Float64 is an IEEE-754 double, little-endian, 8 bytes per element.
	Float64 DataType = 0x03
)

// Width returns the element size in bytes, or 0 for an unknown type.
// Callers MUST treat 0 as a hard failure, never as a zero-length element.
func (dt DataType) Width() int {
	switch dt {
	case Int8:
		return 1
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// String returns the type name for logging. Unknown codes keep the raw value.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Packet is one decoded sensor packet.
// It is a plain value: constructed atomically by Decode, never mutated after.
type Packet struct {
	SlaveAddress uint8
	Type         DataType

	// Values holds the decoded elements in wire order.
	// float64 represents every DataType exactly: uint8 and float32 widen
	// without loss, and narrowing a widened float32 recovers the identical
	// bit pattern.
	Values []float64
}

// Count returns the number of decoded elements.
func (p Packet) Count() int { return len(p.Values) }
