// internal/batch/reader.go
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tamzrod/sensorwire/internal/packet"
)

// Row format: slave,type,v1,v2,...
// type is one of int8, float32, float64. Every row becomes one wire frame.

// ReadPackets parses CSV rows into serialized frames.
// Strict: the first bad row aborts with its line number; rows before it are
// not returned.
func ReadPackets(r io.Reader) ([][]byte, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length varies with value count

	var frames [][]byte

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}

		line, _ := cr.FieldPos(0)

		frame, err := encodeRow(record)
		if err != nil {
			return nil, fmt.Errorf("batch: line %d: %w", line, err)
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

func encodeRow(record []string) ([]byte, error) {
	if len(record) < 3 {
		return nil, fmt.Errorf("need slave,type and at least one value, got %d fields", len(record))
	}

	slave, err := strconv.ParseUint(record[0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("slave address %q: %w", record[0], err)
	}

	dt, err := ParseDataType(record[1])
	if err != nil {
		return nil, err
	}

	values := record[2:]

	b, err := packet.NewBuilder(uint8(slave), dt, len(values))
	if err != nil {
		return nil, err
	}

	for _, field := range values {
		switch dt {
		case packet.Int8:
			v, err := strconv.ParseUint(field, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("int8 value %q: %w", field, err)
			}
			if err := b.AppendInt8(uint8(v)); err != nil {
				return nil, err
			}

		case packet.Float32:
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("float32 value %q: %w", field, err)
			}
			if err := b.AppendFloat32(float32(v)); err != nil {
				return nil, err
			}

		case packet.Float64:
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("float64 value %q: %w", field, err)
			}
			if err := b.AppendFloat64(v); err != nil {
				return nil, err
			}
		}
	}

	return b.Serialize()
}

// ParseDataType maps a CSV type name to its wire type.
func ParseDataType(name string) (packet.DataType, error) {
	switch name {
	case "int8":
		return packet.Int8, nil
	case "float32":
		return packet.Float32, nil
	case "float64":
		return packet.Float64, nil
	default:
		return 0, fmt.Errorf("unknown type name %q", name)
	}
}
