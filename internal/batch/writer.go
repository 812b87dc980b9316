// internal/batch/writer.go
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tamzrod/sensorwire/internal/packet"
)

// WritePackets emits decoded packets as CSV rows in the same
// slave,type,v1,... shape ReadPackets consumes.
func WritePackets(w io.Writer, packets []packet.Packet) error {
	cw := csv.NewWriter(w)

	for _, p := range packets {
		record := make([]string, 0, 2+len(p.Values))
		record = append(record,
			strconv.FormatUint(uint64(p.SlaveAddress), 10),
			p.Type.String(),
		)

		for _, v := range p.Values {
			record = append(record, formatValue(p.Type, v))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("batch: write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("batch: flush: %w", err)
	}
	return nil
}

// formatValue renders a value at its type's precision so a write/read cycle
// reproduces the original bits.
func formatValue(dt packet.DataType, v float64) string {
	switch dt {
	case packet.Int8:
		return strconv.FormatUint(uint64(uint8(v)), 10)
	case packet.Float32:
		return strconv.FormatFloat(v, 'g', -1, 32)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
