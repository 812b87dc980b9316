// internal/config/validate.go
package config

import (
	"fmt"
)

// MaxSlaveQuantity is the largest useful register reservation:
// 255 float64 elements at 4 registers each.
const MaxSlaveQuantity = 255 * 4

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// SERIAL LISTEN VALIDATION
	// ------------------------------------------------------------

	l := cfg.Gateway.Listen

	if l.Device == "" {
		return fmt.Errorf("config: listen.device required")
	}
	// 0 means "use default"; Normalize fills it in.
	if l.BaudRate < 0 {
		return fmt.Errorf("config: listen.baud_rate must not be negative, got %d", l.BaudRate)
	}
	switch l.DataBits {
	case 0, 5, 6, 7, 8:
	default:
		return fmt.Errorf("config: listen.data_bits must be 5-8, got %d", l.DataBits)
	}
	switch l.StopBits {
	case 0, 1, 2:
	default:
		return fmt.Errorf("config: listen.stop_bits must be 1 or 2, got %d", l.StopBits)
	}
	switch l.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("config: listen.parity must be N, E or O, got %q", l.Parity)
	}

	// ------------------------------------------------------------
	// FORWARD TARGET VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	f := cfg.Gateway.Forward
	if f == nil {
		return nil
	}

	if f.Endpoint == "" {
		return fmt.Errorf("config: forward.endpoint required when forward is set")
	}
	if len(f.Slaves) == 0 {
		return fmt.Errorf("config: forward is set but no slaves are mapped")
	}

	type span struct {
		start uint16
		end   uint16
		slave uint8
	}

	seen := make(map[uint8]bool)
	var spans []span

	for _, s := range f.Slaves {
		if seen[s.SlaveAddress] {
			return fmt.Errorf("config: duplicate forward mapping for slave %d", s.SlaveAddress)
		}
		seen[s.SlaveAddress] = true

		if s.Quantity == 0 || s.Quantity > MaxSlaveQuantity {
			return fmt.Errorf(
				"config: slave %d: quantity must be 1-%d, got %d",
				s.SlaveAddress, MaxSlaveQuantity, s.Quantity,
			)
		}

		start := s.BaseAddress
		end := start + s.Quantity - 1
		if end < start {
			return fmt.Errorf(
				"config: slave %d: register span %d+%d wraps past 65535",
				s.SlaveAddress, s.BaseAddress, s.Quantity,
			)
		}

		for _, prev := range spans {
			// overlap check (inclusive)
			if !(end < prev.start || start > prev.end) {
				return fmt.Errorf(
					"config: register overlap: slave %d range=%d-%d overlaps slave %d range=%d-%d",
					s.SlaveAddress, start, end,
					prev.slave, prev.start, prev.end,
				)
			}
		}

		spans = append(spans, span{start: start, end: end, slave: s.SlaveAddress})
	}

	return nil
}
