// internal/listener/serial/port.go
package serial

import (
	"errors"
	"time"

	gserial "github.com/goburrow/serial"
)

// Port is one open serial device.
// It adapts goburrow/serial to the listener's Port contract:
// a read timeout is a quiet window, not an error.
type Port struct {
	p gserial.Port
}

// Config is minimal transport config.
type Config struct {
	Device   string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string // N, E, O
	Timeout  time.Duration
}

// Open opens the serial device.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, errors.New("serial: device required")
	}

	p, err := gserial.Open(&gserial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Port{p: p}, nil
}

// Read returns the next burst of bytes. A timeout maps to (n, nil) so the
// caller treats it as silence on the line.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.p.Read(b)
	if errors.Is(err, gserial.ErrTimeout) {
		return n, nil
	}
	return n, err
}

// Write sends bytes to the device. Used by the producer-side CLI.
func (p *Port) Write(b []byte) (int, error) {
	return p.p.Write(b)
}

// Close closes the device.
func (p *Port) Close() error {
	if p == nil || p.p == nil {
		return nil
	}
	return p.p.Close()
}
