// internal/listener/listener.go
package listener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/sensorwire/internal/packet"
)

// MaxFrame is the largest possible wire packet:
// header plus 255 float64 elements.
const MaxFrame = packet.HeaderSize + packet.MaxCount*8

// Port abstracts the byte source the listener drains.
// Read returns the next burst of received bytes. (0, nil) means no data
// arrived within the port's read window; any error is fatal to the port.
type Port interface {
	Read(p []byte) (int, error)
	Close() error
}

// Event is the outcome of one packet candidate.
// Exactly one of Packet or Err is meaningful; Raw is always the bytes seen.
type Event struct {
	At     time.Time
	Raw    []byte
	Packet packet.Packet
	Err    error
}

// Listener turns serial read bursts into decoded packets.
// One read burst = one packet candidate; the codec does no stream
// reassembly, framing is the transport's job.
type Listener struct {
	port Port
}

// New creates a listener over an open port.
func New(port Port) (*Listener, error) {
	if port == nil {
		return nil, errors.New("listener: port required")
	}
	return &Listener{port: port}, nil
}

// Run drains the port until ctx is cancelled or the port dies.
// Decode failures are emitted as events with the raw bytes, never dropped.
// A port error emits one final event and returns.
func (l *Listener) Run(ctx context.Context, out chan<- Event) {
	buf := make([]byte, MaxFrame)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := l.port.Read(buf)
		if err != nil {
			l.emit(ctx, out, Event{
				At:  time.Now(),
				Err: fmt.Errorf("listener: read: %w", err),
			})
			return
		}
		if n == 0 {
			continue
		}

		raw := make([]byte, n)
		copy(raw, buf[:n])

		pkt, derr := packet.Decode(raw)
		l.emit(ctx, out, Event{
			At:     time.Now(),
			Raw:    raw,
			Packet: pkt,
			Err:    derr,
		})
	}
}

func (l *Listener) emit(ctx context.Context, out chan<- Event, ev Event) {
	select {
	case <-ctx.Done():
	case out <- ev:
	}
}
