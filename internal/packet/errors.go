// internal/packet/errors.go
package packet

import "errors"

// Error taxonomy. Every failure wraps exactly one of these sentinels so
// callers can branch with errors.Is without parsing messages.
var (
	// ErrInvalidArgument: count outside [1,255] or other bad constructor input.
	ErrInvalidArgument = errors.New("packet: invalid argument")

	// ErrTypeMismatch: append operation type differs from the builder's type.
	ErrTypeMismatch = errors.New("packet: type mismatch")

	// ErrCapacityExceeded: append past the declared count or the byte ceiling.
	ErrCapacityExceeded = errors.New("packet: capacity exceeded")

	// ErrIncompletePacket: serialize before the payload is fully populated.
	ErrIncompletePacket = errors.New("packet: incomplete packet")

	// ErrUnknownType: type code outside the closed DataType set.
	ErrUnknownType = errors.New("packet: unknown data type")

	// ErrPayloadSize: decoded byte count does not equal count*width exactly.
	ErrPayloadSize = errors.New("packet: payload size mismatch")

	// ErrMalformedHex: textual input is not valid hex pairs.
	ErrMalformedHex = errors.New("packet: malformed hex input")
)
