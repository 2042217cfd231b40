package protocol

import "errors"

var (
	// ErrContractViolation reports an encode-time precondition breach. Only
	// locally built data reaches the encoder, so this is always a caller bug.
	ErrContractViolation = errors.New("protocol: contract violation")
	// ErrProtocol reports a property list that does not consume its input exactly.
	ErrProtocol          = errors.New("protocol: malformed property list")
	ErrInvalidSocketType = errors.New("protocol: invalid socket type")
	// ErrPropertyRejected is wrapped by mechanism validators that refuse a property.
	ErrPropertyRejected = errors.New("protocol: property rejected")
)
