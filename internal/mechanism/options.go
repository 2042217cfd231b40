package mechanism

import (
	"github.com/danmuck/zmtpmeta/internal/protocol/socktype"
	"github.com/rs/zerolog"
)

// Options is the per-socket configuration the handshake reads.
type Options struct {
	SocketType socktype.Type
	// RoutingID is advertised as the Identity property by REQ, DEALER and
	// ROUTER sockets. It may be empty.
	RoutingID []byte
	// RecvRoutingID stores the peer's Identity property when set.
	RecvRoutingID bool
}

// Option customizes a Mechanism.
type Option func(*Mechanism)

// WithValidator installs the mechanism-specific property check.
func WithValidator(v Validator) Option {
	return func(m *Mechanism) {
		if v != nil {
			m.validator = v
		}
	}
}

// WithLogger sets the logger used for handshake diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Mechanism) {
		m.log = l
	}
}
