package mechanism

import (
	"fmt"

	"github.com/danmuck/zmtpmeta/internal/protocol"
	"github.com/danmuck/zmtpmeta/internal/protocol/msg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mechanism holds the handshake state of one connection.
type Mechanism struct {
	options   Options
	validator Validator
	log       zerolog.Logger

	routingID []byte
	userID    []byte

	zapProperties  Metadata
	zmtpProperties Metadata
}

// New returns a Mechanism for a socket configured with options.
func New(options Options, opts ...Option) (*Mechanism, error) {
	if !options.SocketType.Valid() {
		return nil, fmt.Errorf("%w: socket type %d", protocol.ErrContractViolation, int(options.SocketType))
	}
	m := &Mechanism{
		options:        options,
		validator:      AcceptAll{},
		log:            log.Logger,
		zapProperties:  make(Metadata),
		zmtpProperties: make(Metadata),
	}
	m.options.RoutingID = cloneBytes(options.RoutingID)
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With().Str("component", "mechanism").Stringer("socket_type", m.options.SocketType).Logger()
	return m, nil
}

func (m *Mechanism) Options() Options {
	out := m.options
	out.RoutingID = cloneBytes(m.options.RoutingID)
	return out
}

// SetPeerRoutingID replaces the stored peer routing id.
func (m *Mechanism) SetPeerRoutingID(id []byte) {
	m.routingID = cloneBytes(id)
}

// PeerRoutingID packages the stored peer routing id as a routing-id message.
func (m *Mechanism) PeerRoutingID() *msg.Msg {
	out := msg.NewFrom(m.routingID)
	out.SetFlags(msg.RoutingID)
	return out
}

// SetUserID records the user id confirmed by a concrete mechanism and
// exposes it to ZAP as the User-Id property.
func (m *Mechanism) SetUserID(id []byte) {
	m.userID = cloneBytes(id)
	m.zapProperties[protocol.PropertyUserID] = string(id)
}

// UserID returns the stored user id, empty if none was set.
func (m *Mechanism) UserID() []byte {
	return cloneBytes(m.userID)
}

// ZAPProperties returns a copy of the properties collected for ZAP.
func (m *Mechanism) ZAPProperties() Metadata {
	return m.zapProperties.clone()
}

// ZMTPProperties returns a copy of the properties negotiated on the wire.
func (m *Mechanism) ZMTPProperties() Metadata {
	return m.zmtpProperties.clone()
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
