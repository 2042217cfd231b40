package mechanism

import (
	"errors"
	"fmt"

	"github.com/danmuck/zmtpmeta/internal/observability"
	"github.com/danmuck/zmtpmeta/internal/protocol"
	"github.com/danmuck/zmtpmeta/internal/protocol/property"
	"github.com/danmuck/zmtpmeta/internal/protocol/socktype"
)

// ParseMetadata decodes a received property list and dispatches each
// property as it is read. Properties land in the ZAP dictionary when zap is
// set, otherwise in the ZMTP dictionary.
//
// The first failure stops the parse: ErrInvalidSocketType for an
// incompatible peer, the Validator's error for a rejected property, and
// ErrProtocol when the list does not consume data exactly. Dictionary
// contents must not be trusted after a failure.
func (m *Mechanism) ParseMetadata(data []byte, zap bool) error {
	dst := m.zmtpProperties
	if zap {
		dst = m.zapProperties
	}

	dec := property.NewDecoder(data)
	for {
		p, ok := dec.Next()
		if !ok {
			break
		}
		if err := m.dispatch(p); err != nil {
			m.log.Warn().Err(err).Str("property", p.Name).Bool("zap", zap).Msg("handshake metadata rejected")
			m.record(err)
			return err
		}
		dst[p.Name] = string(p.Value)
		observability.RecordProperty(m.options.SocketType.Name(), zap)
	}
	if err := dec.Err(); err != nil {
		m.log.Warn().Err(err).Int("length", len(data)).Bool("zap", zap).Msg("handshake metadata malformed")
		m.record(err)
		return err
	}
	m.record(nil)
	return nil
}

func (m *Mechanism) record(err error) {
	result := observability.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, protocol.ErrInvalidSocketType):
		result = observability.ResultInvalidSocketType
	case errors.Is(err, protocol.ErrProtocol):
		result = observability.ResultProtocolError
	case errors.Is(err, protocol.ErrPropertyRejected):
		result = observability.ResultPropertyRejected
	default:
		result = observability.ResultError
	}
	observability.RecordParse(m.options.SocketType.Name(), result)
}

func (m *Mechanism) dispatch(p property.Property) error {
	switch {
	case p.Name == protocol.PropertyIdentity && m.options.RecvRoutingID:
		m.SetPeerRoutingID(p.Value)
		m.log.Debug().Hex("routing_id", p.Value).Msg("peer routing id stored")
	case p.Name == protocol.PropertySocketType:
		peer := string(p.Value)
		if !socktype.Compatible(m.options.SocketType, peer) {
			return fmt.Errorf("%w: %s cannot talk to %q", protocol.ErrInvalidSocketType, m.options.SocketType, peer)
		}
		m.log.Debug().Str("peer_socket_type", peer).Msg("peer socket type accepted")
	default:
		if err := m.validator.ValidateProperty(p.Name, p.Value); err != nil {
			return err
		}
		m.log.Debug().Str("property", p.Name).Int("value_len", len(p.Value)).Msg("property accepted")
	}
	return nil
}
