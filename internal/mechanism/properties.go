package mechanism

import (
	"github.com/danmuck/zmtpmeta/internal/protocol"
	"github.com/danmuck/zmtpmeta/internal/protocol/msg"
	"github.com/danmuck/zmtpmeta/internal/protocol/property"
)

// BasicPropertiesLen returns the encoded size of the properties written by
// WriteBasicProperties.
func (m *Mechanism) BasicPropertiesLen() int {
	n := property.EncodedLen(protocol.PropertySocketType, len(m.options.SocketType.Name()))
	if m.options.SocketType.SendsIdentity() {
		n += property.EncodedLen(protocol.PropertyIdentity, len(m.options.RoutingID))
	}
	return n
}

// WriteBasicProperties writes Socket-Type and, for REQ, DEALER and ROUTER
// sockets, Identity into buf.
func (m *Mechanism) WriteBasicProperties(buf []byte) (int, error) {
	n, err := property.Encode(buf, protocol.PropertySocketType, []byte(m.options.SocketType.Name()))
	if err != nil {
		return 0, err
	}
	if m.options.SocketType.SendsIdentity() {
		w, err := property.Encode(buf[n:], protocol.PropertyIdentity, m.options.RoutingID)
		if err != nil {
			return 0, err
		}
		n += w
	}
	return n, nil
}

// MakeCommandWithBasicProperties builds a command message made of prefix
// followed by the basic properties.
func (m *Mechanism) MakeCommandWithBasicProperties(prefix []byte) (*msg.Msg, error) {
	out := msg.NewSized(len(prefix) + m.BasicPropertiesLen())
	buf := out.Data()
	copy(buf, prefix)
	if _, err := m.WriteBasicProperties(buf[len(prefix):]); err != nil {
		return nil, err
	}
	out.SetFlags(msg.Command)
	return out, nil
}
