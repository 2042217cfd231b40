// Package msg is the message buffer handed between the handshake core and
// the session layer.
package msg

import (
	"errors"
	"fmt"
)

// Flags mark how the session layer should deliver a message.
type Flags uint8

const (
	More      Flags = 0x01
	Command   Flags = 0x02
	RoutingID Flags = 0x40
)

const MaxCommandNameLen = 255

var (
	ErrCommandNameTooLong = errors.New("msg: command name too long")
	ErrShortCommand       = errors.New("msg: short command body")
)

// Msg is an owned, exactly sized byte buffer plus delivery flags.
type Msg struct {
	data  []byte
	flags Flags
}

// NewSized allocates a zeroed message of n bytes.
func NewSized(n int) *Msg {
	return &Msg{data: make([]byte, n)}
}

// NewFrom allocates a message holding a copy of b.
func NewFrom(b []byte) *Msg {
	m := NewSized(len(b))
	copy(m.data, b)
	return m
}

// Data returns the writable backing buffer.
func (m *Msg) Data() []byte {
	return m.data
}

func (m *Msg) Size() int {
	return len(m.data)
}

func (m *Msg) Flags() Flags {
	return m.flags
}

func (m *Msg) SetFlags(f Flags) {
	m.flags |= f
}

func (m *Msg) ResetFlags(f Flags) {
	m.flags &^= f
}

func (m *Msg) IsRoutingID() bool {
	return m.flags&RoutingID != 0
}

func (m *Msg) IsCommand() bool {
	return m.flags&Command != 0
}

// CommandPrefix returns the length-prefixed command name that starts every
// handshake command body, e.g. "\x05READY".
func CommandPrefix(name string) ([]byte, error) {
	if len(name) > MaxCommandNameLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrCommandNameTooLong, len(name))
	}
	b := make([]byte, 1+len(name))
	b[0] = byte(len(name))
	copy(b[1:], name)
	return b, nil
}

// SplitCommand separates a command body into its name and the remaining
// bytes (the metadata section for READY-style commands).
func SplitCommand(body []byte) (string, []byte, error) {
	if len(body) < 1 {
		return "", nil, ErrShortCommand
	}
	n := int(body[0])
	if len(body)-1 < n {
		return "", nil, fmt.Errorf("%w: name needs %d bytes, have %d", ErrShortCommand, n, len(body)-1)
	}
	return string(body[1 : 1+n]), body[1+n:], nil
}
