package property

import (
	"encoding/binary"
	"fmt"

	"github.com/danmuck/zmtpmeta/internal/protocol"
)

const (
	MaxNameLen  = 255
	MaxValueLen = 0x7FFFFFFF

	// HeaderLen is the fixed overhead of one property: name length byte
	// plus the 4-byte value length.
	HeaderLen = 1 + 4
)

// Property is one decoded name/value pair.
type Property struct {
	Name  string
	Value []byte
}

// EncodedLen returns the wire size of a property.
func EncodedLen(name string, valueLen int) int {
	return HeaderLen + len(name) + valueLen
}

// Len returns the wire size of p.
func (p Property) Len() int {
	return EncodedLen(p.Name, len(p.Value))
}

// Encode writes one property at the start of buf and returns the number of
// bytes written. Oversized names or values and a short buf are reported as
// protocol.ErrContractViolation and leave buf untouched.
func Encode(buf []byte, name string, value []byte) (int, error) {
	if len(name) > MaxNameLen {
		return 0, fmt.Errorf("%w: property name is %d bytes (max %d)", protocol.ErrContractViolation, len(name), MaxNameLen)
	}
	if uint64(len(value)) > MaxValueLen {
		return 0, fmt.Errorf("%w: property %q value is %d bytes (max %d)", protocol.ErrContractViolation, name, len(value), MaxValueLen)
	}
	n := EncodedLen(name, len(value))
	if len(buf) < n {
		return 0, fmt.Errorf("%w: property %q needs %d bytes, buffer has %d", protocol.ErrContractViolation, name, n, len(buf))
	}

	buf[0] = byte(len(name))
	off := 1 + copy(buf[1:], name)
	binary.BigEndian.PutUint32(buf[off:off+4], uint32(len(value)))
	copy(buf[off+4:], value)
	return n, nil
}

// Append encodes a property onto the end of dst.
func Append(dst []byte, name string, value []byte) ([]byte, error) {
	start := len(dst)
	need := EncodedLen(name, len(value))
	if cap(dst)-start < need {
		grown := make([]byte, start, start+need)
		copy(grown, dst)
		dst = grown
	}
	n, err := Encode(dst[start:start+need], name, value)
	if err != nil {
		return dst[:start], err
	}
	return dst[:start+n], nil
}
