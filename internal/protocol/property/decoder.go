package property

import (
	"encoding/binary"
	"fmt"

	"github.com/danmuck/zmtpmeta/internal/protocol"
)

// Decoder walks a property list one property at a time so callers can
// reject a property before the rest of the list is read.
//
// Values returned by Next alias the input buffer.
type Decoder struct {
	buf []byte
}

func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Remaining reports how many input bytes have not been consumed.
func (d *Decoder) Remaining() int {
	return len(d.buf)
}

// Next decodes the next property. It returns false once at most one byte is
// left or when the next property is cut short; header bytes read before the
// cut stay consumed.
func (d *Decoder) Next() (Property, bool) {
	if len(d.buf) <= 1 {
		return Property{}, false
	}

	nameLen := int(d.buf[0])
	d.buf = d.buf[1:]
	if len(d.buf) < nameLen {
		return Property{}, false
	}
	name := string(d.buf[:nameLen])
	d.buf = d.buf[nameLen:]

	if len(d.buf) < 4 {
		return Property{}, false
	}
	valueLen := binary.BigEndian.Uint32(d.buf[:4])
	d.buf = d.buf[4:]
	if uint64(len(d.buf)) < uint64(valueLen) {
		return Property{}, false
	}
	value := d.buf[:valueLen:valueLen]
	d.buf = d.buf[valueLen:]

	return Property{Name: name, Value: value}, true
}

// Err reports protocol.ErrProtocol when input is left over after Next has
// returned false. A single stray byte counts as malformed.
func (d *Decoder) Err() error {
	if len(d.buf) > 0 {
		return fmt.Errorf("%w: %d unconsumed bytes", protocol.ErrProtocol, len(d.buf))
	}
	return nil
}

// DecodeAll decodes a complete property list.
func DecodeAll(b []byte) ([]Property, error) {
	d := NewDecoder(b)
	props := make([]Property, 0, 4)
	for {
		p, ok := d.Next()
		if !ok {
			break
		}
		props = append(props, p)
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return props, nil
}
