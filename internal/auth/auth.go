// Package auth provides reusable property validators for security
// mechanisms built on the handshake base.
//
// It intentionally avoids policy decisions and storage concerns.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/danmuck/zmtpmeta/internal/mechanism"
	"github.com/danmuck/zmtpmeta/internal/protocol"
)

// StaticProperty rejects the property Name unless its value equals Value.
// Other properties pass. It is intended for development and tests.
type StaticProperty struct {
	Name  string
	Value []byte
}

func (s StaticProperty) ValidateProperty(name string, value []byte) error {
	if name != s.Name {
		return nil
	}
	if len(s.Value) == 0 || subtle.ConstantTimeCompare(s.Value, value) != 1 {
		return fmt.Errorf("%w: %s mismatch", protocol.ErrPropertyRejected, name)
	}
	return nil
}

// Deny rejects every property whose name is listed.
type Deny []string

func (d Deny) ValidateProperty(name string, _ []byte) error {
	for _, n := range d {
		if n == name {
			return fmt.Errorf("%w: %s not allowed", protocol.ErrPropertyRejected, name)
		}
	}
	return nil
}

// Chain runs validators in order and stops at the first rejection.
type Chain []mechanism.Validator

func (c Chain) ValidateProperty(name string, value []byte) error {
	for _, v := range c {
		if err := v.ValidateProperty(name, value); err != nil {
			return err
		}
	}
	return nil
}
