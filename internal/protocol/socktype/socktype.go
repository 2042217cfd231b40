// Package socktype holds the fixed socket role table and the peer
// compatibility matrix checked during the handshake.
package socktype

import "fmt"

// Type is a socket role code. Valid codes are 0..18.
type Type int

const (
	Pair Type = iota
	Pub
	Sub
	Req
	Rep
	Dealer
	Router
	Pull
	Push
	XPub
	XSub
	Stream
	Server
	Client
	Radio
	Dish
	Gather
	Scatter
	Dgram
)

var names = [...]string{
	Pair:    "PAIR",
	Pub:     "PUB",
	Sub:     "SUB",
	Req:     "REQ",
	Rep:     "REP",
	Dealer:  "DEALER",
	Router:  "ROUTER",
	Pull:    "PULL",
	Push:    "PUSH",
	XPub:    "XPUB",
	XSub:    "XSUB",
	Stream:  "STREAM",
	Server:  "SERVER",
	Client:  "CLIENT",
	Radio:   "RADIO",
	Dish:    "DISH",
	Gather:  "GATHER",
	Scatter: "SCATTER",
	Dgram:   "DGRAM",
}

func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(names)
}

// Name returns the canonical wire name of t. It panics for invalid codes;
// callers validate roles when loading configuration.
func (t Type) Name() string {
	if !t.Valid() {
		panic(fmt.Sprintf("socktype: invalid socket type %d", int(t)))
	}
	return names[t]
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return names[t]
}

// Parse maps a canonical role name to its Type.
func Parse(name string) (Type, bool) {
	for i, n := range names {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// SendsIdentity reports whether t advertises its routing id in the handshake.
func (t Type) SendsIdentity() bool {
	return t == Req || t == Dealer || t == Router
}
