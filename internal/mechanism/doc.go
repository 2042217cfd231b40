// Package mechanism is the handshake metadata base shared by security
// mechanisms.
//
// Ownership boundary:
// - basic outgoing properties (Socket-Type, Identity)
// - incoming property dispatch and socket type compatibility
// - peer routing id and user id storage
// - ZAP-facing and ZMTP-facing property dictionaries
//
// Concrete mechanisms plug in through Validator. A Mechanism belongs to one
// connection's handshake and is not safe for concurrent use.
package mechanism
