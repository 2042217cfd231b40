// Package protocol owns the handshake metadata wire contract.
//
// Ownership boundary:
// - property (tag-length-value) primitives
// - socket type names and the compatibility matrix
// - message buffers handed to the session layer
// - shared error kinds
package protocol
