package protocol

// Well-known property names exchanged during the handshake.
const (
	PropertySocketType = "Socket-Type"
	PropertyIdentity   = "Identity"
	PropertyUserID     = "User-Id"
)
