package socktype

// peers lists, for each local role, the peer role names it accepts. Roles
// without an entry (STREAM) accept nothing.
var peers = map[Type][]string{
	Pair:    {"PAIR"},
	Req:     {"REP", "ROUTER"},
	Rep:     {"REQ", "DEALER"},
	Dealer:  {"REP", "DEALER", "ROUTER"},
	Router:  {"REQ", "DEALER", "ROUTER"},
	Push:    {"PULL"},
	Pull:    {"PUSH"},
	Pub:     {"SUB", "XSUB"},
	Sub:     {"PUB", "XPUB"},
	XPub:    {"SUB", "XSUB"},
	XSub:    {"PUB", "XPUB"},
	Server:  {"CLIENT"},
	Client:  {"SERVER"},
	Radio:   {"DISH"},
	Dish:    {"RADIO"},
	Gather:  {"SCATTER"},
	Scatter: {"GATHER"},
	Dgram:   {"DGRAM"},
}

// Compatible reports whether a local role may talk to a peer that declared
// the role name peer. The comparison is exact and case-sensitive.
func Compatible(local Type, peer string) bool {
	for _, name := range peers[local] {
		if name == peer {
			return true
		}
	}
	return false
}

// Peers returns the role names local accepts.
func Peers(local Type) []string {
	out := make([]string, len(peers[local]))
	copy(out, peers[local])
	return out
}
