package socktype

import "testing"

func TestRoleNameTable(t *testing.T) {
	want := []string{"PAIR", "PUB", "SUB", "REQ", "REP", "DEALER", "ROUTER", "PULL", "PUSH",
		"XPUB", "XSUB", "STREAM", "SERVER", "CLIENT", "RADIO", "DISH", "GATHER", "SCATTER", "DGRAM"}
	for i, name := range want {
		if got := Type(i).Name(); got != name {
			t.Fatalf("Type(%d).Name()=%q want %q", i, got, name)
		}
		parsed, ok := Parse(name)
		if !ok || parsed != Type(i) {
			t.Fatalf("Parse(%q)=%v,%v want %d", name, parsed, ok, i)
		}
	}
	if Type(19).Valid() || Type(-1).Valid() {
		t.Fatalf("out of range codes reported valid")
	}
	if _, ok := Parse("router"); ok {
		t.Fatalf("Parse is expected to be case-sensitive")
	}
}

func TestNameInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid type")
		}
	}()
	_ = Type(42).Name()
}

func TestCompatibleSpotChecks(t *testing.T) {
	cases := []struct {
		local Type
		peer  string
		want  bool
	}{
		{Req, "REP", true},
		{Req, "PUB", false},
		{Pair, "PAIR", true},
		{Stream, "STREAM", false},
		{Router, "ROUTER", true},
		{Router, "router", false},
		{Pub, "XSUB", true},
		{Sub, "SUB", false},
		{Dgram, "DGRAM", true},
		{Type(99), "PAIR", false},
	}
	for _, tc := range cases {
		if got := Compatible(tc.local, tc.peer); got != tc.want {
			t.Fatalf("Compatible(%v, %q)=%v want %v", tc.local, tc.peer, got, tc.want)
		}
	}
}

func TestCompatibleIsSymmetric(t *testing.T) {
	for local := Pair; local <= Dgram; local++ {
		for peer := Pair; peer <= Dgram; peer++ {
			if Compatible(local, peer.Name()) != Compatible(peer, local.Name()) {
				t.Fatalf("asymmetric pair %v/%v", local, peer)
			}
		}
	}
}

func TestStreamAcceptsNothing(t *testing.T) {
	for peer := Pair; peer <= Dgram; peer++ {
		if Compatible(Stream, peer.Name()) {
			t.Fatalf("STREAM accepted %v", peer)
		}
	}
	if len(Peers(Stream)) != 0 {
		t.Fatalf("expected no peers for STREAM")
	}
}

func TestSendsIdentity(t *testing.T) {
	for typ := Pair; typ <= Dgram; typ++ {
		want := typ == Req || typ == Dealer || typ == Router
		if typ.SendsIdentity() != want {
			t.Fatalf("%v SendsIdentity=%v", typ, !want)
		}
	}
}
