package msg

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewFromCopies(t *testing.T) {
	src := []byte("abc")
	m := NewFrom(src)
	src[0] = 'x'
	if string(m.Data()) != "abc" {
		t.Fatalf("message aliases source: %q", m.Data())
	}
	if m.Size() != 3 {
		t.Fatalf("size=%d", m.Size())
	}
}

func TestFlags(t *testing.T) {
	m := NewSized(0)
	if m.IsRoutingID() || m.IsCommand() {
		t.Fatalf("fresh message has flags set: %v", m.Flags())
	}
	m.SetFlags(RoutingID)
	m.SetFlags(More)
	if !m.IsRoutingID() || m.Flags()&More == 0 {
		t.Fatalf("flags not set: %v", m.Flags())
	}
	m.ResetFlags(More)
	if m.Flags() != RoutingID {
		t.Fatalf("unexpected flags after reset: %v", m.Flags())
	}
}

func TestCommandPrefixAndSplit(t *testing.T) {
	p, err := CommandPrefix("READY")
	if err != nil {
		t.Fatalf("prefix: %v", err)
	}
	if !bytes.Equal(p, []byte("\x05READY")) {
		t.Fatalf("unexpected prefix %q", p)
	}
	name, rest, err := SplitCommand(append(p, 0xAA, 0xBB))
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if name != "READY" || !bytes.Equal(rest, []byte{0xAA, 0xBB}) {
		t.Fatalf("unexpected split name=%q rest=%x", name, rest)
	}
}

func TestCommandPrefixTooLong(t *testing.T) {
	_, err := CommandPrefix(strings.Repeat("C", MaxCommandNameLen+1))
	if !errors.Is(err, ErrCommandNameTooLong) {
		t.Fatalf("expected ErrCommandNameTooLong, got %v", err)
	}
}

func TestSplitCommandShort(t *testing.T) {
	if _, _, err := SplitCommand(nil); !errors.Is(err, ErrShortCommand) {
		t.Fatalf("empty: expected ErrShortCommand, got %v", err)
	}
	if _, _, err := SplitCommand([]byte("\x05REA")); !errors.Is(err, ErrShortCommand) {
		t.Fatalf("truncated: expected ErrShortCommand, got %v", err)
	}
}
