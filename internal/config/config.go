package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/zmtpmeta/internal/mechanism"
	"github.com/danmuck/zmtpmeta/internal/protocol/socktype"
)

const MaxRoutingIDLen = 255

var (
	ErrUnknownSocketType = errors.New("config: unknown socket type")
	ErrInvalidRoutingID  = errors.New("config: invalid routing id")
)

type fileConfig struct {
	SocketType    string `toml:"socket_type"`
	RoutingID     string `toml:"routing_id"`
	RoutingIDHex  string `toml:"routing_id_hex"`
	RecvRoutingID bool   `toml:"recv_routing_id"`
}

// DefaultOptions is a PAIR socket with no routing id.
func DefaultOptions() mechanism.Options {
	return mechanism.Options{SocketType: socktype.Pair}
}

// LoadOptions reads socket handshake options from a TOML file. Keys left out
// keep their DefaultOptions value.
func LoadOptions(path string) (mechanism.Options, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return mechanism.Options{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return mechanism.Options{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	opts := DefaultOptions()
	if meta.IsDefined("socket_type") {
		t, err := ParseSocketType(raw.SocketType)
		if err != nil {
			return mechanism.Options{}, err
		}
		opts.SocketType = t
	}
	if meta.IsDefined("routing_id") {
		opts.RoutingID = []byte(raw.RoutingID)
	}
	if meta.IsDefined("routing_id_hex") {
		id, err := hex.DecodeString(strings.TrimSpace(raw.RoutingIDHex))
		if err != nil {
			return mechanism.Options{}, fmt.Errorf("%w: routing_id_hex: %v", ErrInvalidRoutingID, err)
		}
		opts.RoutingID = id
	}
	if meta.IsDefined("recv_routing_id") {
		opts.RecvRoutingID = raw.RecvRoutingID
	}

	if err := ValidateOptions(opts); err != nil {
		return mechanism.Options{}, err
	}
	return opts, nil
}

// ParseSocketType accepts role names in any case.
func ParseSocketType(raw string) (socktype.Type, error) {
	t, ok := socktype.Parse(strings.ToUpper(strings.TrimSpace(raw)))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSocketType, raw)
	}
	return t, nil
}

// ValidateOptions applies the routing id rules: at most 255 bytes and no
// leading zero byte, which is reserved for generated ids.
func ValidateOptions(opts mechanism.Options) error {
	if !opts.SocketType.Valid() {
		return fmt.Errorf("%w: code %d", ErrUnknownSocketType, int(opts.SocketType))
	}
	if len(opts.RoutingID) > MaxRoutingIDLen {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInvalidRoutingID, len(opts.RoutingID), MaxRoutingIDLen)
	}
	if len(opts.RoutingID) > 0 && opts.RoutingID[0] == 0 {
		return fmt.Errorf("%w: leading zero byte", ErrInvalidRoutingID)
	}
	return nil
}
