package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/zmtpmeta/internal/auth"
	"github.com/danmuck/zmtpmeta/internal/config"
	"github.com/danmuck/zmtpmeta/internal/mechanism"
	"github.com/danmuck/zmtpmeta/internal/protocol/msg"
	"github.com/danmuck/zmtpmeta/internal/protocol/socktype"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errIncompatible = errors.New("socket types are incompatible")

// parseReport is the JSON shape printed by the parse command. Property
// values are raw bytes, so both dictionaries carry them hex encoded.
type parseReport struct {
	SocketType    string            `json:"socket_type"`
	PeerRoutingID string            `json:"peer_routing_id_hex"`
	ZAP           map[string]string `json:"zap_hex"`
	ZMTP          map[string]string `json:"zmtp_hex"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zmtpmeta",
		Short:         "Build and inspect ZMTP handshake metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInitCmd(), newReadyCmd(), newParseCmd(), newCheckCmd())
	return root
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <router|dealer|pair> <path>",
		Short: "Write a socket config template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(args[1], args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s config to %s\n", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")
	return cmd
}

func newReadyCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "ready",
		Short: "Print the READY command body carrying this socket's basic properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cfgPath)
			if err != nil {
				return err
			}
			return runReady(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "socket config file (default PAIR socket)")
	return cmd
}

func newParseCmd() *cobra.Command {
	var (
		cfgPath string
		zap     bool
		command bool
		require []string
		deny    []string
	)
	cmd := &cobra.Command{
		Use:   "parse <hex>",
		Short: "Parse a hex-encoded property list against this socket's options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cfgPath)
			if err != nil {
				return err
			}
			validator, err := buildValidator(require, deny)
			if err != nil {
				return err
			}
			return runParse(cmd.OutOrStdout(), opts, args[0], zap, command, validator)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "socket config file (default PAIR socket)")
	cmd.Flags().BoolVar(&zap, "zap", false, "record properties in the ZAP dictionary")
	cmd.Flags().BoolVar(&command, "command", false, "input is a full command body (name prefix + metadata)")
	cmd.Flags().StringArrayVar(&require, "require", nil, "reject property NAME unless it equals the non-empty VALUE (NAME=VALUE, repeatable)")
	cmd.Flags().StringSliceVar(&deny, "deny", nil, "reject properties with these names")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <local> <peer>",
		Short: "Report whether two socket types may be connected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func loadOptions(path string) (mechanism.Options, error) {
	if path == "" {
		return config.DefaultOptions(), nil
	}
	return config.LoadOptions(path)
}

func runReady(w io.Writer, opts mechanism.Options) error {
	m, err := mechanism.New(opts)
	if err != nil {
		return err
	}
	prefix, err := msg.CommandPrefix("READY")
	if err != nil {
		return err
	}
	cmd, err := m.MakeCommandWithBasicProperties(prefix)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(cmd.Data()))
	return err
}

func buildValidator(require, deny []string) (mechanism.Validator, error) {
	chain := make(auth.Chain, 0, len(require)+1)
	for _, kv := range require {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --require %q: want NAME=VALUE", kv)
		}
		if value == "" {
			return nil, fmt.Errorf("invalid --require %q: VALUE must not be empty", kv)
		}
		chain = append(chain, auth.StaticProperty{Name: name, Value: []byte(value)})
	}
	if len(deny) > 0 {
		chain = append(chain, auth.Deny(deny))
	}
	return chain, nil
}

func runParse(w io.Writer, opts mechanism.Options, input string, zap, command bool, validator mechanism.Validator) error {
	data, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("decode hex input: %w", err)
	}
	if command {
		if _, data, err = msg.SplitCommand(data); err != nil {
			return err
		}
	}
	m, err := mechanism.New(opts, mechanism.WithValidator(validator))
	if err != nil {
		return err
	}
	if err := m.ParseMetadata(data, zap); err != nil {
		return err
	}
	report := parseReport{
		SocketType:    opts.SocketType.String(),
		PeerRoutingID: hex.EncodeToString(m.PeerRoutingID().Data()),
		ZAP:           hexValues(m.ZAPProperties()),
		ZMTP:          hexValues(m.ZMTPProperties()),
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func hexValues(md mechanism.Metadata) map[string]string {
	out := make(map[string]string, len(md))
	for k, v := range md {
		out[k] = hex.EncodeToString([]byte(v))
	}
	return out
}

func runCheck(w io.Writer, local, peer string) error {
	t, err := config.ParseSocketType(local)
	if err != nil {
		return err
	}
	peerName := strings.ToUpper(strings.TrimSpace(peer))
	ok := socktype.Compatible(t, peerName)
	fmt.Fprintf(w, "%s -> %s: %t\n", t, peerName, ok)
	if !ok {
		return fmt.Errorf("%w: %s and %s", errIncompatible, t, peerName)
	}
	return nil
}
