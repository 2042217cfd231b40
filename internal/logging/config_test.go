package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestEnvLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		t.Setenv(EnvLogLevel, raw)
		got, ok := envLevel(EnvLogLevel)
		if !ok || got != want {
			t.Fatalf("envLevel(%q)=%v,%v want %v", raw, got, ok, want)
		}
	}
	for _, raw := range []string{"loud", ""} {
		t.Setenv(EnvLogLevel, raw)
		if _, ok := envLevel(EnvLogLevel); ok {
			t.Fatalf("level %q accepted", raw)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogBypass, "not-a-bool")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("level=%v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if !cfg.NoColor {
		t.Fatalf("expected no color")
	}
	if cfg.Bypass {
		t.Fatalf("invalid bool should leave bypass unset")
	}
}

func TestNewBypassWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: zerolog.InfoLevel, Bypass: true})
	l.Debug().Msg("hidden")
	l.Info().Str("k", "v").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %s", out)
	}
	if !strings.Contains(out, `"k":"v"`) || !strings.Contains(out, `"message":"shown"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}
