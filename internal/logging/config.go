package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "ZMTPMETA_LOG_LEVEL"
	EnvLogTimestamp = "ZMTPMETA_LOG_TIMESTAMP"
	EnvLogNoColor   = "ZMTPMETA_LOG_NOCOLOR"
	EnvLogBypass    = "ZMTPMETA_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	// Bypass writes raw JSON lines instead of console output.
	Bypass bool
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		log.Logger = New(os.Stderr, cfg)
		zerolog.SetGlobalLevel(cfg.Level)
	})
}

// New builds a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	out := w
	if !cfg.Bypass {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func defaultConfig(profile Profile) Config {
	cfg := Config{NoColor: !isTerminal(os.Stderr)}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
	default:
		cfg.Level = zerolog.InfoLevel
		cfg.Timestamp = true
	}
	return cfg
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := envLevel(EnvLogLevel); ok {
		cfg.Level = lvl
	}
	envBool(EnvLogTimestamp, &cfg.Timestamp)
	envBool(EnvLogNoColor, &cfg.NoColor)
	envBool(EnvLogBypass, &cfg.Bypass)
}

// levelAliases maps extra spellings onto names zerolog.ParseLevel knows.
var levelAliases = map[string]string{
	"warning": "warn",
	"off":     "disabled",
	"none":    "disabled",
}

// envLevel reads a zerolog level name from key. Unset, empty or unknown
// values leave the profile default in place.
func envLevel(key string) (zerolog.Level, bool) {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if alias, ok := levelAliases[raw]; ok {
		raw = alias
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, false
	}
	return lvl, true
}

func envBool(key string, dst *bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
		*dst = v
	}
}
