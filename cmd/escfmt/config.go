package main

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultEnvPrefix = "ESCFMT_"

// lookupFunc matches os.LookupEnv.
type lookupFunc func(string) (string, bool)

// autoMode is a tri-state switch used by --color and --newline.
type autoMode string

const (
	modeAuto   autoMode = "auto"
	modeAlways autoMode = "always"
	modeNever  autoMode = "never"
)

func parseAutoMode(value string) (autoMode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "auto", "":
		return modeAuto, true
	case "always", "on", "yes", "true", "1", "force":
		return modeAlways, true
	case "never", "off", "no", "false", "0", "none":
		return modeNever, true
	default:
		return modeAuto, false
	}
}

// resolve reports whether the switch is on, deferring to auto when the mode
// is auto.
func (m autoMode) resolve(auto bool) bool {
	switch m {
	case modeAlways:
		return true
	case modeNever:
		return false
	default:
		return auto
	}
}

func (m *autoMode) String() string {
	if m == nil || *m == "" {
		return string(modeAuto)
	}
	return string(*m)
}

func (m *autoMode) Set(value string) error {
	parsed, ok := parseAutoMode(value)
	if !ok {
		return fmt.Errorf("invalid value %q (want auto, always or never)", value)
	}
	*m = parsed
	return nil
}

func (m *autoMode) Type() string {
	return "auto|always|never"
}

// config holds the resolved command settings. Environment values seed the
// flag defaults, so explicit flags win.
type config struct {
	Color    autoMode
	Newline  autoMode
	Palette  string
	Lines    bool
	Literal  bool
	Output   string
	LogLevel string

	// NoColor is set when the NO_COLOR convention variable is present and
	// non-empty. It only affects auto colour detection.
	NoColor bool
}

func defaultConfig() config {
	return config{
		Color:    modeAuto,
		Newline:  modeAuto,
		Palette:  "default",
		LogLevel: "warn",
	}
}

// configFromEnv reads {prefix}COLOR, NEWLINE, PALETTE, LINES, OUTPUT and
// LOG_LEVEL plus the unprefixed NO_COLOR. Unparseable values are ignored.
func configFromEnv(prefix string, lookup lookupFunc) config {
	cfg := defaultConfig()
	if lookup == nil {
		return cfg
	}
	if value, ok := lookupEnv(lookup, prefix, "COLOR"); ok {
		if parsed, ok := parseAutoMode(value); ok {
			cfg.Color = parsed
		}
	}
	if value, ok := lookupEnv(lookup, prefix, "NEWLINE"); ok {
		if parsed, ok := parseAutoMode(value); ok {
			cfg.Newline = parsed
		}
	}
	if value, ok := lookupEnv(lookup, prefix, "PALETTE"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			cfg.Palette = parsed
		}
	}
	if value, ok := lookupEnv(lookup, prefix, "LINES"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			cfg.Lines = parsed
		}
	}
	if value, ok := lookupEnv(lookup, prefix, "OUTPUT"); ok {
		cfg.Output = strings.TrimSpace(value)
	}
	if value, ok := lookupEnv(lookup, prefix, "LOG_LEVEL"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			cfg.LogLevel = parsed
		}
	}
	if value, ok := lookup("NO_COLOR"); ok && value != "" {
		cfg.NoColor = true
	}
	return cfg
}

func lookupEnv(lookup lookupFunc, prefix, key string) (string, bool) {
	return lookup(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	switch trimmed {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return false, false
	}
	return parsed, true
}
