package config

// loader.go - configuration loading from a YAML file and environment
// variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go, explicitly set flags only)
//   2. Environment variables
//   3. Config file
//   4. Defaults   (defaults.go)

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	bkerrors "brackets/internal/errors"
)

// ── Config file ──────────────────────────────────────────────────────

// LoadFile overlays the YAML document at path onto cfg.  Keys absent
// from the file keep their current value; unknown keys are rejected.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &bkerrors.ConfigError{
			Field:   "config",
			Value:   path,
			Message: "cannot read config file",
			Err:     err,
		}
	}
	if err := ParseYAML(cfg, data); err != nil {
		return &bkerrors.ConfigError{
			Field:   "config",
			Value:   path,
			Message: err.Error(),
			Hint:    "supported keys: terminator, input, output, prompt, verbose, stats",
			Err:     err,
		}
	}
	cfg.ConfigPath = path
	return nil
}

// ParseYAML decodes a YAML document onto cfg.  An empty document is
// not an error.
func ParseYAML(cfg *Config, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the BRACKETS_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// ConfigPathFromEnv returns BRACKETS_CONFIG, if set.
func ConfigPathFromEnv() string {
	return os.Getenv(EnvPrefix + "CONFIG")
}

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  Call it after LoadFile and
// before applying CLI flags so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "TERMINATOR"); v != "" {
		cfg.Terminator = v
	}
	if v := os.Getenv(EnvPrefix + "INPUT"); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvPrefix + "OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvPrefix + "PROMPT"); v != "" {
		// Left unparsed so Validate reports a bad value with a hint.
		cfg.Prompt = PromptMode(v)
	}
	if envBool(EnvPrefix + "STATS") {
		cfg.Stats = true
	}
	if v := envInt(EnvPrefix + "VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
