// Package config defines the runtime configuration for brackets and the
// rules that keep it consistent.
package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	bkerrors "brackets/internal/errors"
)

// Config holds every tuneable for a single run.
type Config struct {
	// ── Input / output ───────────────────────────────────────────────
	Terminator string     `yaml:"terminator"`
	Input      string     `yaml:"input"`  // path, or "-" for stdin
	Output     string     `yaml:"output"` // path, or "-" for stdout
	Prompt     PromptMode `yaml:"prompt"`

	// ── Output ───────────────────────────────────────────────────────
	Verbose int  `yaml:"verbose"`
	Stats   bool `yaml:"stats"`

	// ConfigPath is where the YAML file was loaded from, if anywhere.
	ConfigPath string `yaml:"-"`
}

// ── Prompt mode ──────────────────────────────────────────────────────

// PromptMode decides whether an input prompt is written to stderr.
type PromptMode string

const (
	PromptAuto   PromptMode = "auto"   // prompt only when stdin is a terminal
	PromptAlways PromptMode = "always" // prompt unconditionally
	PromptNever  PromptMode = "never"
)

// ParsePromptMode accepts auto, always or never (case-insensitive).
func ParsePromptMode(s string) (PromptMode, error) {
	switch m := PromptMode(strings.ToLower(strings.TrimSpace(s))); m {
	case PromptAuto, PromptAlways, PromptNever:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q", bkerrors.ErrUnknownPrompt, s)
	}
}

// ShouldPrompt resolves the mode against whether the input is an
// interactive terminal.
func (m PromptMode) ShouldPrompt(inputIsTerminal bool) bool {
	switch m {
	case PromptAlways:
		return true
	case PromptNever:
		return false
	default:
		return inputIsTerminal
	}
}

// ── Stream helpers ───────────────────────────────────────────────────

// UsesStdin reports whether input comes from standard input.
func (c *Config) UsesStdin() bool { return c.Input == "" || c.Input == StdioName }

// UsesStdout reports whether verdicts go to standard output.
func (c *Config) UsesStdout() bool { return c.Output == "" || c.Output == StdioName }

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent and
// normalises the prompt mode.
func (c *Config) Validate() error {
	if c.Terminator == "" {
		return &bkerrors.ConfigError{
			Field:   "terminator",
			Message: "must not be empty",
			Hint:    fmt.Sprintf("the default terminator is %q", DefaultTerminator),
			Err:     bkerrors.ErrEmptyTerminator,
		}
	}
	if strings.ContainsAny(c.Terminator, "\r\n") {
		return &bkerrors.ConfigError{
			Field:   "terminator",
			Value:   c.Terminator,
			Message: "must not contain line breaks",
			Hint:    "the terminator is compared against a single input line",
		}
	}
	if last, _ := utf8.DecodeLastRuneInString(c.Terminator); unicode.IsSpace(last) {
		return &bkerrors.ConfigError{
			Field:   "terminator",
			Value:   c.Terminator,
			Message: "must not end in whitespace",
			Hint:    "trailing whitespace is stripped from every line before comparison",
		}
	}

	mode, err := ParsePromptMode(string(c.Prompt))
	if err != nil {
		return &bkerrors.ConfigError{
			Field:   "prompt",
			Value:   c.Prompt,
			Message: "unknown prompt mode",
			Hint:    "use auto, always or never",
			Err:     err,
		}
	}
	c.Prompt = mode

	if c.Verbose < 0 {
		return &bkerrors.ConfigError{
			Field:   "verbose",
			Value:   c.Verbose,
			Message: "must not be negative",
		}
	}

	if !c.UsesStdin() && !c.UsesStdout() && c.Input == c.Output {
		return &bkerrors.ConfigError{
			Field:   "output",
			Value:   c.Output,
			Message: "is the same file as --input",
			Hint:    "writing verdicts over the input would truncate it before it is read",
		}
	}

	return nil
}
