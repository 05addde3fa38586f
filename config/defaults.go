package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, config file parsing, and environment variable
// loading.

const (
	// DefaultTerminator is the line that ends input processing.
	DefaultTerminator = "."

	// StdioName selects stdin for --input and stdout for --output.
	StdioName = "-"

	// DefaultPrompt is the string written to stderr before each read
	// in interactive runs.
	DefaultPrompt = "> "

	// EnvPrefix namespaces every supported environment variable.
	EnvPrefix = "BRACKETS_"
)

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Terminator: DefaultTerminator,
		Input:      StdioName,
		Output:     StdioName,
		Prompt:     PromptAuto,
	}
}
