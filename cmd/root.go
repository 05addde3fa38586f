// Package cmd wires up the CLI flags and dispatches to the checker.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"brackets/checker"
	"brackets/config"
	bkerrors "brackets/internal/errors"
	"brackets/internal/metrics"
	"brackets/internal/session"
	"brackets/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X brackets/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// streams are the process's standard I/O, replaceable in tests.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// flagValues holds raw flag values; only flags the user actually set
// are applied on top of file and environment configuration.
type flagValues struct {
	terminator string
	input      string
	output     string
	prompt     string
	configPath string
	verbose    int
	stats      bool
	dryRun     bool
}

// Execute parses args and runs brackets against the process's stdio.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func execute(ctx context.Context, args []string, std streams) error {
	var fv flagValues
	fs := flag.NewFlagSet("brackets", flag.ContinueOnError)
	fs.SetOutput(std.err)

	// ── input / output ───────────────────────────────────────────
	fs.StringVarP(&fv.terminator, "terminator", "t", config.DefaultTerminator, "Line that ends input")
	fs.StringVarP(&fv.input, "input", "i", config.StdioName, "Read lines from file (- for stdin)")
	fs.StringVarP(&fv.output, "output", "o", config.StdioName, "Write verdicts to file (- for stdout)")
	fs.StringVar(&fv.prompt, "prompt", string(config.PromptAuto), "Prompt before each line: auto, always, never")

	// ── configuration ────────────────────────────────────────────
	fs.StringVar(&fv.configPath, "config", "", "YAML config file")
	fs.BoolVar(&fv.dryRun, "dry-run", false, "Validate configuration and exit")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&fv.verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&fv.stats, "stats", false, "Print run statistics as JSON to stderr")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(std.err, fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(std.err, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(std.out, "brackets %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (use --input to read a file)", fs.Arg(0))
	}

	// ── resolve configuration ────────────────────────────────────
	cfg, err := resolveConfig(fs, &fv)
	if err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(std.err)
	if cfg.ConfigPath != "" {
		logger.Verbose("loaded config from %s", cfg.ConfigPath)
	}

	if fv.dryRun {
		logger.Info("configuration OK: terminator=%q input=%s output=%s prompt=%s",
			cfg.Terminator, cfg.Input, cfg.Output, cfg.Prompt)
		return nil
	}

	return run(ctx, cfg, logger, std)
}

// resolveConfig layers defaults, config file, environment and
// explicitly set flags, then validates the result.
func resolveConfig(fs *flag.FlagSet, fv *flagValues) (*config.Config, error) {
	cfg := config.Default()

	path := fv.configPath
	if path == "" {
		path = config.ConfigPathFromEnv()
	}
	if path != "" {
		if err := config.LoadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	config.LoadFromEnv(cfg)

	if fs.Changed("terminator") {
		cfg.Terminator = fv.terminator
	}
	if fs.Changed("input") {
		cfg.Input = fv.input
	}
	if fs.Changed("output") {
		cfg.Output = fv.output
	}
	if fs.Changed("prompt") {
		cfg.Prompt = config.PromptMode(fv.prompt)
	}
	if fs.Changed("verbose") {
		cfg.Verbose = fv.verbose
	}
	if fs.Changed("stats") {
		cfg.Stats = fv.stats
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run opens the configured streams and drives the checker.
func run(ctx context.Context, cfg *config.Config, logger *util.Logger, std streams) (err error) {
	in, inName := std.in, "stdin"
	if !cfg.UsesStdin() {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("input: %w", err)
		}
		defer f.Close()
		in, inName = f, cfg.Input
	}

	out, outName := std.out, "stdout"
	if !cfg.UsesStdout() {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = bkerrors.WrapWrite(cfg.Output, cerr)
			}
		}()
		out, outName = f, cfg.Output
	}

	m := metrics.New()
	sess := session.New(in, out, logger, m)
	sess.InputName, sess.OutputName = inName, outName
	if cfg.Verbose >= int(util.LogVerbose) {
		logger.SetTag(sess.ShortID())
	}

	interactive := cfg.UsesStdin() && isTerminal(std.in)
	opts := checker.Options{
		Terminator:    cfg.Terminator,
		FlushEachLine: interactive,
	}
	if cfg.Prompt.ShouldPrompt(interactive) {
		sess.Prompts = std.err
		opts.Prompt = config.DefaultPrompt
		opts.FlushEachLine = true
	}

	logger.Verbose("session %s: reading %s, terminator %q", sess.ID, inName, cfg.Terminator)
	err = checker.New(sess, opts).Run(ctx)

	if cfg.Stats {
		fmt.Fprintln(std.err, m.JSON())
	}
	logger.Verbose("checked %d line(s): %d balanced, %d unbalanced",
		m.LinesChecked(), m.BalancedLines(), m.UnbalancedLines())
	return err
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ── helpers ──────────────────────────────────────────────────────────

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `brackets – bracket balance checker v%s

Reads lines until a line consisting of the terminator (default ".")
and prints "yes" or "no" for each, depending on whether its round and
square brackets are balanced.

Usage:
  brackets [options]

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Environment:
  BRACKETS_TERMINATOR, BRACKETS_INPUT, BRACKETS_OUTPUT, BRACKETS_PROMPT,
  BRACKETS_STATS, BRACKETS_VERBOSE, BRACKETS_CONFIG

Examples:
  printf '([])\n(()\n.\n' | brackets          yes, no
  brackets -i lines.txt -o verdicts.txt       File to file
  brackets -t END --stats < input.txt         Custom terminator
`)
}
