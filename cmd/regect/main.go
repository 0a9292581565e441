// Package main is the entry point for regect, a live regular expression tester.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dshills/regect/internal/app"
	"github.com/dshills/regect/internal/config"
	"github.com/dshills/regect/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds parsed command-line flags.
type cliOptions struct {
	configPath  string
	engine      string
	pattern     string
	ignoreCase  bool
	logLevel    string
	logFile     string
	showVersion bool
	showHelp    bool
	file        string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, fs, err := parseFlags(args, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if opts.showHelp {
		fs.Usage()
		return 0
	}
	if opts.showVersion {
		fmt.Printf("Regect %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, used, err := config.Load(config.Options{
		Path:        opts.configPath,
		SearchPaths: config.DefaultPaths(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := applyFlags(cfg, fs, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	body, err := readBody(opts.file, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{Config: cfg, Body: body})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if used != "" {
		application.Logger().Info("loaded config %s", used)
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil {
		var pe *app.RecoveredPanicError
		if errors.As(err, &pe) {
			application.Logger().Error("%v", err)
			fmt.Fprintf(os.Stderr, "Error: internal error: %v\n", pe.Value)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// parseFlags parses args. Usage goes to out.
func parseFlags(args []string, out io.Writer) (cliOptions, *flag.FlagSet, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("regect", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (TOML or YAML)")
	fs.StringVarP(&opts.engine, "engine", "e", "", "Regular expression engine (std, coregex)")
	fs.StringVarP(&opts.pattern, "pattern", "p", "", "Initial pattern")
	fs.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Match case-insensitively")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", `Log file path, or "off"`)
	fs.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")
	fs.BoolVarP(&opts.showHelp, "help", "h", false, "Show help message")

	fs.Usage = func() {
		fmt.Fprintf(out, "Regect - live regular expression tester\n\n")
		fmt.Fprintf(out, "Usage: regect [options] [file]\n\n")
		fmt.Fprintf(out, "The body is seeded from file, or from standard input when it is not a terminal.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fmt.Fprint(out, fs.FlagUsages())
		fmt.Fprintf(out, "\nKeys:\n")
		fmt.Fprintf(out, "  Tab         Switch between editing the pattern and the body\n")
		fmt.Fprintf(out, "  Esc, Ctrl+C Quit\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		opts.file = rest[0]
	default:
		return opts, fs, fmt.Errorf("expected at most one file, got %d", len(rest))
	}

	return opts, fs, nil
}

// applyFlags overrides cfg with the flags that were set, then validates.
func applyFlags(cfg *config.Config, fs *flag.FlagSet, opts cliOptions) error {
	if fs.Changed("engine") {
		cfg.Pattern.Engine = opts.engine
	}
	if fs.Changed("pattern") {
		cfg.Pattern.Initial = opts.pattern
	}
	if fs.Changed("ignore-case") {
		cfg.Pattern.CaseInsensitive = opts.ignoreCase
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
	return cfg.Validate()
}

// readBody returns the initial body: the named file, "-" for stdin, or
// stdin when it is not a terminal. A terminal stdin gives an empty body.
func readBody(path string, stdin *os.File) (string, error) {
	switch {
	case path == "-":
		return readAll(stdin)
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading body: %w", err)
		}
		return string(data), nil
	case stdin != nil && !term.IsTerminal(int(stdin.Fd())):
		return readAll(stdin)
	default:
		return "", nil
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading body from stdin: %w", err)
	}
	return string(data), nil
}
