package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sv4u/tagdump"
	"github.com/sv4u/tagdump/config"
	"github.com/sv4u/tagdump/logging"
	"github.com/sv4u/tagdump/probe"
	"github.com/sv4u/tagdump/render"
)

// Exit codes. Unsupported formats and salvaged-but-corrupt files are
// recovered locally and still exit 0.
const (
	ExitSuccess    = 0
	ExitUsage      = 1
	ExitNotFound   = 2
	ExitFilesystem = 3
)

// run executes the CLI and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tagdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML configuration file")
	width := fs.Int("width", 0, "Force wrap width (0 = detect from terminal)")
	interactive := fs.Bool("interactive", false, "Pause for Enter after output (TTY only)")
	logPath := fs.String("log-path", "", "Write JSON diagnostics to this file")
	noTUI := fs.Bool("no-tui", false, "Never show the interactive pause")
	version := fs.Bool("version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		printUsage(stdout)
		return ExitUsage
	}

	if *version {
		fmt.Fprintf(stdout, "tagdump version %s\n", Version)
		return ExitSuccess
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected exactly one media file argument")
		printUsage(stdout)
		return ExitUsage
	}
	path := fs.Arg(0)

	cfg, code := loadConfig(*configPath, stderr)
	if code != ExitSuccess {
		return code
	}
	cfg.ApplyEnv()

	// Flags override config file and environment.
	if *width > 0 {
		cfg.Output.Width = *width
	}
	if *interactive {
		cfg.Output.Interactive = true
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
		cfg.Log.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return ExitUsage
	}

	// Missing file short-circuits before any parse attempt.
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(stderr, "Error: file does not exist: %s\n", path)
		printUsage(stdout)
		return ExitNotFound
	}

	var logger *logging.Logger
	if cfg.Log.Enabled {
		var err error
		logger, err = logging.New(cfg.Log.Path, "tagdump")
		if err != nil {
			fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
			return ExitFilesystem
		}
		defer func() { _ = logger.Close() }()
		logger.SetFile(path)
	}

	pf, err := probe.Open(path)
	if err != nil {
		var unsupported *probe.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			fmt.Fprintf(stderr, "%v\n", err)
			logger.Warnf("unsupported format: %v", err)
			return ExitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		logger.ErrorWithOperation("probe", "probe failed", err)
		return ExitFilesystem
	}
	logger.Infof("probed %d tag kind(s)", len(pf.Kinds))

	widthFn := render.WidthFunc(nil)
	if cfg.Output.Width > 0 {
		widthFn = render.FixedWidth(cfg.Output.Width)
	}
	out := render.New(stdout, widthFn, cfg.Output.Indent)

	tagdump.NewDumper(out, logger).Dump(pf)

	if cfg.Output.Interactive && WantTUI(*noTUI) {
		if err := runPausePrompt(); err != nil {
			fmt.Fprintf(stderr, "Error running pause prompt: %v\n", err)
		}
	}
	return ExitSuccess
}

// loadConfig loads the config file if one was given, else defaults.
func loadConfig(path string, stderr io.Writer) (*config.Config, int) {
	if path == "" {
		return config.Default(), ExitSuccess
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return nil, ExitUsage
	}
	return cfg, ExitSuccess
}
