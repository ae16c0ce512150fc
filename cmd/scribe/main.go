// Command scribe is a minimal terminal line editor. Typed characters collect
// in an input buffer; Enter commits the buffer as a message in the log above
// it; Escape exits.
//
// Usage:
//
//	scribe [flags]
//
// Flags:
//
//	-config string  Path to YAML config file (default: .scribe/config.yaml)
//	-tui            Use the full-screen Bubble Tea interface
//	-log string     Path to a debug log file (default: no logging)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/scribe"
	"github.com/fwojciec/scribe/ansi"
	bt "github.com/fwojciec/scribe/bubbletea"
	"github.com/fwojciec/scribe/term"
	"github.com/fwojciec/scribe/yaml"
	"go.uber.org/zap"
)

const defaultConfigPath = ".scribe/config.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		configPath = flag.String("config", defaultConfigPath, "Path to YAML config file")
		tui        = flag.Bool("tui", false, "Use the full-screen Bubble Tea interface")
		logPath    = flag.String("log", "", "Path to a debug log file")
	)
	flag.Parse()

	logger, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger.Debug("Configuration loaded",
		zap.String("path", *configPath),
		zap.String("sender", cfg.Sender),
		zap.Int("status_row", cfg.StatusRow))

	session := scribe.NewSession(cfg.Sender)

	if *tui {
		logger.Info("Starting TUI")
		err = runTUI(session, cfg, os.Stdout)
	} else {
		logger.Info("Starting raw terminal loop")
		err = runRaw(os.Stdin, os.Stdout, session, cfg, logger)
	}
	logger.Info("Session ended",
		zap.Int("messages", len(session.Messages())),
		zap.Error(err))
	return err
}

// loadConfig reads the YAML config. A missing file is tolerated only at the
// default path.
func loadConfig(path string) (scribe.Config, error) {
	if path != defaultConfigPath {
		if _, err := os.Stat(path); err != nil {
			return scribe.Config{}, fmt.Errorf("config: %w", err)
		}
	}
	cfg, err := yaml.Load(path)
	if err != nil {
		return scribe.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// runRaw drives the session on the terminal attached to in. The terminal is
// restored before runRaw returns, whatever the outcome, and before the
// process exits on SIGINT, SIGTERM or SIGHUP.
func runRaw(in *os.File, out io.Writer, session *scribe.Session, cfg scribe.Config, logger *zap.Logger) error {
	tty, err := term.Open(in)
	if err != nil {
		return err
	}
	defer func() {
		if err := tty.Close(); err != nil {
			logger.Warn("Failed to restore terminal", zap.Error(err))
		}
	}()

	// Termination signals bypass deferred calls, so restore from the handler.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)
	stop := restoreOnSignal(sigCh, tty, func(sig os.Signal) {
		logger.Warn("Terminated by signal", zap.Stringer("signal", sig))
		_ = logger.Sync()
		os.Exit(1)
	})
	defer stop()

	loop := scribe.NewLoop(term.NewKeyReader(in), ansi.NewRenderer(out, cfg))
	return loop.Run(session,
		scribe.WithKeyHandler(logKey(logger)),
		scribe.WithFarewellErrorHandler(func(err error) {
			logger.Warn("Failed to write farewell", zap.Error(err))
		}))
}

// runTUI drives the session with Bubble Tea, which manages the terminal mode
// itself. SIGINT and SIGTERM end the program cleanly.
func runTUI(session *scribe.Session, cfg scribe.Config, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final, err := bt.Run(ctx, bt.New(session, cfg))
	if err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	if final.Quitting() && cfg.Farewell != "" {
		// Best-effort, like the raw loop's farewell.
		_, _ = fmt.Fprintln(out, cfg.Farewell)
	}
	return nil
}
