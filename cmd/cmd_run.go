// cmd_run.go - Run Command Handler
// Hauptfunktionen: RunHandler, KeycodesHandler
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ollama/comlin/envconfig"
	"github.com/ollama/comlin/logutil"
	"github.com/ollama/comlin/readline"
)

const (
	defaultPrompt        = "hello> "
	defaultAsyncInterval = time.Second
)

// runOptions - Einstellungen einer Demo-Sitzung
type runOptions struct {
	Prompt string

	// HistoryFile ist leer, wenn die History nicht gespeichert wird
	HistoryFile string
	HistoryLen  int

	Mode     readline.Mode
	Async    bool
	Interval time.Duration
}

// boolFlag liest ein Flag; ohne explizite Angabe gilt der Wert aus der Umgebung.
func boolFlag(cmd *cobra.Command, name string, fallback func() bool) (bool, error) {
	if !cmd.Flags().Changed(name) {
		return fallback(), nil
	}
	return cmd.Flags().GetBool(name)
}

// optionsFromFlags - Baut runOptions aus Flags und Umgebung
func optionsFromFlags(cmd *cobra.Command) (runOptions, error) {
	opts := runOptions{
		HistoryLen: int(envconfig.HistoryLen()),
	}

	if !envconfig.NoHistory() {
		opts.HistoryFile = envconfig.HistoryFile()
	}

	prompt, err := cmd.Flags().GetString("prompt")
	if err != nil {
		return opts, err
	}
	opts.Prompt = prompt

	multiline, err := boolFlag(cmd, "multiline", envconfig.Multiline)
	if err != nil {
		return opts, err
	}
	if multiline {
		opts.Mode |= readline.ModeMultiLine
	}

	mask, err := boolFlag(cmd, "mask", envconfig.Mask)
	if err != nil {
		return opts, err
	}
	if mask {
		opts.Mode |= readline.ModeMasked
	}

	if opts.Async, err = cmd.Flags().GetBool("async"); err != nil {
		return opts, err
	}

	if opts.Interval, err = cmd.Flags().GetDuration("interval"); err != nil {
		return opts, err
	}
	if opts.Interval <= 0 {
		return opts, fmt.Errorf("invalid value for --interval: %s (must be positive)", opts.Interval)
	}

	return opts, nil
}

// RunHandler - Haupthandler fuer den Root Command
func RunHandler(cmd *cobra.Command, args []string) error {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))

	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	rl, err := readline.New(os.Stdin, os.Stdout, envconfig.Term(), opts.HistoryLen)
	if err != nil {
		return err
	}
	defer rl.Close()

	rl.SetMode(opts.Mode)
	if opts.Mode&readline.ModeMultiLine != 0 {
		fmt.Println("Multi-line mode enabled.")
	}

	s := newSession(rl, os.Stdout, opts)
	s.loadHistory()

	slog.Debug("starting session", "term", envconfig.Term(), "dumb", rl.Dumb(), "columns", rl.Terminal.Columns(), "async", opts.Async)

	if opts.Async {
		return runAsync(cmd.Context(), s)
	}
	return runInteractive(s)
}

// KeycodesHandler - Zeigt die Rohbytes jeder Taste an
func KeycodesHandler(cmd *cobra.Command, args []string) error {
	rl, err := readline.New(os.Stdin, os.Stdout, envconfig.Term(), 0)
	if err != nil {
		return err
	}
	defer rl.Close()

	if err := rl.PrintKeyCodes(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
