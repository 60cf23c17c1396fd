// interactive_main.go - Hauptloop fuer den interaktiven Modus
// Verarbeitet Benutzereingaben und koordiniert die Kommando-Verarbeitung
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ollama/comlin/readline"
)

// session - Zustand der Demo zwischen zwei Zeilen
type session struct {
	rl       *readline.Instance
	out      io.Writer
	opts     runOptions
	commands *orderedmap.OrderedMap[string, slashCommand]
}

func newSession(rl *readline.Instance, out io.Writer, opts runOptions) *session {
	s := &session{
		rl:       rl,
		out:      out,
		opts:     opts,
		commands: newCommandRegistry(),
	}

	rl.SetCompletionFunc(s.complete)
	rl.SetHintFunc(s.hint)
	return s
}

// runInteractive liest Zeilen blockierend, bis Ctrl-C oder Ctrl-D kommt.
func runInteractive(s *session) error {
	for {
		line, err := s.rl.Readline(s.opts.Prompt)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
			return nil
		case err != nil:
			return err
		}

		if err := s.handleLine(line); err != nil {
			return err
		}
	}
}

// handleLine verarbeitet eine abgeschickte Zeile: Kommandos beginnen mit
// '/', alles andere wird ausgegeben und in die History uebernommen.
func (s *session) handleLine(line string) error {
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, "/"):
		return s.runCommand(line)
	}

	fmt.Fprintf(s.out, "echo: '%s'\n", line)
	if err := s.rl.HistoryAdd(line); err != nil {
		return err
	}
	s.saveHistory()
	return nil
}

func (s *session) loadHistory() {
	if s.opts.HistoryFile == "" {
		return
	}

	if err := s.rl.HistoryLoad(s.opts.HistoryFile); err != nil {
		if readline.StatusOf(err) != readline.StatusNoFile {
			slog.Warn("could not load history", "path", s.opts.HistoryFile, "error", err)
		}
	}
}

func (s *session) saveHistory() {
	if s.opts.HistoryFile == "" {
		return
	}

	if err := s.rl.HistorySave(s.opts.HistoryFile); err != nil {
		slog.Warn("could not save history", "path", s.opts.HistoryFile, "error", err)
	}
}
