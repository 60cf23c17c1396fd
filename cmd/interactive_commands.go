// interactive_commands.go - Kommando-Handler fuer den interaktiven Modus
// Verarbeitet /historylen, /mask, /unmask, /multiline, /singleline, /clear und /help
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ollama/comlin/readline"
)

// slashCommand beschreibt ein Kommando der Demo
type slashCommand struct {
	// Args ist der Platzhalter fuer Argumente, leer ohne Argumente
	Args string
	Help string
	Run  func(s *session, args []string) error
}

// newCommandRegistry erstellt alle Kommandos in der Reihenfolge, in der
// /help sie auflistet.
func newCommandRegistry() *orderedmap.OrderedMap[string, slashCommand] {
	cmds := orderedmap.New[string, slashCommand]()
	cmds.Set("/historylen", slashCommand{Args: "<n>", Help: "Set the maximum number of history entries", Run: handleHistoryLenCommand})
	cmds.Set("/mask", slashCommand{Help: "Echo input as '*'", Run: handleModeCommand(readline.ModeMasked, true, "mask")})
	cmds.Set("/unmask", slashCommand{Help: "Echo input as typed", Run: handleModeCommand(readline.ModeMasked, false, "unmask")})
	cmds.Set("/multiline", slashCommand{Help: "Wrap long lines over multiple rows", Run: handleModeCommand(readline.ModeMultiLine, true, "multiline")})
	cmds.Set("/singleline", slashCommand{Help: "Scroll long lines horizontally", Run: handleModeCommand(readline.ModeMultiLine, false, "singleline")})
	cmds.Set("/clear", slashCommand{Help: "Clear the screen", Run: handleClearCommand})
	cmds.Set("/help", slashCommand{Help: "Show this help", Run: handleHelpCommand})
	return cmds
}

// runCommand fuehrt das Kommando am Zeilenanfang aus
func (s *session) runCommand(line string) error {
	args := strings.Fields(line)
	command, ok := s.commands.Get(args[0])
	if !ok {
		fmt.Fprintf(s.out, "Unknown command '%s'. Type /help for help\n", args[0])
		if suggestion := s.suggest(args[0]); suggestion != "" {
			fmt.Fprintf(s.out, "Did you mean '%s'?\n", suggestion)
		}
		return nil
	}

	return command.Run(s, args[1:])
}

// handleHistoryLenCommand verarbeitet den /historylen Befehl
func handleHistoryLenCommand(s *session, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage:\n  /historylen <n>")
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err == nil {
		err = s.rl.HistorySetMaxLen(n)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: invalid history length '%s'\n", args[0])
		return nil
	}

	fmt.Fprintf(s.out, "Set history length to %d.\n", n)
	return nil
}

// handleModeCommand schaltet ein Darstellungs-Flag ein oder aus
func handleModeCommand(mode readline.Mode, enable bool, name string) func(*session, []string) error {
	return func(s *session, _ []string) error {
		if enable {
			s.rl.SetMode(s.rl.Mode() | mode)
		} else {
			s.rl.SetMode(s.rl.Mode() &^ mode)
		}
		fmt.Fprintf(s.out, "Set '%s' mode.\n", name)
		return nil
	}
}

// handleClearCommand verarbeitet den /clear Befehl
func handleClearCommand(s *session, _ []string) error {
	return s.rl.ClearScreen()
}

// handleHelpCommand verarbeitet den /help Befehl
func handleHelpCommand(s *session, _ []string) error {
	fmt.Fprintln(s.out, "Available Commands:")
	for pair := s.commands.Oldest(); pair != nil; pair = pair.Next() {
		name := strings.TrimSpace(pair.Key + " " + pair.Value.Args)
		fmt.Fprintf(s.out, "  %-18s %s\n", name, pair.Value.Help)
	}

	fmt.Fprintln(s.out, "")
	fmt.Fprintln(s.out, "Any other line is echoed and added to the history.")
	fmt.Fprintln(s.out, "Use Ctrl + d or Ctrl + c to exit.")
	fmt.Fprintln(s.out, "")
	return nil
}
