// interactive_utils.go - Hilfsfunktionen fuer den interaktiven Modus
// Enthaelt Tab-Vervollstaendigung, Hinweise und Kommando-Vorschlaege
package cmd

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ollama/comlin/readline"
)

// maxSuggestDistance begrenzt, wie weit ein Tippfehler vom Kommando
// entfernt sein darf.
const maxSuggestDistance = 2

// complete liefert die Kandidaten fuer Tab
func (s *session) complete(line string) []string {
	if strings.HasPrefix(line, "/") {
		return s.completeCommand(line)
	}

	if strings.HasPrefix(line, "h") {
		return []string{"hello", "hello there"}
	}
	return nil
}

// completeCommand vervollstaendigt den Kommandonamen. Gibt es keinen
// Praefix-Treffer, werden aehnlich geschriebene Kommandos vorgeschlagen.
func (s *session) completeCommand(line string) []string {
	if strings.Contains(line, " ") {
		return nil
	}

	var matches []string
	for pair := s.commands.Oldest(); pair != nil; pair = pair.Next() {
		if strings.HasPrefix(pair.Key, line) {
			matches = append(matches, pair.Key)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	type scored struct {
		name     string
		distance int
	}

	var fuzzy []scored
	for pair := s.commands.Oldest(); pair != nil; pair = pair.Next() {
		if d := levenshtein.ComputeDistance(line, pair.Key); d <= maxSuggestDistance {
			fuzzy = append(fuzzy, scored{pair.Key, d})
		}
	}

	slices.SortStableFunc(fuzzy, func(a, b scored) int {
		return cmp.Compare(a.distance, b.distance)
	})

	for _, f := range fuzzy {
		matches = append(matches, f.name)
	}
	return matches
}

// suggest gibt das naechstgelegene Kommando zu name zurueck, oder "".
func (s *session) suggest(name string) string {
	if matches := s.completeCommand(name); len(matches) > 0 {
		return matches[0]
	}
	return ""
}

// hint zeigt hinter "hello" ein " World" und hinter Kommandos mit
// Argumenten deren Platzhalter.
func (s *session) hint(line string) *readline.Hint {
	if strings.EqualFold(line, "hello") {
		return &readline.Hint{Text: " World", Color: 35}
	}

	if command, ok := s.commands.Get(line); ok && command.Args != "" {
		return &readline.Hint{Text: " " + command.Args, Color: 90}
	}
	return nil
}
