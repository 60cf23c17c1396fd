// render.go - Bildschirmaufbau fuer Einzel- und Mehrzeilenmodus
//
// Dieses Modul enthaelt:
// - view: unveraenderliche Momentaufnahme von Prompt, Puffer und Breite
// - renderSingleLine: horizontales Scrollen innerhalb einer Zeile
// - Renderer.renderMultiLine: umbrechende Darstellung mit minimalen
//   Cursor-Bewegungen anhand der zuletzt gezeichneten Zeilen
// - Hint: optionaler Hinweistext hinter der Eingabe
//
// Jede Aktualisierung wird als ein String aufgebaut und mit einem einzigen
// Write ausgegeben, um Flackern zu vermeiden.
package readline

import (
	"fmt"
	"strings"
)

type refreshFlags uint

const (
	refreshClean refreshFlags = 1 << iota
	refreshWrite

	refreshAll = refreshClean | refreshWrite
)

// Hint ist ein Hinweistext, der hinter der Eingabe angezeigt, aber nie Teil
// der Zeile wird. Color ist ein ANSI-Farbcode (0 = keine Farbe).
type Hint struct {
	Text  string
	Color int
	Bold  bool
}

type view struct {
	prompt string
	buf    []byte
	pos    int
	cols   int
	masked bool
	hint   *Hint
}

func appendText(sb *strings.Builder, text []byte, masked bool) {
	if masked {
		sb.WriteString(strings.Repeat("*", len(text)))
	} else {
		sb.Write(text)
	}
}

// appendHint schreibt den Hinweis, sofern die Zeile noch Platz laesst.
func appendHint(sb *strings.Builder, v view) {
	if v.hint == nil || v.masked {
		return
	}

	used := len(v.prompt) + len(v.buf)
	if used >= v.cols {
		return
	}

	text := v.hint.Text
	if room := v.cols - used; len(text) > room {
		text = text[:room]
	}

	color, bold := v.hint.Color, 0
	if v.hint.Bold {
		bold = 1
		if color == 0 {
			color = 37
		}
	}

	if color != 0 {
		fmt.Fprintf(sb, Esc+"[%d;%d;49m", bold, color)
	}
	sb.WriteString(text)
	if color != 0 {
		sb.WriteString(ColorReset)
	}
}

// renderSingleLine schneidet vorne so viel ab, dass der Cursor sichtbar
// bleibt, und hinten so viel, dass Prompt und Text in eine Zeile passen.
func renderSingleLine(v view, flags refreshFlags) string {
	plen := len(v.prompt)
	text, pos := v.buf, v.pos

	if plen+pos >= v.cols {
		offset := min(plen+pos+1-v.cols, pos)
		text = text[offset:]
		pos -= offset
	}

	if plen+len(text) > v.cols {
		text = text[:max(v.cols-plen, 0)]
	}

	var sb strings.Builder
	sb.WriteString(CursorBOL)

	if flags&refreshWrite != 0 {
		sb.WriteString(v.prompt)
		appendText(&sb, text, v.masked)
		appendHint(&sb, v)
	}

	sb.WriteString(ClearToEOL)

	if flags&refreshWrite != 0 {
		sb.WriteString(CursorBOL)
		if col := pos + plen; col > 0 {
			sb.WriteString(CursorRightN(col))
		}
	}

	return sb.String()
}

// Renderer merkt sich, was der letzte Mehrzeilen-Refresh gezeichnet hat.
type Renderer struct {
	OldPos  int
	OldRows int
}

func (r *Renderer) Reset() {
	r.OldPos = 0
	r.OldRows = 0
}

// rowOf gibt die 1-basierte Zeile der Spalte plen+pos zurueck.
func rowOf(plen, pos, cols int) int {
	return (plen + pos + cols) / cols
}

func (r *Renderer) renderMultiLine(v view, flags refreshFlags) string {
	plen := len(v.prompt)
	cols := max(v.cols, 1)
	oldRow := rowOf(plen, r.OldPos, cols)
	oldRows := r.OldRows

	rows := (plen + len(v.buf) + cols - 1) / cols
	r.OldRows = rows

	var sb strings.Builder

	if flags&refreshClean != 0 {
		// zur letzten benutzten Zeile, dann jede Zeile leeren und hoch
		if oldRows > oldRow {
			sb.WriteString(CursorDownN(oldRows - oldRow))
		}
		for j := 1; j < oldRows; j++ {
			sb.WriteString(CursorBOL + ClearToEOL + CursorUp)
		}
		sb.WriteString(CursorBOL + ClearToEOL)
	}

	if flags&refreshWrite != 0 {
		sb.WriteString(CursorBOL)
		sb.WriteString(v.prompt)
		appendText(&sb, v.buf, v.masked)
		appendHint(&sb, v)
		sb.WriteString(ClearToEOL)

		// Cursor am Zeilenende genau auf der Umbruchspalte: neue Zeile erzwingen
		if v.pos > 0 && v.pos == len(v.buf) && (v.pos+plen)%cols == 0 {
			sb.WriteString("\n" + CursorBOL)
			rows++
			r.OldRows = max(r.OldRows, rows)
		}

		if row := rowOf(plen, v.pos, cols); rows > row {
			sb.WriteString(CursorUpN(rows - row))
		}

		sb.WriteString(CursorBOL)
		if col := (plen + v.pos) % cols; col > 0 {
			sb.WriteString(CursorRightN(col))
		}
	}

	r.OldPos = v.pos
	return sb.String()
}
