// Package readline - Terminal-Modul
//
// Dieses Modul enthaelt die Terminal-Strukturen und -Methoden fuer die
// Raw-Mode-Terminal-Interaktion.
//
// Hauptkomponenten:
// - Terminal: Ein-/Ausgabe-Deskriptoren, Raw-Mode und Spaltenzahl
// - NewTerminal: Konstruktor, ermittelt die Terminalbreite
// - Read/Write: byteweises Lesen, vollstaendiges Schreiben
// - IsUnsupported: erkennt "dumme" Terminals ohne Escape-Sequenzen

package readline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/term"
)

const DefaultColumns = 80

// cursorReplyLimit begrenzt die Antwort auf ESC[6n, damit eine kaputte
// Antwort nicht endlos blockiert.
const cursorReplyLimit = 31

var unsupportedTerms = []string{"dumb", "cons25", "emacs"}

// IsUnsupported meldet, ob name ein Terminal ohne VT100-Escapes bezeichnet.
func IsUnsupported(name string) bool {
	for _, t := range unsupportedTerms {
		if strings.EqualFold(name, t) {
			return true
		}
	}
	return false
}

// Terminal verwaltet die Terminal-Ein-/Ausgabe im Raw-Mode
type Terminal struct {
	in      io.Reader
	out     io.Writer
	inFd    int
	outFd   int
	rawmode bool
	termios *term.State
	cols    int
}

// NewTerminal erstellt eine neue Terminal-Instanz. Reader und Writer mit
// einer Fd-Methode (z.B. *os.File) werden als Deskriptoren behandelt.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:    in,
		out:   out,
		inFd:  fdOf(in),
		outFd: fdOf(out),
	}
	t.cols = t.probeColumns()
	return t
}

func fdOf(v any) int {
	if f, ok := v.(interface{ Fd() uintptr }); ok {
		return int(f.Fd())
	}
	return -1
}

func isTerminal(fd int) bool {
	return fd >= 0 && term.IsTerminal(fd)
}

// InputFd gibt den Eingabe-Deskriptor zurueck, oder -1.
func (t *Terminal) InputFd() int {
	return t.inFd
}

func (t *Terminal) Columns() int {
	return t.cols
}

func (t *Terminal) SetColumns(cols int) {
	if cols > 0 {
		t.cols = cols
	}
}

// EnableRawMode schaltet den Raw-Mode ein und merkt sich die alten
// Einstellungen. Ohne Terminal am Eingang passiert nichts.
func (t *Terminal) EnableRawMode() error {
	if t.rawmode || !isTerminal(t.inFd) {
		return nil
	}

	termios, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadTerminal, err)
	}

	t.termios = termios
	t.rawmode = true
	return nil
}

func (t *Terminal) DisableRawMode() error {
	if !t.rawmode {
		return nil
	}

	if err := term.Restore(t.inFd, t.termios); err != nil {
		return fmt.Errorf("%w: %w", ErrBadTerminal, err)
	}

	t.termios = nil
	t.rawmode = false
	return nil
}

// Read liest ein einzelnes Byte. Ende der Eingabe ergibt io.EOF.
func (t *Terminal) Read() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(t.in, b[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("%w: %w", ErrBadRead, err)
	}
	return b[0], nil
}

func (t *Terminal) Write(s string) error {
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("%w: %w", ErrBadWrite, err)
	}
	return nil
}

// Beep gibt ein BEL aus. Fehler werden verschluckt: ein fehlender Piepton
// darf das Editieren nicht abbrechen.
func (t *Terminal) Beep() {
	if err := t.Write(string(rune(CharBell))); err != nil {
		slog.Debug("readline: bell failed", "error", err)
	}
}

// probeColumns fragt die Fenstergroesse ab, faellt auf die Abfrage der
// Cursor-Position zurueck und zuletzt auf 80 Spalten.
func (t *Terminal) probeColumns() int {
	if !isTerminal(t.outFd) {
		return DefaultColumns
	}

	if width, _, err := term.GetSize(t.outFd); err == nil && width > 0 {
		return width
	}

	start, err := t.cursorColumn()
	if err != nil {
		slog.Debug("readline: cursor position probe failed", "error", err)
		return DefaultColumns
	}

	if err := t.Write(CursorFarRight); err != nil {
		return DefaultColumns
	}

	cols, err := t.cursorColumn()
	if err != nil {
		slog.Debug("readline: cursor position probe failed", "error", err)
		return DefaultColumns
	}

	if cols > start {
		if err := t.Write(CursorLeftN(cols - start)); err != nil {
			slog.Debug("readline: could not restore cursor after probe", "error", err)
		}
	}

	return cols
}

// cursorColumn liest die Antwort ESC [ rows ; cols R auf ESC[6n.
func (t *Terminal) cursorColumn() (int, error) {
	if err := t.Write(CursorPosition); err != nil {
		return 0, err
	}

	reply := make([]byte, 0, cursorReplyLimit)
	for len(reply) < cursorReplyLimit {
		c, err := t.Read()
		if err != nil || c == 'R' {
			break
		}
		reply = append(reply, c)
	}

	if len(reply) < 2 || reply[0] != CharEsc || reply[1] != CharEscapeEx {
		return 0, fmt.Errorf("unexpected cursor reply %q", reply)
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, fmt.Errorf("unexpected cursor reply %q: %w", reply, err)
	}

	return cols, nil
}
