// history.go - Begrenzte Eingabe-History mit Persistenz
//
// Dieses Modul enthaelt:
// - History: geordnete Liste vergangener Zeilen (aelteste zuerst)
// - Add/SetLimit: Einfuegen mit Duplikat-Unterdrueckung und Kapazitaetsgrenze
// - Step: Navigation, die den bearbeiteten Text im aktuellen Eintrag ablegt
// - Save/Load: Textdatei, ein Eintrag pro Zeile, nur fuer den Besitzer lesbar
package readline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/v2/lists/arraylist"
)

const DefaultHistoryLimit = 100

type History struct {
	Buf   *arraylist.List[string]
	Limit int

	// Pos zaehlt vom neuesten Eintrag rueckwaerts (0 = aktuelle Zeile).
	Pos int
}

// NewHistory erstellt eine History mit der Kapazitaet limit.
// limit == 0 deaktiviert die History.
func NewHistory(limit int) *History {
	return &History{
		Buf:   arraylist.New[string](),
		Limit: max(limit, 0),
	}
}

func (h *History) Size() int {
	return h.Buf.Size()
}

// Entries gibt eine Kopie aller Eintraege zurueck, aelteste zuerst.
func (h *History) Entries() []string {
	return h.Buf.Values()
}

// Add haengt line an. Ist line gleich dem neuesten Eintrag, passiert nichts.
func (h *History) Add(line string) {
	if h.Limit == 0 {
		return
	}

	if last, ok := h.Buf.Get(h.Buf.Size() - 1); ok && last == line {
		return
	}

	h.push(line)
}

// push haengt line ohne Duplikatpruefung an und verdraengt bei Bedarf den
// aeltesten Eintrag.
func (h *History) push(line string) bool {
	if h.Limit == 0 {
		return false
	}

	if h.Buf.Size() >= h.Limit {
		h.Buf.Remove(0)
	}
	h.Buf.Add(line)
	return true
}

// pop entfernt den neuesten Eintrag und setzt die Navigation zurueck.
func (h *History) pop() {
	if h.Buf.Size() > 0 {
		h.Buf.Remove(h.Buf.Size() - 1)
	}
	h.Pos = 0
}

// SetLimit aendert die Kapazitaet. Beim Verkleinern fallen die aeltesten
// Eintraege weg.
func (h *History) SetLimit(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: history length %d", ErrInvalidArgument, n)
	}

	for h.Buf.Size() > n {
		h.Buf.Remove(0)
	}
	h.Limit = n
	h.Pos = min(h.Pos, max(h.Buf.Size()-1, 0))
	return nil
}

// Step legt line im gerade angezeigten Eintrag ab und bewegt sich einen
// Eintrag zurueck (prev) oder vor. Gibt den neuen Eintrag zurueck, oder
// false, wenn es in diese Richtung nicht weitergeht.
func (h *History) Step(line string, prev bool) (string, bool) {
	size := h.Buf.Size()
	if size <= 1 {
		return "", false
	}

	h.Buf.Set(size-1-h.Pos, line)

	if prev {
		h.Pos += 1
	} else {
		if h.Pos == 0 {
			return "", false
		}
		h.Pos -= 1
	}

	if h.Pos >= size {
		h.Pos = size - 1
		return "", false
	}

	entry, _ := h.Buf.Get(size - 1 - h.Pos)
	return entry, true
}

// Save schreibt alle nicht-leeren Eintraege zeilenweise nach path.
func (h *History) Save(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoFile, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range h.Buf.Values() {
		if line == "" {
			continue
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("%w: %w", ErrBadWrite, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrBadWrite, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadWrite, err)
	}
	return nil
}

// Load liest path und ruft Add fuer jede nicht-leere Zeile auf, sodass
// Duplikat- und Kapazitaetsregeln wie bei getippten Zeilen gelten.
// Steuerbytes werden verworfen; eine letzte Zeile ohne Newline zaehlt mit.
func (h *History) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoFile, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var line []byte
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return fmt.Errorf("%w: %w", ErrBadRead, err)
		}

		switch {
		case c == '\n':
			if len(line) > 0 {
				h.Add(string(line))
				line = line[:0]
			}
		case c >= CharSpace && c != CharBackspace:
			line = append(line, c)
		}
	}

	if len(line) > 0 {
		h.Add(string(line))
	}
	return nil
}
