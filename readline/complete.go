// complete.go - Tab-Vervollstaendigung
//
// Dieses Modul enthaelt:
// - CompletionFunc: vom Aufrufer gelieferte Kandidatenliste fuer eine Zeile
// - completer: Zustand eines laufenden Vervollstaendigungs-Zyklus
// - Instance.complete: Tab blaettert, Escape verwirft, jede andere Taste
//   uebernimmt den angezeigten Kandidaten
package readline

// CompletionFunc liefert die Kandidaten fuer die aktuelle Zeile.
type CompletionFunc func(line string) []string

// HintFunc liefert einen optionalen Hinweis zur aktuellen Zeile.
type HintFunc func(line string) *Hint

type completer struct {
	fn     CompletionFunc
	active bool

	// idx == len(Kandidaten) bedeutet: Originalzeile anzeigen
	idx int
}

// candidates fragt den Callback neu ab; Kandidaten werden nicht
// zwischengespeichert.
func (c *completer) candidates(line string) []string {
	if c.fn == nil || line == "" {
		return nil
	}
	return c.fn(line)
}

// preview gibt den gerade angezeigten Kandidaten zurueck.
func (c *completer) preview(cands []string) (string, bool) {
	if c.active && c.idx < len(cands) {
		return cands[c.idx], true
	}
	return "", false
}

// complete verarbeitet c waehrend eines Zyklus oder beim ersten Tab.
// consumed == false bedeutet, dass c normal weiterverarbeitet werden soll.
func (i *Instance) complete(c byte) (consumed bool, err error) {
	cands := i.completion.candidates(i.Buffer.String())
	if len(cands) == 0 {
		i.Terminal.Beep()
		i.completion.active = false
		return false, nil
	}

	switch c {
	case CharTab:
		if !i.completion.active {
			i.completion.active = true
			i.completion.idx = 0
		} else {
			i.completion.idx = (i.completion.idx + 1) % (len(cands) + 1)
			if i.completion.idx == len(cands) {
				i.Terminal.Beep()
			}
		}
	case CharEsc:
		i.completion.active = false
	default:
		if cand, ok := i.completion.preview(cands); ok {
			i.Buffer.Replace(cand)
		}
		i.completion.active = false
	}

	return true, i.refreshCompletion(cands, refreshAll)
}

// refreshCompletion zeichnet die Zeile mit dem angezeigten Kandidaten, ohne
// den Puffer anzufassen.
func (i *Instance) refreshCompletion(cands []string, flags refreshFlags) error {
	cand, ok := i.completion.preview(cands)
	if !ok {
		return i.refreshWith(flags)
	}

	return i.draw(i.viewOf([]byte(cand), len(cand)), flags)
}
