// Package readline - Hauptmodul fuer interaktive Zeileneingabe
//
// Dieses Paket implementiert eine readline-aehnliche Zeilen-Editierung mit
// Unterstuetzung fuer History, Tab-Vervollstaendigung, Hinweise sowie
// Einzel- und Mehrzeilen-Darstellung auf Terminals unbekannter Breite.
//
// Hauptkomponenten:
// - Instance: eine Sitzung pro Terminal
// - Start/Feed/Stop: nicht-blockierende Editierung fuer eigene Event-Loops
// - Hide/Show: Ausgabe des Aufrufers zwischen zwei Feed-Aufrufen
// - Readline: blockierende Bequemlichkeitsfunktion auf Start/Feed/Stop

package readline

import (
	"fmt"
	"io"
	"log/slog"
)

// Mode steuert die Darstellung der Eingabezeile.
type Mode uint

const (
	ModeMasked Mode = 1 << iota
	ModeMultiLine
)

type editState int

const (
	stateIdle editState = iota
	stateEditing
	stateHidden
	stateFinished
)

// Instance ist die Hauptstruktur fuer readline-Operationen
type Instance struct {
	Terminal *Terminal
	History  *History
	Buffer   *Buffer

	prompt     string
	mode       Mode
	dumb       bool
	state      editState
	slot       bool
	render     Renderer
	completion completer
	hintFn     HintFunc
}

// New erstellt eine Sitzung. termName ist der Terminaltyp (ueblicherweise
// $TERM); "dumb", "cons25" und "emacs" schalten alle Escape-Sequenzen ab.
// Die Breite wird beim Erstellen ermittelt; dafuer koennen Escape-Sequenzen
// geschrieben werden.
func New(in io.Reader, out io.Writer, termName string, historyLen int) (*Instance, error) {
	if in == nil || out == nil {
		return nil, fmt.Errorf("%w: nil reader or writer", ErrInvalidArgument)
	}

	return &Instance{
		Terminal: NewTerminal(in, out),
		History:  NewHistory(historyLen),
		Buffer:   NewBuffer(),
		dumb:     IsUnsupported(termName),
	}, nil
}

// Close stellt den Cooked-Mode wieder her, falls noch editiert wird, ohne
// weitere Ausgabe zu schreiben.
func (i *Instance) Close() error {
	i.History.Buf.Clear()
	i.slot = false
	i.state = stateIdle
	return i.Terminal.DisableRawMode()
}

// SetMode wirkt ab dem naechsten Refresh.
func (i *Instance) SetMode(mode Mode) {
	i.mode = mode
}

func (i *Instance) Mode() Mode {
	return i.mode
}

func (i *Instance) Dumb() bool {
	return i.dumb
}

// SetColumns ueberschreibt die ermittelte Terminalbreite, z.B. nach SIGWINCH.
func (i *Instance) SetColumns(cols int) {
	i.Terminal.SetColumns(cols)
}

func (i *Instance) SetCompletionFunc(fn CompletionFunc) {
	i.completion.fn = fn
	i.completion.active = false
}

func (i *Instance) SetHintFunc(fn HintFunc) {
	i.hintFn = fn
}

// Text gibt die aktuelle Zeile zurueck, nach dem Editieren die eingegebene.
func (i *Instance) Text() string {
	return i.Buffer.String()
}

// Start schaltet in den Raw-Mode, legt einen leeren History-Eintrag fuer die
// aktuelle Zeile an und zeigt den Prompt.
func (i *Instance) Start(prompt string) error {
	if i.state != stateIdle {
		return fmt.Errorf("%w: edit already started", ErrInvalidState)
	}

	if err := i.Terminal.EnableRawMode(); err != nil {
		return err
	}

	i.Buffer.Clear()
	i.render.Reset()
	i.completion.active = false
	i.History.Pos = 0
	i.slot = i.History.push("")
	i.prompt = prompt
	i.state = stateEditing

	if err := i.Terminal.Write(prompt); err != nil {
		i.conclude()
		i.state = stateIdle
		//nolint:errcheck
		i.Terminal.DisableRawMode()
		return err
	}
	return nil
}

// Feed liest ein Byte und verarbeitet es. done == true bedeutet, dass die
// Editierung beendet ist und Stop aufgerufen werden muss: err ist dann nil
// (Zeile abgeschickt), ErrInterrupt (Ctrl-C), io.EOF (Ctrl-D bei leerer
// Zeile) oder ein I/O-Fehler.
func (i *Instance) Feed() (done bool, err error) {
	if i.state != stateEditing {
		return false, fmt.Errorf("%w: feed without active edit", ErrInvalidState)
	}

	done, err = i.feed()
	if done || err != nil {
		i.conclude()
		return true, err
	}
	return false, nil
}

func (i *Instance) feed() (bool, error) {
	c, err := i.Terminal.Read()
	if err != nil {
		return true, err
	}

	if i.dumb {
		return i.feedDumb(c)
	}

	if i.completion.fn != nil && (i.completion.active || c == CharTab) {
		consumed, err := i.complete(c)
		if err != nil || consumed {
			return false, err
		}
	}

	cmd := Decode(c)
	if cmd == CmdEscape {
		cmd = DecodeEscape(i.Terminal)
	}
	return i.dispatch(cmd, c)
}

// conclude entfernt den History-Eintrag der aktuellen Zeile.
func (i *Instance) conclude() {
	if i.slot {
		i.History.pop()
		i.slot = false
	}
	i.completion.active = false
	i.state = stateFinished
}

// Stop stellt den Terminal-Modus wieder her und beendet die Zeile mit einem
// Newline. Der eingegebene Text bleibt ueber Text abrufbar.
func (i *Instance) Stop() error {
	if i.state == stateIdle {
		return fmt.Errorf("%w: stop without active edit", ErrInvalidState)
	}

	i.conclude()
	i.state = stateIdle

	if err := i.Terminal.DisableRawMode(); err != nil {
		return err
	}
	return i.Terminal.Write("\n")
}

// Hide loescht die Eingabezeile vom Bildschirm, damit der Aufrufer eigene
// Ausgabe schreiben kann. Ein zweites Hide tut nichts.
func (i *Instance) Hide() error {
	switch i.state {
	case stateHidden:
		return nil
	case stateEditing:
	default:
		return fmt.Errorf("%w: hide without active edit", ErrInvalidState)
	}

	i.state = stateHidden
	return i.refreshWith(refreshClean)
}

// Show zeichnet Prompt und Zeile nach einem Hide erneut. Ein Show ohne
// vorheriges Hide tut nichts.
func (i *Instance) Show() error {
	switch i.state {
	case stateEditing:
		return nil
	case stateHidden:
	default:
		return fmt.Errorf("%w: show without active edit", ErrInvalidState)
	}

	i.state = stateEditing
	if i.completion.active {
		cands := i.completion.candidates(i.Buffer.String())
		return i.refreshCompletion(cands, refreshWrite)
	}
	return i.refreshWith(refreshWrite)
}

// Readline liest eine Zeile blockierend: Start, Feed bis zum Ende, Stop.
// Der erste Fehler aus Start, Feed oder Stop wird zurueckgegeben.
func (i *Instance) Readline(prompt string) (string, error) {
	if err := i.Start(prompt); err != nil {
		return "", err
	}

	var feedErr error
	for {
		done, err := i.Feed()
		if done {
			feedErr = err
			break
		}
	}

	stopErr := i.Stop()
	if feedErr != nil {
		return i.Text(), feedErr
	}
	return i.Text(), stopErr
}

// ClearScreen loescht den Bildschirm und setzt den Cursor nach links oben.
func (i *Instance) ClearScreen() error {
	return i.Terminal.Write(CursorReset + ClearScreen)
}

func (i *Instance) HistoryAdd(line string) error {
	i.History.Add(line)
	return nil
}

func (i *Instance) HistorySave(path string) error {
	return i.History.Save(path)
}

func (i *Instance) HistoryLoad(path string) error {
	if err := i.History.Load(path); err != nil {
		slog.Debug("readline: history load failed", "path", path, "error", err)
		return err
	}
	return nil
}

func (i *Instance) HistorySetMaxLen(n int) error {
	return i.History.SetLimit(n)
}

func (i *Instance) view() view {
	return i.viewOf(i.Buffer.Bytes(), i.Buffer.Pos)
}

func (i *Instance) viewOf(buf []byte, pos int) view {
	v := view{
		prompt: i.prompt,
		buf:    buf,
		pos:    pos,
		cols:   i.Terminal.Columns(),
		masked: i.mode&ModeMasked != 0,
	}
	if i.hintFn != nil {
		v.hint = i.hintFn(string(buf))
	}
	return v
}

func (i *Instance) refresh() error {
	return i.refreshWith(refreshAll)
}

func (i *Instance) refreshWith(flags refreshFlags) error {
	return i.draw(i.view(), flags)
}

// draw gibt v in einem einzigen Write aus. Dumme Terminals bekommen nichts.
func (i *Instance) draw(v view, flags refreshFlags) error {
	if i.dumb {
		return nil
	}

	var update string
	if i.mode&ModeMultiLine != 0 {
		update = i.render.renderMultiLine(v, flags)
	} else {
		update = renderSingleLine(v, flags)
	}
	return i.Terminal.Write(update)
}
