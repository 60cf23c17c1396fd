// Package readline - Input-Verarbeitungsmodul
//
// Dieses Modul enthaelt die Zuordnung der dekodierten Befehle zu
// Puffer-, History- und Bildschirm-Operationen.
//
// Hauptkomponenten:
// - dispatch: fuehrt einen Command aus
// - feedDumb: reduzierter Befehlssatz fuer Terminals ohne Escape-Sequenzen
// - insert: Einfuegen mit schnellem Pfad am Zeilenende

package readline

import (
	"io"
)

// dispatch fuehrt cmd aus. Gibt true zurueck, wenn die Editierung beendet ist.
func (i *Instance) dispatch(cmd Command, c byte) (bool, error) {
	switch cmd {
	case CmdInsert:
		return false, i.insert(c)
	case CmdLineStart:
		return false, i.refreshIf(i.Buffer.MoveToStart())
	case CmdLineEnd:
		return false, i.refreshIf(i.Buffer.MoveToEnd())
	case CmdBackward:
		return false, i.refreshIf(i.Buffer.MoveLeft())
	case CmdForward:
		return false, i.refreshIf(i.Buffer.MoveRight())
	case CmdBackspace:
		return false, i.refreshIf(i.Buffer.Remove())
	case CmdDelete:
		return false, i.refreshIf(i.Buffer.Delete())
	case CmdDeleteOrEOF:
		if i.Buffer.IsEmpty() {
			return true, io.EOF
		}
		return false, i.refreshIf(i.Buffer.Delete())
	case CmdInterrupt:
		return true, ErrInterrupt
	case CmdSubmit:
		if i.mode&ModeMultiLine != 0 && i.Buffer.MoveToEnd() {
			if err := i.refresh(); err != nil {
				return true, err
			}
		}
		return true, nil
	case CmdKill:
		return false, i.refreshIf(i.Buffer.DeleteRemaining())
	case CmdClearLine:
		i.Buffer.Clear()
		return false, i.refresh()
	case CmdDeleteWord:
		return false, i.refreshIf(i.Buffer.DeleteWord())
	case CmdTranspose:
		return false, i.refreshIf(i.Buffer.Transpose())
	case CmdClearScreen:
		if err := i.ClearScreen(); err != nil {
			return false, err
		}
		return false, i.refresh()
	case CmdHistoryPrev:
		return false, i.historyStep(true)
	case CmdHistoryNext:
		return false, i.historyStep(false)
	default:
		return false, nil
	}
}

func (i *Instance) refreshIf(changed bool) error {
	if changed {
		return i.refresh()
	}
	return nil
}

// insert fuegt c an der Cursor-Position ein. Passt die Zeile am Ende noch in
// eine Bildschirmzeile, wird nur das neue Zeichen geschrieben.
func (i *Instance) insert(c byte) error {
	atEnd := i.Buffer.Pos == i.Buffer.Len()
	i.Buffer.Add(c)

	multiline := i.mode&ModeMultiLine != 0
	fits := len(i.prompt)+i.Buffer.Len() < i.Terminal.Columns()
	if atEnd && fits && i.hintFn == nil && (!multiline || i.render.OldRows <= 1) {
		if i.mode&ModeMasked != 0 {
			c = '*'
		}
		i.render.OldPos = i.Buffer.Pos
		if multiline {
			i.render.OldRows = 1
		}
		return i.Terminal.Write(string([]byte{c}))
	}

	return i.refresh()
}

// historyStep ersetzt die Zeile durch den vorherigen oder naechsten
// History-Eintrag.
func (i *Instance) historyStep(prev bool) error {
	entry, ok := i.History.Step(i.Buffer.String(), prev)
	if !ok {
		return nil
	}

	i.Buffer.Replace(entry)
	return i.refresh()
}

// feedDumb behandelt Eingaben auf Terminals ohne Cursor-Steuerung: Bytes
// werden nur geechot, Backspace loescht rueckwaerts mit "\b \b".
func (i *Instance) feedDumb(c byte) (bool, error) {
	switch c {
	case CharInterrupt:
		return true, ErrInterrupt
	case CharDelete:
		return true, io.EOF
	case CharCtrlJ, CharEnter:
		return true, nil
	case CharBackspace, CharCtrlH:
		if i.Buffer.Remove() {
			return false, i.Terminal.Write("\b \b")
		}
		return false, nil
	case CharNull:
		return false, nil
	}

	i.Buffer.Add(c)
	return false, i.Terminal.Write(string([]byte{c}))
}
