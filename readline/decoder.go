// decoder.go - Escape-Decoder
//
// Dieses Modul enthaelt:
// - Command: logische Editierbefehle
// - Decode: ordnet ein einzelnes Eingabebyte einem Befehl zu
// - DecodeEscape: liest den Rest einer ESC-Sequenz und loest sie auf
//
// Unbekannte oder abgeschnittene Sequenzen werden stillschweigend
// verschluckt und ergeben CmdNone.
package readline

import "log/slog"

type Command int

const (
	CmdNone Command = iota
	CmdInsert
	CmdLineStart
	CmdBackward
	CmdInterrupt
	CmdDeleteOrEOF
	CmdLineEnd
	CmdForward
	CmdBackspace
	CmdSubmit
	CmdKill
	CmdClearScreen
	CmdHistoryNext
	CmdHistoryPrev
	CmdTranspose
	CmdClearLine
	CmdDeleteWord
	CmdEscape
	CmdDelete
)

var commandNames = [...]string{
	CmdNone:        "none",
	CmdInsert:      "insert",
	CmdLineStart:   "line-start",
	CmdBackward:    "backward",
	CmdInterrupt:   "interrupt",
	CmdDeleteOrEOF: "delete-or-eof",
	CmdLineEnd:     "line-end",
	CmdForward:     "forward",
	CmdBackspace:   "backspace",
	CmdSubmit:      "submit",
	CmdKill:        "kill",
	CmdClearScreen: "clear-screen",
	CmdHistoryNext: "history-next",
	CmdHistoryPrev: "history-prev",
	CmdTranspose:   "transpose",
	CmdClearLine:   "clear-line",
	CmdDeleteWord:  "delete-word",
	CmdEscape:      "escape",
	CmdDelete:      "delete",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// controlCommands bildet die Steuerbytes 0x00-0x1F ab. Nicht belegte
// Eintraege sind CmdNone und werden ignoriert.
var controlCommands = [CharSpace]Command{
	CharLineStart: CmdLineStart,
	CharBackward:  CmdBackward,
	CharInterrupt: CmdInterrupt,
	CharDelete:    CmdDeleteOrEOF,
	CharLineEnd:   CmdLineEnd,
	CharForward:   CmdForward,
	CharCtrlH:     CmdBackspace,
	CharCtrlJ:     CmdSubmit,
	CharKill:      CmdKill,
	CharCtrlL:     CmdClearScreen,
	CharEnter:     CmdSubmit,
	CharNext:      CmdHistoryNext,
	CharPrev:      CmdHistoryPrev,
	CharTranspose: CmdTranspose,
	CharCtrlU:     CmdClearLine,
	CharCtrlW:     CmdDeleteWord,
	CharEsc:       CmdEscape,
}

// Decode klassifiziert ein einzelnes Eingabebyte.
func Decode(c byte) Command {
	switch {
	case c < CharSpace:
		return controlCommands[c]
	case c == CharBackspace:
		return CmdBackspace
	default:
		return CmdInsert
	}
}

// ByteReader liefert die naechsten Bytes einer Escape-Sequenz.
type ByteReader interface {
	Read() (byte, error)
}

// DecodeEscape wird nach einem ESC aufgerufen und liest die folgenden zwei
// (bei ESC [ Ziffer drei) Bytes. Lesefehler mitten in der Sequenz gelten als
// unvollstaendige Sequenz und ergeben CmdNone.
func DecodeEscape(r ByteReader) Command {
	var seq [3]byte
	var err error
	if seq[0], err = r.Read(); err != nil {
		return CmdNone
	}
	if seq[1], err = r.Read(); err != nil {
		return CmdNone
	}

	switch seq[0] {
	case CharEscapeEx:
		if seq[1] >= '0' && seq[1] <= '9' {
			if seq[2], err = r.Read(); err != nil {
				return CmdNone
			}
			if seq[1] == KeyDel && seq[2] == KeyTilde {
				return CmdDelete
			}
			slog.Debug("readline: ignoring escape sequence", "seq", seq[:])
			return CmdNone
		}

		switch seq[1] {
		case KeyUp:
			return CmdHistoryPrev
		case KeyDown:
			return CmdHistoryNext
		case KeyRight:
			return CmdForward
		case KeyLeft:
			return CmdBackward
		case MetaStart:
			return CmdLineStart
		case MetaEnd:
			return CmdLineEnd
		}
	case CharEscapeO:
		switch seq[1] {
		case MetaStart:
			return CmdLineStart
		case MetaEnd:
			return CmdLineEnd
		}
	}

	slog.Debug("readline: ignoring escape sequence", "seq", seq[:2])
	return CmdNone
}
