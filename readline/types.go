// types.go - Steuerzeichen, Tastencodes und ANSI-Sequenzen
//
// Dieses Modul enthaelt:
// - Char*: Steuerbytes 0x00-0x1F sowie DEL, wie sie im Raw-Mode ankommen
// - Key*/Meta*: dritte Bytes von ESC-Sequenzen (Pfeiltasten, Home/End, Delete)
// - ANSI-Konstanten fuer Cursor-Bewegung und Bildschirm-Loeschen
package readline

import "strconv"

const (
	CharNull      = 0
	CharLineStart = 1
	CharBackward  = 2
	CharInterrupt = 3
	CharDelete    = 4
	CharLineEnd   = 5
	CharForward   = 6
	CharBell      = 7
	CharCtrlH     = 8
	CharTab       = 9
	CharCtrlJ     = 10
	CharKill      = 11
	CharCtrlL     = 12
	CharEnter     = 13
	CharNext      = 14
	CharPrev      = 16
	CharTranspose = 20
	CharCtrlU     = 21
	CharCtrlW     = 23
	CharEsc       = 27
	CharSpace     = 32
	CharEscapeEx  = 91
	CharEscapeO   = 79
	CharBackspace = 127
)

const (
	KeyDel    = 51
	KeyTilde  = 126
	KeyUp     = 65
	KeyDown   = 66
	KeyRight  = 67
	KeyLeft   = 68
	MetaEnd   = 70
	MetaStart = 72
)

const (
	Esc = "\x1b"

	CursorBOL   = "\r"
	CursorUp    = Esc + "[1A"
	ClearToEOL  = Esc + "[0K"
	ClearScreen = Esc + "[2J"
	CursorReset = Esc + "[H"

	CursorPosition = Esc + "[6n"
	CursorFarRight = Esc + "[999C"

	ColorReset = Esc + "[0m"
)

func CursorUpN(n int) string {
	return Esc + "[" + strconv.Itoa(n) + "A"
}

func CursorDownN(n int) string {
	return Esc + "[" + strconv.Itoa(n) + "B"
}

func CursorRightN(n int) string {
	return Esc + "[" + strconv.Itoa(n) + "C"
}

func CursorLeftN(n int) string {
	return Esc + "[" + strconv.Itoa(n) + "D"
}
