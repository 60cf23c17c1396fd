// Buffer-Cursor-Modul: Cursor-Bewegungen im Textpuffer
// Dieses Modul enthaelt alle Funktionen zur Cursor-Navigation.
// Alle Funktionen melden, ob sich die Position geaendert hat, damit der
// Aufrufer unnoetige Refreshes vermeiden kann.

package readline

func (b *Buffer) MoveLeft() bool {
	if b.Pos > 0 {
		b.Pos -= 1
		return true
	}
	return false
}

func (b *Buffer) MoveRight() bool {
	if b.Pos < b.Buf.Size() {
		b.Pos += 1
		return true
	}
	return false
}

func (b *Buffer) MoveToStart() bool {
	if b.Pos > 0 {
		b.Pos = 0
		return true
	}
	return false
}

func (b *Buffer) MoveToEnd() bool {
	if b.Pos < b.Buf.Size() {
		b.Pos = b.Buf.Size()
		return true
	}
	return false
}
