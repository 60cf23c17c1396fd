// Buffer-Edit-Modul: Bearbeitungsfunktionen fuer den Textpuffer
// Dieses Modul enthaelt alle Funktionen zum Hinzufuegen und Entfernen von Text.
// Jede Operation verschiebt den Inhalt hinter dem Cursor (O(n)), was fuer
// interaktive Zeilenlaengen genuegt.

package readline

// Add fuegt c an der Cursor-Position ein und rueckt den Cursor vor.
func (b *Buffer) Add(c byte) {
	if b.Pos == b.Buf.Size() {
		b.Buf.Add(c)
	} else {
		b.Buf.Insert(b.Pos, c)
	}
	b.Pos += 1
}

// Delete entfernt das Byte unter dem Cursor.
func (b *Buffer) Delete() bool {
	if b.Pos < b.Buf.Size() {
		b.Buf.Remove(b.Pos)
		return true
	}
	return false
}

// Remove entfernt das Byte links vom Cursor (Backspace).
func (b *Buffer) Remove() bool {
	if b.Pos > 0 {
		b.Pos -= 1
		b.Buf.Remove(b.Pos)
		return true
	}
	return false
}

// DeleteWord entfernt erst Leerzeichen vor dem Cursor, dann das Wort davor.
func (b *Buffer) DeleteWord() bool {
	end := b.Pos
	for b.Pos > 0 && b.At(b.Pos-1) == ' ' {
		b.Pos -= 1
	}
	for b.Pos > 0 && b.At(b.Pos-1) != ' ' {
		b.Pos -= 1
	}
	for range end - b.Pos {
		b.Buf.Remove(b.Pos)
	}
	return end != b.Pos
}

// DeleteRemaining entfernt alles ab dem Cursor bis zum Zeilenende.
func (b *Buffer) DeleteRemaining() bool {
	if b.Pos < b.Buf.Size() {
		for b.Buf.Size() > b.Pos {
			b.Buf.Remove(b.Buf.Size() - 1)
		}
		return true
	}
	return false
}

func (b *Buffer) Clear() {
	b.Buf.Clear()
	b.Pos = 0
}

// Transpose vertauscht das Byte vor dem Cursor mit dem unter dem Cursor.
// Der Cursor rueckt vor, ausser er steht auf dem letzten Byte.
func (b *Buffer) Transpose() bool {
	if b.Pos > 0 && b.Pos < b.Buf.Size() {
		b.Buf.Swap(b.Pos-1, b.Pos)
		if b.Pos != b.Buf.Size()-1 {
			b.Pos += 1
		}
		return true
	}
	return false
}

// Replace ersetzt den gesamten Inhalt, der Cursor steht danach am Ende.
func (b *Buffer) Replace(s string) {
	b.Buf.Clear()
	b.Buf.Add([]byte(s)...)
	b.Pos = b.Buf.Size()
}
