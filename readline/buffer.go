// Buffer-Modul: Hauptstruktur und Basis-Funktionen
// Dieses Modul verwaltet den Textpuffer fuer die Readline-Eingabe.
// Der Puffer kennt weder Terminal noch Escape-Sequenzen; jede Spalte ist ein Byte.
// Siehe auch: buffer_cursor.go, buffer_edit.go

package readline

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// Buffer haelt die aktuell bearbeitete Zeile und die Cursor-Position.
// Invariante: 0 <= Pos <= Buf.Size()
type Buffer struct {
	Pos int
	Buf *arraylist.List[byte]
}

func NewBuffer() *Buffer {
	return &Buffer{
		Buf: arraylist.New[byte](),
	}
}

func (b *Buffer) Len() int {
	return b.Buf.Size()
}

func (b *Buffer) IsEmpty() bool {
	return b.Buf.Empty()
}

func (b *Buffer) Bytes() []byte {
	return b.Buf.Values()
}

func (b *Buffer) String() string {
	return string(b.Buf.Values())
}

// At liefert das Byte an Index i, oder 0 ausserhalb des Puffers.
func (b *Buffer) At(i int) byte {
	c, _ := b.Buf.Get(i)
	return c
}
