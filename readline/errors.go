// errors.go - Fehlerwerte und Status-Taxonomie
//
// Dieses Modul enthaelt:
// - Sentinel-Fehler fuer alle Fehlerklassen einer Editier-Sitzung
// - Status: aufzaehlbare Klassifikation, wie sie Aufrufer erwarten
// - StatusOf: bildet einen Fehler auf seinen Status ab
package readline

import (
	"errors"
	"io"
)

var (
	// ErrInterrupt wird zurueckgegeben, wenn der Benutzer Ctrl-C drueckt.
	ErrInterrupt = errors.New("Interrupt")

	ErrNoMemory    = errors.New("out of memory")
	ErrNoFile      = errors.New("file not found")
	ErrBadRead     = errors.New("failed to read from input")
	ErrBadWrite    = errors.New("failed to write to output")
	ErrBadTerminal = errors.New("failed to configure terminal")

	// ErrInvalidState meldet einen Aufruf ausserhalb des erlaubten
	// Lebenszyklus, z.B. Feed ohne vorheriges Start.
	ErrInvalidState = errors.New("invalid editing state")

	ErrInvalidArgument = errors.New("invalid argument")
)

// Status klassifiziert das Ergebnis einer Operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusEditing
	StatusEnd
	StatusInterrupted
	StatusNoMemory
	StatusNoFile
	StatusBadRead
	StatusBadWrite
	StatusBadTerminal
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusEditing:
		return "editing"
	case StatusEnd:
		return "end"
	case StatusInterrupted:
		return "interrupted"
	case StatusNoMemory:
		return "no memory"
	case StatusNoFile:
		return "no file"
	case StatusBadRead:
		return "bad read"
	case StatusBadWrite:
		return "bad write"
	case StatusBadTerminal:
		return "bad terminal"
	default:
		return "invalid"
	}
}

// StatusOf gibt den Status zu einem von diesem Paket gelieferten Fehler zurueck.
// nil ergibt StatusSuccess.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, io.EOF):
		return StatusEnd
	case errors.Is(err, ErrInterrupt):
		return StatusInterrupted
	case errors.Is(err, ErrNoMemory):
		return StatusNoMemory
	case errors.Is(err, ErrNoFile):
		return StatusNoFile
	case errors.Is(err, ErrBadRead):
		return StatusBadRead
	case errors.Is(err, ErrBadWrite):
		return StatusBadWrite
	case errors.Is(err, ErrBadTerminal):
		return StatusBadTerminal
	default:
		return StatusInvalid
	}
}

// FeedStatus fasst das Ergebnis von Feed als Status zusammen.
func FeedStatus(done bool, err error) Status {
	if err == nil && !done {
		return StatusEditing
	}
	return StatusOf(err)
}
