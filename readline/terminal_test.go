package readline

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingIO struct{}

func (failingIO) Read([]byte) (int, error)  { return 0, errors.New("device gone") }
func (failingIO) Write([]byte) (int, error) { return 0, errors.New("device gone") }

func TestIsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"dumb", true},
		{"DUMB", true},
		{"cons25", true},
		{"Emacs", true},
		{"xterm", false},
		{"xterm-256color", false},
		{"", false},
		{"dumber", false},
	}

	for _, tt := range tests {
		if got := IsUnsupported(tt.name); got != tt.want {
			t.Errorf("IsUnsupported(%q) = %v, erwartet %v", tt.name, got, tt.want)
		}
	}
}

func TestTerminalWithoutTTY(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader("x"), out)

	if term.Columns() != DefaultColumns {
		t.Errorf("Columns() = %d, erwartet %d", term.Columns(), DefaultColumns)
	}
	if term.InputFd() != -1 {
		t.Errorf("InputFd() = %d, erwartet -1", term.InputFd())
	}
	if out.Len() != 0 {
		t.Errorf("Breitenabfrage schreibt %q", out.String())
	}

	require.NoError(t, term.EnableRawMode())
	require.NoError(t, term.DisableRawMode())

	term.SetColumns(0)
	if term.Columns() != DefaultColumns {
		t.Errorf("SetColumns(0) aendert die Breite auf %d", term.Columns())
	}
	term.SetColumns(42)
	if term.Columns() != 42 {
		t.Errorf("Columns() = %d, erwartet 42", term.Columns())
	}

	c, err := term.Read()
	require.NoError(t, err)
	if c != 'x' {
		t.Errorf("Read() = %q, erwartet 'x'", c)
	}

	_, err = term.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestTerminalErrors(t *testing.T) {
	term := NewTerminal(failingIO{}, failingIO{})

	_, err := term.Read()
	require.ErrorIs(t, err, ErrBadRead)
	require.ErrorIs(t, term.Write("x"), ErrBadWrite)

	// Beep darf nicht fehlschlagen
	term.Beep()
}

func TestCursorColumn(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    int
		wantErr bool
	}{
		{"valid", "\x1b[12;42R", 42, false},
		{"trailing input untouched", "\x1b[1;7Rabc", 7, false},
		{"missing escape", "[12;42R", 0, true},
		{"garbage", "xyz", 0, true},
		{"no reply", "", 0, true},
		{"unterminated", strings.Repeat("9", 40), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			term := NewTerminal(strings.NewReader(tt.reply), out)

			got, err := term.cursorColumn()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if got != tt.want {
				t.Errorf("cursorColumn() = %d, erwartet %d", got, tt.want)
			}
			if out.String() != CursorPosition {
				t.Errorf("Ausgabe = %q, erwartet %q", out.String(), CursorPosition)
			}
		})
	}
}

func TestNewRejectsNil(t *testing.T) {
	_, err := New(nil, &bytes.Buffer{}, "xterm", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New(strings.NewReader(""), nil, "xterm", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
