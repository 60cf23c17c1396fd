package readline

import (
	"strings"
	"testing"
)

func TestRenderSingleLine(t *testing.T) {
	tests := []struct {
		name  string
		v     view
		flags refreshFlags
		want  string
	}{
		{
			name:  "fits",
			v:     view{prompt: "> ", buf: []byte("hello"), pos: 3, cols: 10},
			flags: refreshAll,
			want:  "\r> hello\x1b[0K\r\x1b[5C",
		},
		{
			name:  "scrolls to keep cursor visible",
			v:     view{prompt: "> ", buf: []byte("abcdefghijkl"), pos: 12, cols: 10},
			flags: refreshAll,
			want:  "\r> fghijkl\x1b[0K\r\x1b[9C",
		},
		{
			name:  "truncates tail",
			v:     view{prompt: "> ", buf: []byte("abcdefghijkl"), pos: 0, cols: 10},
			flags: refreshAll,
			want:  "\r> abcdefgh\x1b[0K\r\x1b[2C",
		},
		{
			name:  "masked",
			v:     view{prompt: "pw: ", buf: []byte("secret"), pos: 6, cols: 80, masked: true},
			flags: refreshAll,
			want:  "\rpw: ******\x1b[0K\r\x1b[10C",
		},
		{
			name:  "column zero",
			v:     view{prompt: "", buf: []byte("abc"), pos: 0, cols: 80},
			flags: refreshAll,
			want:  "\rabc\x1b[0K\r",
		},
		{
			name:  "clean only",
			v:     view{prompt: "> ", buf: []byte("hello"), pos: 3, cols: 10},
			flags: refreshClean,
			want:  "\r\x1b[0K",
		},
		{
			name:  "prompt wider than terminal",
			v:     view{prompt: "0123456789>", buf: []byte("ab"), pos: 2, cols: 10},
			flags: refreshAll,
			want:  "\r0123456789>\x1b[0K\r\x1b[11C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderSingleLine(tt.v, tt.flags); got != tt.want {
				t.Errorf("renderSingleLine() = %q, erwartet %q", got, tt.want)
			}
		})
	}
}

func TestRenderHint(t *testing.T) {
	tests := []struct {
		name string
		v    view
		want string
	}{
		{
			name: "colored",
			v:    view{prompt: "> ", buf: []byte("hello"), pos: 5, cols: 20, hint: &Hint{Text: " World", Color: 35}},
			want: "\r> hello\x1b[0;35;49m World\x1b[0m\x1b[0K\r\x1b[7C",
		},
		{
			name: "clipped",
			v:    view{prompt: "> ", buf: []byte("hello"), pos: 5, cols: 10, hint: &Hint{Text: " World"}},
			want: "\r> hello Wo\x1b[0K\r\x1b[7C",
		},
		{
			name: "bold defaults to white",
			v:    view{prompt: "", buf: []byte("a"), pos: 1, cols: 10, hint: &Hint{Text: "b", Bold: true}},
			want: "\ra\x1b[1;37;49mb\x1b[0m\x1b[0K\r\x1b[1C",
		},
		{
			name: "hidden when masked",
			v:    view{prompt: "", buf: []byte("a"), pos: 1, cols: 10, masked: true, hint: &Hint{Text: "b"}},
			want: "\r*\x1b[0K\r\x1b[1C",
		},
		{
			name: "no room",
			v:    view{prompt: "> ", buf: []byte("12345678"), pos: 7, cols: 10, hint: &Hint{Text: "x"}},
			want: "\r> 12345678\x1b[0K\r\x1b[9C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderSingleLine(tt.v, refreshAll); got != tt.want {
				t.Errorf("renderSingleLine() = %q, erwartet %q", got, tt.want)
			}
		})
	}
}

func TestRenderMultiLine(t *testing.T) {
	x := func(n int) []byte { return []byte(strings.Repeat("x", n)) }

	tests := []struct {
		name     string
		before   Renderer
		v        view
		flags    refreshFlags
		want     string
		wantRows int
	}{
		{
			name:     "three rows",
			v:        view{buf: x(12), pos: 12, cols: 5},
			flags:    refreshAll,
			want:     "\r\x1b[0K\rxxxxxxxxxxxx\x1b[0K\r\x1b[2C",
			wantRows: 3,
		},
		{
			name:     "cursor on wrap boundary",
			v:        view{buf: x(10), pos: 10, cols: 5},
			flags:    refreshAll,
			want:     "\r\x1b[0K\rxxxxxxxxxx\x1b[0K\n\r\r",
			wantRows: 3,
		},
		{
			name:     "cursor moved up",
			v:        view{buf: x(12), pos: 0, cols: 5},
			flags:    refreshAll,
			want:     "\r\x1b[0K\rxxxxxxxxxxxx\x1b[0K\x1b[2A\r",
			wantRows: 3,
		},
		{
			name:     "clean previous rows",
			before:   Renderer{OldPos: 0, OldRows: 3},
			v:        view{prompt: "> ", buf: []byte("ab"), pos: 2, cols: 5},
			flags:    refreshAll,
			want:     "\x1b[2B\r\x1b[0K\x1b[1A\r\x1b[0K\x1b[1A\r\x1b[0K\r> ab\x1b[0K\r\x1b[4C",
			wantRows: 1,
		},
		{
			name:     "write only",
			before:   Renderer{OldPos: 2, OldRows: 1},
			v:        view{prompt: "> ", buf: []byte("ab"), pos: 2, cols: 10},
			flags:    refreshWrite,
			want:     "\r> ab\x1b[0K\r\x1b[4C",
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.before
			if got := r.renderMultiLine(tt.v, tt.flags); got != tt.want {
				t.Errorf("renderMultiLine() = %q, erwartet %q", got, tt.want)
			}
			if r.OldRows != tt.wantRows {
				t.Errorf("OldRows = %d, erwartet %d", r.OldRows, tt.wantRows)
			}
			if r.OldPos != tt.v.pos {
				t.Errorf("OldPos = %d, erwartet %d", r.OldPos, tt.v.pos)
			}
		})
	}
}
