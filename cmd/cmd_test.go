package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ollama/comlin/readline"
)

func TestEnvHandler(t *testing.T) {
	t.Setenv("COMLIN_HISTORY_LEN", "42")
	t.Setenv("COMLIN_MASK", "1")

	cli := NewCLI()
	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"env"})
	require.NoError(t, cli.Execute())

	got := out.String()
	for _, want := range []string{"NAME", "COMLIN_HISTORY_LEN", "42", "COMLIN_MASK", "true", "TERM"} {
		if !strings.Contains(got, want) {
			t.Errorf("Tabelle enthaelt %q nicht:\n%s", want, got)
		}
	}
	if strings.Index(got, "COMLIN_DEBUG") > strings.Index(got, "TERM") {
		t.Errorf("Tabelle nicht sortiert:\n%s", got)
	}
}

func TestOptionsFromFlags(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		args      []string
		wantMode  readline.Mode
		wantAsync bool
		wantFile  bool
		wantErr   bool
	}{
		{
			name:     "defaults",
			wantFile: true,
		},
		{
			name:     "environment",
			env:      map[string]string{"COMLIN_MULTILINE": "1", "COMLIN_MASK": "true"},
			wantMode: readline.ModeMultiLine | readline.ModeMasked,
			wantFile: true,
		},
		{
			name:     "flags override environment",
			env:      map[string]string{"COMLIN_MULTILINE": "1"},
			args:     []string{"--multiline=false", "--mask"},
			wantMode: readline.ModeMasked,
			wantFile: true,
		},
		{
			name:      "async",
			args:      []string{"--async"},
			wantAsync: true,
			wantFile:  true,
		},
		{
			name:    "bad interval",
			args:    []string{"--interval=0s"},
			wantErr: true,
		},
		{
			name: "no history",
			env:  map[string]string{"COMLIN_NOHISTORY": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"COMLIN_MULTILINE", "COMLIN_MASK", "COMLIN_NOHISTORY"} {
				t.Setenv(k, "")
			}
			t.Setenv("COMLIN_HISTORY", "/tmp/comlin-test-history")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cmd := newRunCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			opts, err := optionsFromFlags(cmd)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if opts.Mode != tt.wantMode {
				t.Errorf("Mode = %v, erwartet %v", opts.Mode, tt.wantMode)
			}
			if opts.Async != tt.wantAsync {
				t.Errorf("Async = %v, erwartet %v", opts.Async, tt.wantAsync)
			}
			if got := opts.HistoryFile != ""; got != tt.wantFile {
				t.Errorf("HistoryFile = %q", opts.HistoryFile)
			}
			if opts.Prompt != defaultPrompt {
				t.Errorf("Prompt = %q, erwartet %q", opts.Prompt, defaultPrompt)
			}
			if opts.Interval != time.Second {
				t.Errorf("Interval = %v, erwartet 1s", opts.Interval)
			}
		})
	}
}
