// Package logutil - Logger-Aufbau fuer comlin
//
// Hauptkomponenten:
// - NewLogger: TextHandler mit kurzem Quellpfad und TRACE-Level
// - LevelTrace: Level unterhalb von DEBUG (COMLIN_DEBUG=2)
package logutil

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
)

const LevelTrace slog.Level = -8

// NewLogger erstellt einen Logger, der jeden Eintrag mit einer Sitzungs-ID
// versieht, damit sich Ausgaben mehrerer Laeufe trennen lassen.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	})

	return slog.New(handler).With("session", uuid.NewString())
}
