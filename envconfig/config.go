// config.go - Haupt-Konfigurationsfunktionen fuer comlin
//
// Dieses Modul enthaelt:
// - HistoryFile: Pfad der History-Datei (COMLIN_HISTORY)
// - LogLevel: Gibt Log-Level zurueck (COMLIN_DEBUG)
// - Var: liest eine Variable ohne Quotes und Leerzeichen
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Terminaltyp, Modus-Flags und History-Einstellungen
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HistoryFile gibt den Pfad der History-Datei zurueck
// Konfigurierbar via COMLIN_HISTORY
// Default: $HOME/.comlin_history, ohne Home-Verzeichnis im aktuellen Verzeichnis
func HistoryFile() string {
	if s := Var("COMLIN_HISTORY"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("could not determine home directory, using working directory", "error", err)
		return ".comlin_history"
	}

	return filepath.Join(home, ".comlin_history")
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via COMLIN_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("COMLIN_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
