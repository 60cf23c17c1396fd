// config_features.go - Modus-Flags und History-Einstellungen
//
// Dieses Modul enthaelt:
// - Terminaltyp (TERM)
// - Darstellungs-Flags (Multiline, Mask)
// - History-bezogene Environment-Variablen
package envconfig

// =============================================================================
// Darstellungs-Flags
// =============================================================================

var (
	// Term ist der Terminaltyp, an dem dumme Terminals erkannt werden
	Term = String("TERM")

	// Multiline startet im Mehrzeilenmodus
	Multiline = Bool("COMLIN_MULTILINE")

	// Mask zeigt Eingaben als '*' an
	Mask = Bool("COMLIN_MASK")
)

// =============================================================================
// History-Einstellungen
// =============================================================================

var (
	// NoHistory deaktiviert das Laden und Speichern der History-Datei
	NoHistory = Bool("COMLIN_NOHISTORY")

	// HistoryLen setzt die Kapazitaet der History
	// Konfigurierbar via COMLIN_HISTORY_LEN
	HistoryLen = Uint("COMLIN_HISTORY_LEN", 100)
)
