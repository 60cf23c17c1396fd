// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ollama/comlin/envconfig"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := newRunCmd()
	keycodesCmd := newKeycodesCmd()
	envCmd := newEnvCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	appendEnvDocs(rootCmd, []envconfig.EnvVar{
		envVars["TERM"],
		envVars["COMLIN_DEBUG"],
		envVars["COMLIN_HISTORY"],
		envVars["COMLIN_HISTORY_LEN"],
		envVars["COMLIN_NOHISTORY"],
		envVars["COMLIN_MULTILINE"],
		envVars["COMLIN_MASK"],
	})
	appendEnvDocs(keycodesCmd, []envconfig.EnvVar{envVars["TERM"]})

	rootCmd.AddCommand(
		keycodesCmd,
		envCmd,
	)

	return rootCmd
}
