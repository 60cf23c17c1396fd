// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newRunCmd, newKeycodesCmd, newEnvCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// newRunCmd - Erstellt den Root Command, der die Demo-Eingabeschleife startet
func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:           "comlin",
		Short:         "Interactive line editing demo",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: RunHandler,
	}

	runCmd.Flags().Bool("multiline", false, "Enable multi-line editing (default from COMLIN_MULTILINE)")
	runCmd.Flags().Bool("mask", false, "Echo input as '*' (default from COMLIN_MASK)")
	runCmd.Flags().Bool("async", false, "Print periodic output while editing")
	runCmd.Flags().Duration("interval", defaultAsyncInterval, "Interval between async messages")
	runCmd.Flags().String("prompt", defaultPrompt, "Prompt to display")

	return runCmd
}

// newKeycodesCmd - Erstellt den keycodes Command
func newKeycodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keycodes",
		Short: "Print the raw bytes of each key press until 'quit' is typed",
		Args:  cobra.NoArgs,
		RunE:  KeycodesHandler,
	}
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the environment configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}
}
