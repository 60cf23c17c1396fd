// cmd_env.go - Env Command Handler
// Hauptfunktionen: EnvHandler
package cmd

import (
	"maps"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ollama/comlin/envconfig"
)

// EnvHandler - Listet alle Umgebungsvariablen mit aktuellem Wert auf
func EnvHandler(cmd *cobra.Command, args []string) error {
	envs := envconfig.AsMap()
	values := envconfig.Values()

	var data [][]string
	for _, name := range slices.Sorted(maps.Keys(envs)) {
		data = append(data, []string{name, values[name], envs[name].Description})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}
