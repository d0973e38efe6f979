package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nestlog/cmd/client/cmd/types"
	"nestlog/internal/app/client"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as CSV",
	Long: `Renders every entry as CSV, grouped by category with the newest
entries first. Writes to stdout unless --output is given.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		csv, err := app.ExportCSV(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to export entries: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(csv)
			return nil
		}

		if err := os.WriteFile(exportOutput, []byte(csv), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}

		fmt.Printf("Exported to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to a file instead of stdout")
}
