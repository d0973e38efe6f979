package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nestlog/cmd/client/cmd/types"
	"nestlog/internal/app/client"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today's care summary",
	Long: `A digest of today's entries: feedings with total volume, diaper
changes, sleeps, the predicted next diaper change and the latest growth
measurement. Works offline from the local cache.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		sum, err := app.Summary(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to build summary: %w", err)
		}

		title := color.New(color.FgCyan, color.Bold)
		label := color.New(color.FgWhite)
		value := color.New(color.FgGreen, color.Bold)

		title.Printf("Summary for %s\n\n", sum.Date)

		label.Print("Feedings:    ")
		value.Printf("%d", sum.FeedingCount)
		label.Printf(" (%dml total)\n", sum.TotalVolume)

		label.Print("Diapers:     ")
		value.Printf("%d\n", sum.DiaperCount)

		label.Print("Sleeps:      ")
		value.Printf("%d\n", sum.SleepCount)

		label.Print("Next diaper: ")
		value.Printf("%s", sum.NextDiaper.Time)
		label.Printf(" (%s)\n", sum.NextDiaper.Type)

		label.Print("Growth:      ")
		value.Printf("%skg / %scm\n", sum.LatestWeight, sum.LatestHeight)

		return nil
	},
}
