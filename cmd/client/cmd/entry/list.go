package entry

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nestlog/internal/domain/entry"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List entries of one kind, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}

		store, err := app.Store(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		if listFormat == "json" {
			return printJSON(store, kind)
		}
		return printTable(store, kind)
	},
}

func printJSON(store entry.Store, kind entry.Kind) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	switch kind {
	case entry.KindFeeding:
		return encoder.Encode(store.Feedings)
	case entry.KindDiaper:
		return encoder.Encode(store.Diapers)
	case entry.KindSleep:
		return encoder.Encode(store.Sleeps)
	default:
		return encoder.Encode(store.Growth)
	}
}

func printTable(store entry.Store, kind entry.Kind) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch kind {
	case entry.KindFeeding:
		if len(store.Feedings) == 0 {
			fmt.Println("No feedings recorded")
			return nil
		}
		fmt.Fprintf(w, "ID\tType\tVolume\tTime\tNote\t\n")
		for _, f := range store.Feedings {
			fmt.Fprintf(w, "%d\t%s\t%dml\t%s\t%s\t\n", f.ID, f.Type, f.Volume, f.Time, f.Note)
		}

	case entry.KindDiaper:
		if len(store.Diapers) == 0 {
			fmt.Println("No diapers recorded")
			return nil
		}
		fmt.Fprintf(w, "ID\tType\tSub\tColor\tTime\t\n")
		for _, d := range store.Diapers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n", d.ID, d.Type, d.Sub, d.Color, d.Time)
		}

	case entry.KindSleep:
		if len(store.Sleeps) == 0 {
			fmt.Println("No sleeps recorded")
			return nil
		}
		fmt.Fprintf(w, "ID\tStart\tEnd\tDuration\t\n")
		for _, s := range store.Sleeps {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", s.ID, s.Start, s.End, s.Duration)
		}

	default:
		if len(store.Growth) == 0 {
			fmt.Println("No measurements recorded")
			return nil
		}
		fmt.Fprintf(w, "ID\tDate\tWeight\tHeight\t\n")
		for _, g := range store.Growth {
			fmt.Fprintf(w, "%d\t%s\t%skg\t%scm\t\n", g.ID, g.Date, g.Weight, g.Height)
		}
	}

	return nil
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
}
