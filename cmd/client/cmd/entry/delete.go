package entry

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Delete an entry",
	Long: `Deletes one entry by kind and id.

Deleting an id that does not exist is not an error.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id %q", args[1])
		}

		if err := app.DeleteEntry(cmd.Context(), kind, id); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		fmt.Printf("Deleted %s entry %d\n", kind.DisplayName(), id)
		return nil
	},
}
