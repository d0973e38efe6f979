package entry

import (
	"fmt"

	"github.com/spf13/cobra"

	"nestlog/cmd/client/cmd/types"
	"nestlog/internal/app/client"
	"nestlog/internal/domain/entry"
)

// EntryCmd is the parent command for care entry operations.
var EntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Care entry management",
	Long:  `Adding, listing and deleting feedings, diapers, sleeps and growth measurements.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func parseKind(arg string) (entry.Kind, error) {
	kind := entry.Kind(arg)
	if err := kind.Validate(); err != nil {
		return "", fmt.Errorf("%w (expected feedings, diapers, sleeps or growth)", err)
	}
	return kind, nil
}
