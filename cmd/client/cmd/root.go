package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"nestlog/cmd/client/cmd/types"
	"nestlog/internal/app/client"
	"nestlog/internal/app/client/config"
	"nestlog/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "nestlog",
	Short: "Nestlog - baby care tracking from the terminal",
	Long: `Nestlog keeps a log of feedings, diaper changes, sleep and growth
measurements for your baby.

Entries are stored on the server and mirrored into a local cache, so the
daily summary and CSV export keep working without a connection.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Nestlog server address")
}
