package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"nestlog/cmd/client/cmd/types"
	"nestlog/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the Nestlog server",
	Long: `Authentication on the Nestlog server.

The session token is stored locally, so subsequent commands do not ask for
credentials again until it expires.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		fmt.Println("=== Login ===")
		fmt.Println()

		username, err := readLine("Username: ")
		if err != nil {
			return err
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		fmt.Println("Authenticating...")
		if err := app.Login(ctx, username, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println()
		fmt.Println("Logged in.")

		fmt.Println("Fetching entries...")
		if _, err := app.Refresh(ctx); err != nil {
			fmt.Printf("Warning: could not fetch entries: %v\n", err)
		} else {
			fmt.Println("Local cache is up to date.")
		}

		return nil
	},
}
