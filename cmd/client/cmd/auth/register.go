package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"nestlog/cmd/client/cmd/types"
	"nestlog/internal/app/client"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Registration on the Nestlog server.

The three security questions are used to reset a forgotten password, so
pick answers you will remember.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		fmt.Println("=== Registration ===")
		fmt.Println()

		username, err := readLine("Username: ")
		if err != nil {
			return err
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		passwordConfirm, err := readPassword("Repeat password: ")
		if err != nil {
			return err
		}

		if password != passwordConfirm {
			return fmt.Errorf("passwords do not match")
		}

		fmt.Println()
		fmt.Println("Security questions:")
		answers, err := readAnswers()
		if err != nil {
			return err
		}

		fmt.Println("Registering...")
		if err := app.Register(cmd.Context(), username, password, answers); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println()
		fmt.Println("Registration complete. Log in with: nestlog auth login")

		return nil
	},
}
