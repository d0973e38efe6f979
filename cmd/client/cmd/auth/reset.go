package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"nestlog/cmd/client/cmd/types"
	"nestlog/internal/app/client"
)

var ResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset a forgotten password",
	Long: `Password reset via the security questions chosen at registration.

All three answers must match; the server does not reveal which one failed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		fmt.Println("=== Password reset ===")
		fmt.Println()

		username, err := readLine("Username: ")
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("Security questions:")
		answers, err := readAnswers()
		if err != nil {
			return err
		}

		fmt.Println()
		newPassword, err := readPassword("New password: ")
		if err != nil {
			return err
		}

		newPasswordConfirm, err := readPassword("Repeat new password: ")
		if err != nil {
			return err
		}

		if newPassword != newPasswordConfirm {
			return fmt.Errorf("passwords do not match")
		}

		fmt.Println("Resetting password...")
		if err := app.ResetPassword(cmd.Context(), username, answers, newPassword); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		fmt.Println()
		fmt.Println("Password changed. Log in with: nestlog auth login")

		return nil
	},
}
