package cmd

import (
	"nestlog/cmd/client/cmd/auth"
	"nestlog/cmd/client/cmd/entry"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.ResetPasswordCmd)

	rootCmd.AddCommand(entry.EntryCmd)
	entry.EntryCmd.AddCommand(entry.ListCmd)
	entry.EntryCmd.AddCommand(entry.DeleteCmd)
	entry.EntryCmd.AddCommand(entry.AddFeedingCmd)
	entry.EntryCmd.AddCommand(entry.AddDiaperCmd)
	entry.EntryCmd.AddCommand(entry.AddSleepCmd)
	entry.EntryCmd.AddCommand(entry.AddGrowthCmd)

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}
