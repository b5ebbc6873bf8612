package main

import (
	"github.com/spf13/cobra"
)

func tokenCmd(s *session) *cobra.Command {
	return groupCmd("token", "Inspect SPL tokens",
		&cobra.Command{
			Use:   "accounts <owner>",
			Short: "List token accounts with mint, amount and decimals",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).TokenAccounts(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "mint <mint>",
			Short: "Show supply, decimals and authorities of a mint",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).TokenMint(cmd.Context(), args[0])
			},
		},
	)
}
