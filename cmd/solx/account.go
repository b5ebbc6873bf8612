package main

import (
	"github.com/spf13/cobra"
)

func accountCmd(s *session) *cobra.Command {
	return groupCmd("account", "Inspect an account",
		&cobra.Command{
			Use:   "info <address>",
			Short: "Show balance, owner and data size",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).AccountInfo(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "history <address>",
			Short: "Show recent transaction signatures",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).AccountHistory(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "tokens <address>",
			Short: "List token accounts owned by the address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).AccountTokens(cmd.Context(), args[0])
			},
		},
		stakeInfoCmd(s, "stake <address>"),
	)
}
