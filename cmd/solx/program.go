package main

import (
	"github.com/spf13/cobra"
)

func programCmd(s *session) *cobra.Command {
	return groupCmd("program", "Inspect on-chain programs",
		&cobra.Command{
			Use:   "info <program-id>",
			Short: "Show a program account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).ProgramInfo(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "accounts <program-id>",
			Short: "List accounts owned by a program",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).ProgramAccounts(cmd.Context(), args[0])
			},
		},
	)
}
