package main

import (
	"github.com/spf13/cobra"
)

func stakeCmd(s *session) *cobra.Command {
	return groupCmd("stake", "Inspect stake accounts", stakeInfoCmd(s, "info <address>"))
}

// stakeInfoCmd backs both `stake info` and `account stake`.
func stakeInfoCmd(s *session, use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Show a stake account's balance, state and delegation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.newExplorer(cmd).StakeInfo(cmd.Context(), args[0])
		},
	}
}
