package main

import (
	"github.com/spf13/cobra"
)

func validatorCmd(s *session) *cobra.Command {
	return groupCmd("validator", "Inspect the validator set",
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List current validators by activated stake",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).Validators(cmd.Context())
			},
		},
	)
}
