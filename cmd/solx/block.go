package main

import (
	"github.com/spf13/cobra"
)

func blockCmd(s *session) *cobra.Command {
	var raw bool

	info := &cobra.Command{
		Use:     "info <slot>",
		Aliases: []string{"get", "show"},
		Short:   "Show block header, rewards and transaction signatures",
		Long: `Fetch the block at a slot and print its details.

"get" and "show" are aliases of "info".

Examples:
  solx block info 250000000
  solx block show 250000000 --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.newExplorer(cmd).BlockInfo(cmd.Context(), args[0], raw)
		},
	}
	info.Flags().BoolVar(&raw, "raw", false, "Show raw JSON-RPC result")

	return groupCmd("block", "Inspect a block", info)
}
