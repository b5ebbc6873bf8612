package main

import (
	"github.com/spf13/cobra"
)

func networkCmd(s *session) *cobra.Command {
	status := func(cmd *cobra.Command, args []string) error {
		return s.newExplorer(cmd).NetworkStatus(cmd.Context())
	}

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Network-wide status, supply, inflation and throughput",
		Long: `Network-wide statistics. Without a subcommand prints the status report.

Examples:
  solx network
  solx network supply
  solx --cluster mainnet network tps`,
		Args: cobra.NoArgs,
		RunE: status,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show version, epoch progress, slot and block height",
			Args:  cobra.NoArgs,
			RunE:  status,
		},
		&cobra.Command{
			Use:   "supply",
			Short: "Show total and circulating supply",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).Supply(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "inflation",
			Short: "Show inflation rates",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).Inflation(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "tps",
			Short: "Show transactions per second from recent performance samples",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).TPS(cmd.Context())
			},
		},
	)
	return cmd
}
