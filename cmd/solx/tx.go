package main

import (
	"github.com/spf13/cobra"

	"github.com/dmagro/solana-explorer/internal/explorer"
)

func txCmd(s *session) *cobra.Command {
	return groupCmd("tx", "Inspect a transaction", txInfoCmd(s), txLogsCmd(s))
}

func txInfoCmd(s *session) *cobra.Command {
	var opts explorer.TxOptions

	cmd := &cobra.Command{
		Use:   "info <signature>",
		Short: "Show status, fee, compute units, logs and instructions",
		Long: `Fetch a confirmed transaction and print its details.

Examples:
  solx tx info <signature>
  solx tx info <signature> --parsed
  solx tx info <signature> --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.newExplorer(cmd).TxInfo(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Parsed, "parsed", false, "Request jsonParsed encoding (program names for known programs)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Show raw JSON-RPC result")
	return cmd
}

func txLogsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "logs <signature>",
		Short: "Show only the transaction's log messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.newExplorer(cmd).TxLogs(cmd.Context(), args[0])
		},
	}
}
