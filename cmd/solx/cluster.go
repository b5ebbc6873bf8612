package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/solana-explorer/internal/output"
)

func clusterCmd(s *session) *cobra.Command {
	return groupCmd("cluster", "Select the active cluster and inspect it",
		clusterSetCmd(s),
		clusterGetCmd(s),
		&cobra.Command{
			Use:   "info",
			Short: "Show the node software version and feature set",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).ClusterInfo(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "health",
			Short: "Report whether the RPC node is healthy",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).ClusterHealth(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "genesis",
			Short: "Show the genesis hash",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.newExplorer(cmd).ClusterGenesis(cmd.Context())
			},
		},
		clusterNodesCmd(s),
	)
}

func clusterSetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name>",
		Short: "Persist the active cluster",
		Long: `Persist the active cluster to the preference file.

Recognized names: mainnet-beta (mainnet, m), testnet (t), devnet (d).
Any other name is stored as given and pointed at the devnet endpoint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClusterSet(cmd, s, args[0])
		},
	}
}

func runClusterSet(cmd *cobra.Command, s *session, name string) error {
	prefs, recognized, err := s.store.Set(name, s.settings.Endpoints)
	if err != nil {
		return fmt.Errorf("failed to save cluster: %w", err)
	}
	if !recognized {
		designNote(cmd, name, prefs.RPCURL)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Cluster updated to: %s (%s)\n", output.Green("✔"), prefs.Cluster, prefs.RPCURL)
	return nil
}

func clusterGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the active cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Active Cluster: %s (%s)\n", output.Bold(s.cluster), s.endpoint)
			return nil
		},
	}
}

func clusterNodesCmd(s *session) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List gossip peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch sortBy {
			case "", "none":
				return s.newExplorer(cmd).ClusterNodes(cmd.Context(), false)
			case "version":
				return s.newExplorer(cmd).ClusterNodes(cmd.Context(), true)
			default:
				return fmt.Errorf("invalid --sort %q: expected version", sortBy)
			}
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: version (newest first)")
	return cmd
}
