package explorer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-version"

	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

// ClusterInfo prints the node's software version and feature set.
func (e *Explorer) ClusterInfo(ctx context.Context) error {
	v, err := e.q.GetVersion(ctx)
	if err != nil {
		return err
	}
	output.Heading(e.w, "Cluster Info")
	output.Field(e.w, "Solana Core", v.SolanaCore)
	if v.FeatureSet != nil {
		output.Field(e.w, "Feature Set", *v.FeatureSet)
	} else {
		output.Field(e.w, "Feature Set", "N/A")
	}
	return nil
}

// ClusterHealth prints HEALTHY or UNHEALTHY. A node answering getHealth with
// a JSON-RPC error is reporting itself unhealthy, which is a result and not
// a failure; only an unreachable endpoint returns an error.
func (e *Explorer) ClusterHealth(ctx context.Context) error {
	err := e.q.GetHealth(ctx)
	switch {
	case err == nil:
		output.Field(e.w, "Cluster Health", output.Green("HEALTHY"))
	case rpc.IsRPCError(err):
		var qe *rpc.QueryError
		errors.As(err, &qe)
		output.Field(e.w, "Cluster Health", fmt.Sprintf("%s (%s)", output.Red("UNHEALTHY"), qe.Message))
	default:
		return err
	}
	return nil
}

// ClusterGenesis prints the genesis hash.
func (e *Explorer) ClusterGenesis(ctx context.Context) error {
	hash, err := e.q.GetGenesisHash(ctx)
	if err != nil {
		return err
	}
	output.Field(e.w, "Genesis Hash", hash)
	return nil
}

// ClusterNodes lists gossip peers. sortByVersion orders them newest software
// first, with unparseable versions last.
func (e *Explorer) ClusterNodes(ctx context.Context, sortByVersion bool) error {
	nodes, err := e.q.GetClusterNodes(ctx)
	if err != nil {
		return err
	}
	if sortByVersion {
		sortNodesByVersion(nodes)
	}

	output.Heading(e.w, fmt.Sprintf("Cluster Nodes (%d)", len(nodes)))
	if len(nodes) == 0 {
		fmt.Fprintln(e.w, "No nodes found.")
		return nil
	}
	shown, more := output.Cap(nodes, output.DefaultCap)
	tbl := output.NewTable(e.w, "Pubkey", "Version", "RPC")
	for _, n := range shown {
		tbl.AddRow(n.Pubkey, orNA(n.Version), orNA(n.RPC))
	}
	tbl.Print()
	output.More(e.w, more, "nodes")
	return nil
}

func sortNodesByVersion(nodes []rpc.ClusterNode) {
	parsed := make(map[string]*version.Version, len(nodes))
	for _, n := range nodes {
		if n.Version == nil {
			continue
		}
		if v, err := version.NewVersion(*n.Version); err == nil {
			parsed[n.Pubkey] = v
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		vi, vj := parsed[nodes[i].Pubkey], parsed[nodes[j].Pubkey]
		switch {
		case vi == nil:
			return false
		case vj == nil:
			return true
		default:
			return vi.GreaterThan(vj)
		}
	})
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
