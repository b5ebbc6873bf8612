// Package explorer renders read-only chain queries as terminal reports.
//
// Every render method decodes its identifier first and returns an
// *ident.InvalidIdentifierError without touching the network when that
// fails. Queries run one after another; the first failing query aborts the
// report and its error is returned unchanged. Output already written stays
// on the stream.
package explorer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/dmagro/solana-explorer/internal/rpc"
)

// Querier is the read-only RPC surface the reports draw on. *rpc.Client
// implements it.
type Querier interface {
	GetAccountInfo(ctx context.Context, address string, encoding rpc.Encoding) (*rpc.Account, error)
	GetBalance(ctx context.Context, address string) (uint64, error)
	GetSignaturesForAddress(ctx context.Context, address string) ([]rpc.SignatureInfo, error)
	GetTokenAccountsByOwner(ctx context.Context, owner, programID string, encoding rpc.Encoding) ([]rpc.KeyedAccount, error)
	GetProgramAccounts(ctx context.Context, programID string) ([]rpc.KeyedAccount, error)
	GetBlock(ctx context.Context, slot uint64) (*rpc.Block, error)
	GetTransaction(ctx context.Context, signature string, encoding rpc.Encoding) (*rpc.Transaction, error)
	GetVoteAccounts(ctx context.Context) (*rpc.VoteAccounts, error)
	GetVersion(ctx context.Context) (*rpc.Version, error)
	GetHealth(ctx context.Context) error
	GetGenesisHash(ctx context.Context) (string, error)
	GetClusterNodes(ctx context.Context) ([]rpc.ClusterNode, error)
	GetSupply(ctx context.Context) (*rpc.Supply, error)
	GetInflationGovernor(ctx context.Context) (*rpc.InflationGovernor, error)
	GetInflationRate(ctx context.Context) (*rpc.InflationRate, error)
	GetRecentPerformanceSamples(ctx context.Context, limit int) ([]rpc.PerformanceSample, error)
	GetEpochInfo(ctx context.Context) (*rpc.EpochInfo, error)
	GetBlockHeight(ctx context.Context) (uint64, error)
}

var _ Querier = (*rpc.Client)(nil)

// Explorer writes reports for queries answered by q.
type Explorer struct {
	q Querier
	w io.Writer
}

// New returns an Explorer that queries q and writes to w.
func New(q Querier, w io.Writer) *Explorer {
	return &Explorer{q: q, w: w}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
