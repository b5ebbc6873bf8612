package explorer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmagro/solana-explorer/internal/rpc"
)

var errFake = &rpc.QueryError{Method: "fake", Kind: rpc.KindTransport, Err: errors.New("connection refused")}

// fakeQuerier answers every query from its fields and records the methods
// called, with their encoding where one applies.
type fakeQuerier struct {
	calls []string

	account     *rpc.Account
	balance     uint64
	signatures  []rpc.SignatureInfo
	tokenAccts  []rpc.KeyedAccount
	programAccs []rpc.KeyedAccount
	block       *rpc.Block
	tx          *rpc.Transaction
	votes       *rpc.VoteAccounts
	version     *rpc.Version
	healthErr   error
	genesis     string
	nodes       []rpc.ClusterNode
	supply      *rpc.Supply
	governor    *rpc.InflationGovernor
	inflation   *rpc.InflationRate
	samples     []rpc.PerformanceSample
	epoch       *rpc.EpochInfo
	blockHeight uint64

	// err fails every query except getHealth.
	err error
}

func (f *fakeQuerier) record(method string) error {
	f.calls = append(f.calls, method)
	return f.err
}

func (f *fakeQuerier) GetAccountInfo(_ context.Context, _ string, enc rpc.Encoding) (*rpc.Account, error) {
	if err := f.record("getAccountInfo:" + string(enc)); err != nil {
		return nil, err
	}
	return f.account, nil
}

func (f *fakeQuerier) GetBalance(context.Context, string) (uint64, error) {
	return f.balance, f.record("getBalance")
}

func (f *fakeQuerier) GetSignaturesForAddress(context.Context, string) ([]rpc.SignatureInfo, error) {
	return f.signatures, f.record("getSignaturesForAddress")
}

func (f *fakeQuerier) GetTokenAccountsByOwner(_ context.Context, _, programID string, enc rpc.Encoding) ([]rpc.KeyedAccount, error) {
	return f.tokenAccts, f.record("getTokenAccountsByOwner:" + programID + ":" + string(enc))
}

func (f *fakeQuerier) GetProgramAccounts(context.Context, string) ([]rpc.KeyedAccount, error) {
	return f.programAccs, f.record("getProgramAccounts")
}

func (f *fakeQuerier) GetBlock(context.Context, uint64) (*rpc.Block, error) {
	if err := f.record("getBlock"); err != nil {
		return nil, err
	}
	return f.block, nil
}

func (f *fakeQuerier) GetTransaction(_ context.Context, _ string, enc rpc.Encoding) (*rpc.Transaction, error) {
	if err := f.record("getTransaction:" + string(enc)); err != nil {
		return nil, err
	}
	return f.tx, nil
}

func (f *fakeQuerier) GetVoteAccounts(context.Context) (*rpc.VoteAccounts, error) {
	if err := f.record("getVoteAccounts"); err != nil {
		return nil, err
	}
	return f.votes, nil
}

func (f *fakeQuerier) GetVersion(context.Context) (*rpc.Version, error) {
	if err := f.record("getVersion"); err != nil {
		return nil, err
	}
	return f.version, nil
}

func (f *fakeQuerier) GetHealth(context.Context) error {
	f.calls = append(f.calls, "getHealth")
	return f.healthErr
}

func (f *fakeQuerier) GetGenesisHash(context.Context) (string, error) {
	return f.genesis, f.record("getGenesisHash")
}

func (f *fakeQuerier) GetClusterNodes(context.Context) ([]rpc.ClusterNode, error) {
	return f.nodes, f.record("getClusterNodes")
}

func (f *fakeQuerier) GetSupply(context.Context) (*rpc.Supply, error) {
	if err := f.record("getSupply"); err != nil {
		return nil, err
	}
	return f.supply, nil
}

func (f *fakeQuerier) GetInflationGovernor(context.Context) (*rpc.InflationGovernor, error) {
	if err := f.record("getInflationGovernor"); err != nil {
		return nil, err
	}
	return f.governor, nil
}

func (f *fakeQuerier) GetInflationRate(context.Context) (*rpc.InflationRate, error) {
	if err := f.record("getInflationRate"); err != nil {
		return nil, err
	}
	return f.inflation, nil
}

func (f *fakeQuerier) GetRecentPerformanceSamples(context.Context, int) ([]rpc.PerformanceSample, error) {
	return f.samples, f.record("getRecentPerformanceSamples")
}

func (f *fakeQuerier) GetEpochInfo(context.Context) (*rpc.EpochInfo, error) {
	if err := f.record("getEpochInfo"); err != nil {
		return nil, err
	}
	return f.epoch, nil
}

func (f *fakeQuerier) GetBlockHeight(context.Context) (uint64, error) {
	return f.blockHeight, f.record("getBlockHeight")
}

// mustTx decodes a getTransaction result payload.
func mustTx(payload string) *rpc.Transaction {
	var tx rpc.Transaction
	if err := json.Unmarshal([]byte(payload), &tx); err != nil {
		panic(err)
	}
	tx.Raw = json.RawMessage(payload)
	return &tx
}
