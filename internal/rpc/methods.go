package rpc

import (
	"context"
	"encoding/json"
)

// Encoding selects how the server encodes account data and transactions.
type Encoding string

const (
	EncodingBase64     Encoding = "base64"
	EncodingJSON       Encoding = "json"
	EncodingJSONParsed Encoding = "jsonParsed"
)

// maxSupportedTransactionVersion lets getBlock and getTransaction return v0
// transactions instead of failing on them.
const maxSupportedTransactionVersion = 0

type accountInfoResult struct {
	Context RPCContext `json:"context"`
	Value   *Account   `json:"value"`
}

// GetAccountInfo fetches the account at address. A missing account is a
// KindNotFound *QueryError.
func (c *Client) GetAccountInfo(ctx context.Context, address string, encoding Encoding) (*Account, error) {
	const method = "getAccountInfo"
	cfg := c.commitmentConfig()
	cfg["encoding"] = encoding

	var res accountInfoResult
	if err := c.Call(ctx, method, []interface{}{address, cfg}, &res); err != nil {
		return nil, err
	}
	if res.Value == nil {
		return nil, notFound(method, "account %s not found", address)
	}
	return res.Value, nil
}

// GetBalance returns the lamport balance of address.
func (c *Client) GetBalance(ctx context.Context, address string) (uint64, error) {
	var res struct {
		Context RPCContext `json:"context"`
		Value   uint64     `json:"value"`
	}
	if err := c.Call(ctx, "getBalance", []interface{}{address, c.commitmentConfig()}, &res); err != nil {
		return 0, err
	}
	return res.Value, nil
}

// GetSignaturesForAddress returns the most recent signatures involving
// address, newest first, up to the server's default page size.
func (c *Client) GetSignaturesForAddress(ctx context.Context, address string) ([]SignatureInfo, error) {
	var res []SignatureInfo
	if err := c.Call(ctx, "getSignaturesForAddress", []interface{}{address, c.commitmentConfig()}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetTokenAccountsByOwner returns owner's token accounts held under programID.
func (c *Client) GetTokenAccountsByOwner(ctx context.Context, owner, programID string, encoding Encoding) ([]KeyedAccount, error) {
	cfg := c.commitmentConfig()
	cfg["encoding"] = encoding

	var res struct {
		Context RPCContext     `json:"context"`
		Value   []KeyedAccount `json:"value"`
	}
	filter := map[string]string{"programId": programID}
	if err := c.Call(ctx, "getTokenAccountsByOwner", []interface{}{owner, filter, cfg}, &res); err != nil {
		return nil, err
	}
	return res.Value, nil
}

// GetProgramAccounts returns every account owned by programID.
func (c *Client) GetProgramAccounts(ctx context.Context, programID string) ([]KeyedAccount, error) {
	cfg := c.commitmentConfig()
	cfg["encoding"] = EncodingBase64

	var res []KeyedAccount
	if err := c.Call(ctx, "getProgramAccounts", []interface{}{programID, cfg}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetBlock fetches the block at slot with signature-only transaction details
// and rewards.
func (c *Client) GetBlock(ctx context.Context, slot uint64) (*Block, error) {
	const method = "getBlock"
	cfg := c.commitmentConfig()
	cfg["encoding"] = EncodingJSON
	cfg["transactionDetails"] = "signatures"
	cfg["rewards"] = true
	cfg["maxSupportedTransactionVersion"] = maxSupportedTransactionVersion

	var raw json.RawMessage
	if err := c.Call(ctx, method, []interface{}{slot, cfg}, &raw); err != nil {
		return nil, asNotFound(err, "block not available")
	}
	var block Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, &QueryError{Method: method, Kind: KindDecode, Err: err}
	}
	block.Raw = raw
	return &block, nil
}

// GetTransaction fetches a confirmed transaction by signature. encoding is
// EncodingJSON or EncodingJSONParsed.
func (c *Client) GetTransaction(ctx context.Context, signature string, encoding Encoding) (*Transaction, error) {
	const method = "getTransaction"
	cfg := c.commitmentConfig()
	cfg["encoding"] = encoding
	cfg["maxSupportedTransactionVersion"] = maxSupportedTransactionVersion

	var raw json.RawMessage
	if err := c.Call(ctx, method, []interface{}{signature, cfg}, &raw); err != nil {
		return nil, asNotFound(err, "transaction "+signature+" not found")
	}
	var tx Transaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, &QueryError{Method: method, Kind: KindDecode, Err: err}
	}
	tx.Raw = raw
	return &tx, nil
}

// GetVoteAccounts returns the current and delinquent validator vote accounts.
func (c *Client) GetVoteAccounts(ctx context.Context) (*VoteAccounts, error) {
	var res VoteAccounts
	if err := c.Call(ctx, "getVoteAccounts", []interface{}{c.commitmentConfig()}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetVersion returns the node's software version.
func (c *Client) GetVersion(ctx context.Context) (*Version, error) {
	var res Version
	if err := c.Call(ctx, "getVersion", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetHealth returns nil when the node reports "ok". An unhealthy node
// answers with a JSON-RPC error (see IsRPCError).
func (c *Client) GetHealth(ctx context.Context) error {
	var res string
	return c.Call(ctx, "getHealth", nil, &res)
}

// GetGenesisHash returns the cluster's genesis hash.
func (c *Client) GetGenesisHash(ctx context.Context) (string, error) {
	var res string
	if err := c.Call(ctx, "getGenesisHash", nil, &res); err != nil {
		return "", err
	}
	return res, nil
}

// GetClusterNodes returns every node participating in gossip.
func (c *Client) GetClusterNodes(ctx context.Context) ([]ClusterNode, error) {
	var res []ClusterNode
	if err := c.Call(ctx, "getClusterNodes", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetSupply returns the lamport supply without the non-circulating account list.
func (c *Client) GetSupply(ctx context.Context) (*Supply, error) {
	cfg := c.commitmentConfig()
	cfg["excludeNonCirculatingAccountsList"] = true

	var res struct {
		Context RPCContext `json:"context"`
		Value   Supply     `json:"value"`
	}
	if err := c.Call(ctx, "getSupply", []interface{}{cfg}, &res); err != nil {
		return nil, err
	}
	return &res.Value, nil
}

// GetInflationGovernor returns the inflation schedule parameters.
func (c *Client) GetInflationGovernor(ctx context.Context) (*InflationGovernor, error) {
	var res InflationGovernor
	if err := c.Call(ctx, "getInflationGovernor", []interface{}{c.commitmentConfig()}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetInflationRate returns the inflation rates for the current epoch.
func (c *Client) GetInflationRate(ctx context.Context) (*InflationRate, error) {
	var res InflationRate
	if err := c.Call(ctx, "getInflationRate", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetRecentPerformanceSamples returns up to limit samples, newest first.
func (c *Client) GetRecentPerformanceSamples(ctx context.Context, limit int) ([]PerformanceSample, error) {
	var res []PerformanceSample
	if err := c.Call(ctx, "getRecentPerformanceSamples", []interface{}{limit}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetEpochInfo returns the current epoch position.
func (c *Client) GetEpochInfo(ctx context.Context) (*EpochInfo, error) {
	var res EpochInfo
	if err := c.Call(ctx, "getEpochInfo", []interface{}{c.commitmentConfig()}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlockHeight returns the current block height.
func (c *Client) GetBlockHeight(ctx context.Context) (uint64, error) {
	var res uint64
	if err := c.Call(ctx, "getBlockHeight", []interface{}{c.commitmentConfig()}, &res); err != nil {
		return 0, err
	}
	return res, nil
}
