package rpc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Request is a JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// Response is a JSON-RPC 2.0 response envelope. Result stays raw until the
// typed method decodes it.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the JSON-RPC error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OptState distinguishes the three ways the server can report an optional
// transaction-status field.
type OptState uint8

const (
	// NotRequested: the field was omitted from the response entirely.
	NotRequested OptState = iota
	// Absent: the field was present and null.
	Absent
	// Present: the field carried a value.
	Present
)

func (s OptState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	default:
		return "not-requested"
	}
}

// Opt is a field that may be present, explicitly null, or omitted. The zero
// value is NotRequested, which is what encoding/json leaves behind when the
// key is missing.
type Opt[T any] struct {
	state OptState
	value T
}

// Some returns a present Opt.
func Some[T any](v T) Opt[T] { return Opt[T]{state: Present, value: v} }

// Null returns an Opt the server reported as null.
func Null[T any]() Opt[T] { return Opt[T]{state: Absent} }

// State reports which of the three states o is in.
func (o Opt[T]) State() OptState { return o.state }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.value, o.state == Present }

// OrZero returns the value, or T's zero value when not present.
func (o Opt[T]) OrZero() T { return o.value }

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		*o = Opt[T]{state: Absent, value: zero}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Opt[T]{state: Present, value: v}
	return nil
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.state != Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// RPCContext is the {"context": {...}} wrapper some methods return.
type RPCContext struct {
	Slot uint64 `json:"slot"`
}

// Account is an account as returned by getAccountInfo and friends.
type Account struct {
	Lamports   uint64          `json:"lamports"`
	Owner      string          `json:"owner"`
	Data       json.RawMessage `json:"data"`
	Executable bool            `json:"executable"`
	RentEpoch  uint64          `json:"rentEpoch"`
	Space      *uint64         `json:"space,omitempty"`
}

// ParsedAccountData is the jsonParsed form of account data.
type ParsedAccountData struct {
	Program string          `json:"program"`
	Parsed  json.RawMessage `json:"parsed"`
	Space   uint64          `json:"space"`
}

// ParsedData returns the jsonParsed payload when the server decoded the
// account, and false when data came back as an encoded blob.
func (a *Account) ParsedData() (*ParsedAccountData, bool) {
	trimmed := bytes.TrimSpace(a.Data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var p ParsedAccountData
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, false
	}
	return &p, true
}

// DataLen returns the size of the account data in bytes.
func (a *Account) DataLen() int {
	if a.Space != nil {
		return int(*a.Space)
	}
	if p, ok := a.ParsedData(); ok {
		return int(p.Space)
	}

	// ["<payload>", "<encoding>"]
	var blob []string
	if err := json.Unmarshal(a.Data, &blob); err != nil || len(blob) == 0 {
		return 0
	}
	encoding := "base64"
	if len(blob) > 1 {
		encoding = blob[1]
	}
	switch encoding {
	case "base64":
		raw, err := base64.StdEncoding.DecodeString(blob[0])
		if err != nil {
			return 0
		}
		return len(raw)
	default:
		return 0
	}
}

// KeyedAccount pairs an account with its address.
type KeyedAccount struct {
	Pubkey  string  `json:"pubkey"`
	Account Account `json:"account"`
}

// SignatureInfo is one entry of getSignaturesForAddress.
type SignatureInfo struct {
	Signature          string          `json:"signature"`
	Slot               uint64          `json:"slot"`
	Err                json.RawMessage `json:"err"`
	Memo               *string         `json:"memo"`
	BlockTime          *int64          `json:"blockTime"`
	ConfirmationStatus string          `json:"confirmationStatus"`
}

// Failed reports whether the transaction carried an execution error.
func (s SignatureInfo) Failed() bool { return !isNull(s.Err) }

// Reward is a block or epoch reward entry.
type Reward struct {
	Pubkey      string `json:"pubkey"`
	Lamports    int64  `json:"lamports"`
	PostBalance uint64 `json:"postBalance"`
	RewardType  string `json:"rewardType"`
	Commission  *uint8 `json:"commission"`
}

// Block is the getBlock result requested with signature-only details.
type Block struct {
	Blockhash         string   `json:"blockhash"`
	PreviousBlockhash string   `json:"previousBlockhash"`
	ParentSlot        uint64   `json:"parentSlot"`
	BlockTime         *int64   `json:"blockTime"`
	BlockHeight       *uint64  `json:"blockHeight"`
	Signatures        []string `json:"signatures"`
	Rewards           []Reward `json:"rewards"`

	Raw json.RawMessage `json:"-"`
}

// AccountKey is a message account key. The json encoding sends a bare
// string, jsonParsed an object.
type AccountKey struct {
	Pubkey   string `json:"pubkey"`
	Signer   bool   `json:"signer"`
	Writable bool   `json:"writable"`
	Source   string `json:"source,omitempty"`
}

func (k *AccountKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = AccountKey{Pubkey: s}
		return nil
	}
	type plain AccountKey
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("account key: %w", err)
	}
	*k = AccountKey(p)
	return nil
}

// InstructionForm says how the server encoded an instruction.
type InstructionForm int

const (
	// Compiled instructions reference their program by account-key index.
	Compiled InstructionForm = iota
	// ParsedForm instructions were decoded by the server into a program name.
	ParsedForm
	// PartiallyDecoded instructions carry a program id but no parsed body.
	PartiallyDecoded
)

// Instruction is a top-level or inner instruction in any of the three forms.
type Instruction struct {
	ProgramIDIndex *int            `json:"programIdIndex,omitempty"`
	Accounts       json.RawMessage `json:"accounts,omitempty"`
	Data           string          `json:"data,omitempty"`
	StackHeight    *int            `json:"stackHeight,omitempty"`

	ProgramID string          `json:"programId,omitempty"`
	Program   string          `json:"program,omitempty"`
	Parsed    json.RawMessage `json:"parsed,omitempty"`
}

// Form classifies the instruction.
func (ix Instruction) Form() InstructionForm {
	if len(ix.Parsed) > 0 && !isNull(ix.Parsed) {
		return ParsedForm
	}
	if ix.ProgramID != "" {
		return PartiallyDecoded
	}
	return Compiled
}

// InnerInstructions groups the instructions invoked by the top-level
// instruction at Index.
type InnerInstructions struct {
	Index        int           `json:"index"`
	Instructions []Instruction `json:"instructions"`
}

// LoadedAddresses lists the keys pulled in by address lookup tables.
type LoadedAddresses struct {
	Writable []string `json:"writable"`
	Readonly []string `json:"readonly"`
}

// TransactionMeta is the status metadata of a confirmed transaction.
type TransactionMeta struct {
	Err                  json.RawMessage          `json:"err"`
	Fee                  uint64                   `json:"fee"`
	PreBalances          []uint64                 `json:"preBalances"`
	PostBalances         []uint64                 `json:"postBalances"`
	LogMessages          Opt[[]string]            `json:"logMessages"`
	InnerInstructions    Opt[[]InnerInstructions] `json:"innerInstructions"`
	ComputeUnitsConsumed Opt[uint64]              `json:"computeUnitsConsumed"`
	LoadedAddresses      Opt[LoadedAddresses]     `json:"loadedAddresses"`
}

// Message is the json/jsonParsed transaction message.
type Message struct {
	AccountKeys     []AccountKey  `json:"accountKeys"`
	RecentBlockhash string        `json:"recentBlockhash"`
	Instructions    []Instruction `json:"instructions"`
}

// EncodedTransaction is the transaction body in json/jsonParsed encoding.
type EncodedTransaction struct {
	Signatures []string `json:"signatures"`
	Message    Message  `json:"message"`
}

// Transaction is the getTransaction result.
type Transaction struct {
	Slot        uint64             `json:"slot"`
	BlockTime   *int64             `json:"blockTime"`
	Transaction EncodedTransaction `json:"transaction"`
	Meta        *TransactionMeta   `json:"meta"`
	Version     json.RawMessage    `json:"version,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// VoteAccount is one validator in getVoteAccounts.
type VoteAccount struct {
	VotePubkey       string `json:"votePubkey"`
	NodePubkey       string `json:"nodePubkey"`
	ActivatedStake   uint64 `json:"activatedStake"`
	Commission       uint8  `json:"commission"`
	EpochVoteAccount bool   `json:"epochVoteAccount"`
	LastVote         uint64 `json:"lastVote"`
	RootSlot         uint64 `json:"rootSlot"`
}

// VoteAccounts splits validators into current and delinquent.
type VoteAccounts struct {
	Current    []VoteAccount `json:"current"`
	Delinquent []VoteAccount `json:"delinquent"`
}

// Version is the getVersion result.
type Version struct {
	SolanaCore string  `json:"solana-core"`
	FeatureSet *uint32 `json:"feature-set"`
}

// ClusterNode is one entry of getClusterNodes.
type ClusterNode struct {
	Pubkey       string  `json:"pubkey"`
	Gossip       *string `json:"gossip"`
	TPU          *string `json:"tpu"`
	RPC          *string `json:"rpc"`
	Version      *string `json:"version"`
	FeatureSet   *uint32 `json:"featureSet"`
	ShredVersion *uint16 `json:"shredVersion"`
}

// Supply is the getSupply value, in lamports.
type Supply struct {
	Total          uint64 `json:"total"`
	Circulating    uint64 `json:"circulating"`
	NonCirculating uint64 `json:"nonCirculating"`
}

// InflationGovernor is the getInflationGovernor result.
type InflationGovernor struct {
	Initial        float64 `json:"initial"`
	Terminal       float64 `json:"terminal"`
	Taper          float64 `json:"taper"`
	Foundation     float64 `json:"foundation"`
	FoundationTerm float64 `json:"foundationTerm"`
}

// InflationRate is the getInflationRate result.
type InflationRate struct {
	Total      float64 `json:"total"`
	Validator  float64 `json:"validator"`
	Foundation float64 `json:"foundation"`
	Epoch      uint64  `json:"epoch"`
}

// PerformanceSample is one getRecentPerformanceSamples entry.
type PerformanceSample struct {
	Slot                   uint64  `json:"slot"`
	NumTransactions        uint64  `json:"numTransactions"`
	NumNonVoteTransactions *uint64 `json:"numNonVoteTransactions"`
	NumSlots               uint64  `json:"numSlots"`
	SamplePeriodSecs       uint16  `json:"samplePeriodSecs"`
}

// EpochInfo is the getEpochInfo result.
type EpochInfo struct {
	AbsoluteSlot     uint64  `json:"absoluteSlot"`
	BlockHeight      uint64  `json:"blockHeight"`
	Epoch            uint64  `json:"epoch"`
	SlotIndex        uint64  `json:"slotIndex"`
	SlotsInEpoch     uint64  `json:"slotsInEpoch"`
	TransactionCount *uint64 `json:"transactionCount"`
}
