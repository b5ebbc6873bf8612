package explorer

import (
	"context"
	"fmt"

	"github.com/dmagro/solana-explorer/internal/ident"
	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

// TxOptions selects the transaction encoding and output mode.
type TxOptions struct {
	// Parsed requests jsonParsed, so instructions carry program names.
	Parsed bool
	// Raw prints the result payload as indented JSON instead of the report.
	Raw bool
}

// txView is a transaction with its derived fields computed once.
type txView struct {
	tx      *rpc.Transaction
	outcome Outcome
	keys    []string

	fee   uint64
	units rpc.Opt[uint64]
	logs  rpc.Opt[[]string]
	inner rpc.Opt[[]rpc.InnerInstructions]
}

func newTxView(tx *rpc.Transaction) *txView {
	v := &txView{tx: tx, outcome: outcomeOf(tx.Meta)}
	if m := tx.Meta; m != nil {
		v.fee = m.Fee
		v.units = m.ComputeUnitsConsumed
		v.logs = m.LogMessages
		v.inner = m.InnerInstructions
	}
	v.keys = resolveKeys(tx)
	return v
}

// resolveKeys returns the account keys instruction indices point into:
// static keys, then lookup-table writable, then lookup-table readonly. The
// jsonParsed encoding already lists loaded keys in the message.
func resolveKeys(tx *rpc.Transaction) []string {
	static := tx.Transaction.Message.AccountKeys
	keys := make([]string, 0, len(static))
	expanded := false
	for _, k := range static {
		keys = append(keys, k.Pubkey)
		if k.Source != "" {
			expanded = true
		}
	}
	if expanded || tx.Meta == nil {
		return keys
	}
	if loaded, ok := tx.Meta.LoadedAddresses.Get(); ok {
		keys = append(keys, loaded.Writable...)
		keys = append(keys, loaded.Readonly...)
	}
	return keys
}

func (v *txView) key(index int) (string, bool) {
	if index < 0 || index >= len(v.keys) {
		return "", false
	}
	return v.keys[index], true
}

// programID resolves the program an instruction invokes.
func (v *txView) programID(ix rpc.Instruction) (string, bool) {
	if ix.ProgramID != "" {
		return ix.ProgramID, true
	}
	if ix.ProgramIDIndex == nil {
		return "", false
	}
	return v.key(*ix.ProgramIDIndex)
}

// programs returns the distinct top-level program ids in first-seen order.
func (v *txView) programs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, ix := range v.tx.Transaction.Message.Instructions {
		id, ok := v.programID(ix)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func (v *txView) computeUnits() string {
	if units, ok := v.units.Get(); ok {
		return fmt.Sprintf("%s units", output.Number(units))
	}
	return "0 units (not reported)"
}

func (v *txView) describe(ix rpc.Instruction) string {
	switch ix.Form() {
	case rpc.ParsedForm:
		return fmt.Sprintf("Program: %s (%s)", ix.Program, ix.ProgramID)
	case rpc.PartiallyDecoded:
		return "Program ID: " + ix.ProgramID
	default:
		if ix.ProgramIDIndex == nil {
			return "Program Index: ?"
		}
		if key, ok := v.key(*ix.ProgramIDIndex); ok {
			return fmt.Sprintf("Program Index: %d (%s)", *ix.ProgramIDIndex, key)
		}
		return fmt.Sprintf("Program Index: %d", *ix.ProgramIDIndex)
	}
}

func (e *Explorer) fetchTx(ctx context.Context, signature string, encoding rpc.Encoding) (*rpc.Transaction, error) {
	sig, err := ident.Signature(signature)
	if err != nil {
		return nil, err
	}
	return e.q.GetTransaction(ctx, sig.String(), encoding)
}

// TxInfo prints status, fee, compute units, logs, inner instructions and
// invoked programs of a transaction.
func (e *Explorer) TxInfo(ctx context.Context, signature string, opts TxOptions) error {
	encoding := rpc.EncodingJSON
	if opts.Parsed {
		encoding = rpc.EncodingJSONParsed
	}
	tx, err := e.fetchTx(ctx, signature, encoding)
	if err != nil {
		return err
	}
	if opts.Raw {
		output.PrintRaw(e.w, tx.Raw)
		return nil
	}

	v := newTxView(tx)

	output.Heading(e.w, "Transaction Details")
	if sigs := tx.Transaction.Signatures; len(sigs) > 0 {
		output.Field(e.w, "Signature", sigs[0])
	} else {
		output.Field(e.w, "Signature", signature)
	}
	output.Field(e.w, "Slot", tx.Slot)
	if tx.BlockTime != nil {
		output.Field(e.w, "Timestamp", output.Timestamp(*tx.BlockTime))
	} else {
		output.Field(e.w, "Timestamp", "N/A")
	}
	output.Field(e.w, "Version", txVersion(tx))
	output.Field(e.w, "Compute Units", v.computeUnits())
	output.Field(e.w, "Fee", fmt.Sprintf("%d lamports (%s SOL)", v.fee, output.SOL(v.fee)))
	output.Field(e.w, "Status", v.outcome)

	e.printLogs(v)
	e.printInner(v)

	output.Heading(e.w, "Involved Programs")
	for _, id := range v.programs() {
		fmt.Fprintf(e.w, "- %s\n", id)
	}
	return nil
}

// TxLogs prints only the log messages of a transaction.
func (e *Explorer) TxLogs(ctx context.Context, signature string) error {
	tx, err := e.fetchTx(ctx, signature, rpc.EncodingJSON)
	if err != nil {
		return err
	}
	e.printLogs(newTxView(tx))
	return nil
}

func (e *Explorer) printLogs(v *txView) {
	output.Heading(e.w, "Transaction Logs")
	logs, ok := v.logs.Get()
	if !ok || len(logs) == 0 {
		fmt.Fprintln(e.w, "No logs found.")
		return
	}
	for i, line := range logs {
		fmt.Fprintf(e.w, "%s %s\n", output.Indexed(i), line)
	}
}

func (e *Explorer) printInner(v *txView) {
	output.Heading(e.w, "Inner Instructions")
	groups, ok := v.inner.Get()
	if !ok || len(groups) == 0 {
		fmt.Fprintln(e.w, "No inner instructions.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(e.w, "  Program Instruction %d\n", g.Index)
		for i, ix := range g.Instructions {
			fmt.Fprintf(e.w, "    %s %s\n", output.Indexed(i), v.describe(ix))
		}
	}
}

func txVersion(tx *rpc.Transaction) string {
	if isNull(tx.Version) {
		return "legacy"
	}
	s := string(tx.Version)
	if len(s) >= 2 && s[0] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
