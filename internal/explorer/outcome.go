package explorer

import (
	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

// Outcome is the execution result of a confirmed transaction: Succeeded, or
// Failed with the server's error detail.
type Outcome struct {
	failed bool
	detail string
}

// Succeeded is the outcome of a transaction without an execution error.
func Succeeded() Outcome { return Outcome{} }

// Failed is the outcome of a transaction whose execution error is detail.
func Failed(detail string) Outcome { return Outcome{failed: true, detail: detail} }

// OK reports whether the transaction succeeded.
func (o Outcome) OK() bool { return !o.failed }

// Detail returns the error detail of a failed transaction.
func (o Outcome) Detail() string { return o.detail }

// String renders "SUCCESS" or "FAILED (<detail>)".
func (o Outcome) String() string {
	if !o.failed {
		return output.Status(true)
	}
	return output.Status(false) + " (" + o.detail + ")"
}

// outcomeOf derives the outcome from transaction status metadata. A missing
// meta carries no error and counts as success.
func outcomeOf(meta *rpc.TransactionMeta) Outcome {
	if meta == nil || isNull(meta.Err) {
		return Succeeded()
	}
	return Failed(output.Compact(meta.Err))
}
