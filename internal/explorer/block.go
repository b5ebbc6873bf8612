package explorer

import (
	"context"
	"fmt"

	"github.com/dmagro/solana-explorer/internal/ident"
	"github.com/dmagro/solana-explorer/internal/output"
)

// BlockInfo prints the header, rewards and transaction signatures of the
// block at slot. raw prints the result payload instead.
func (e *Explorer) BlockInfo(ctx context.Context, slotArg string, raw bool) error {
	slot, err := ident.Slot(slotArg)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.w, "Fetching block %d...\n", slot)
	block, err := e.q.GetBlock(ctx, slot)
	if err != nil {
		return err
	}
	if raw {
		output.PrintRaw(e.w, block.Raw)
		return nil
	}

	output.Heading(e.w, "Block Info")
	output.Field(e.w, "Slot", slot)
	output.Field(e.w, "Blockhash", block.Blockhash)
	output.Field(e.w, "Previous Blockhash", block.PreviousBlockhash)
	output.Field(e.w, "Parent Slot", block.ParentSlot)
	if block.BlockHeight != nil {
		output.Field(e.w, "Block Height", *block.BlockHeight)
	} else {
		output.Field(e.w, "Block Height", "N/A")
	}
	if block.BlockTime != nil {
		output.Field(e.w, "Block Time", output.BlockTime(*block.BlockTime))
	} else {
		output.Field(e.w, "Block Time", "N/A")
	}

	var rewards int64
	for _, r := range block.Rewards {
		rewards += r.Lamports
	}
	output.Field(e.w, "Rewards", fmt.Sprintf("%d entries (%s SOL)", len(block.Rewards), output.SignedSOL(rewards)))

	output.Heading(e.w, fmt.Sprintf("Transactions (%d)", len(block.Signatures)))
	if len(block.Signatures) == 0 {
		fmt.Fprintln(e.w, "No transactions in this block.")
		return nil
	}
	shown, more := output.Cap(block.Signatures, output.BlockTxCap)
	tbl := output.NewTable(e.w, "Index", "Signature")
	for i, sig := range shown {
		tbl.AddRow(i, sig)
	}
	tbl.Print()
	output.More(e.w, more, "transactions")
	return nil
}
