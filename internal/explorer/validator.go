package explorer

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmagro/solana-explorer/internal/output"
)

// Validators prints the current vote accounts, largest stake first.
func (e *Explorer) Validators(ctx context.Context) error {
	va, err := e.q.GetVoteAccounts(ctx)
	if err != nil {
		return err
	}

	current := va.Current
	sort.SliceStable(current, func(i, j int) bool {
		return current[i].ActivatedStake > current[j].ActivatedStake
	})

	output.Heading(e.w, fmt.Sprintf("Validators (%d current, %d delinquent)", len(va.Current), len(va.Delinquent)))
	if len(current) == 0 {
		fmt.Fprintln(e.w, "No validators found.")
		return nil
	}

	shown, more := output.Cap(current, output.DefaultCap)
	tbl := output.NewTable(e.w, "Node Pubkey", "Vote Pubkey", "Commission", "Activated Stake (SOL)")
	for _, v := range shown {
		tbl.AddRow(v.NodePubkey, v.VotePubkey, fmt.Sprintf("%d%%", v.Commission), output.SOL(v.ActivatedStake))
	}
	tbl.Print()
	output.More(e.w, more, "validators")
	return nil
}
