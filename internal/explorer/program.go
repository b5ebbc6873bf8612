package explorer

import (
	"context"
	"fmt"

	"github.com/dmagro/solana-explorer/internal/ident"
	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

// ProgramInfo prints a program account. Accounts that are not executable or
// not owned by a BPF loader get advisory warnings.
func (e *Explorer) ProgramInfo(ctx context.Context, programID string) error {
	pk, err := ident.PublicKey(programID)
	if err != nil {
		return err
	}

	acct, err := e.q.GetAccountInfo(ctx, pk.String(), rpc.EncodingBase64)
	if err != nil {
		return err
	}

	output.Heading(e.w, "Program Info")
	if !acct.Executable {
		output.Warn(e.w, "Account is not marked executable!")
	}
	if !ownedBy(acct.Owner, loaderPrograms...) {
		output.Warn(e.w, "Owner is not a BPF loader (owner mismatch).")
	}
	output.Field(e.w, "Program ID", pk)
	output.Field(e.w, "Owner", acct.Owner)
	output.Field(e.w, "Executable", output.YesNo(acct.Executable))
	output.Field(e.w, "Data Size", fmt.Sprintf("%d bytes", acct.DataLen()))
	output.Field(e.w, "Balance (SOL)", output.SOL(acct.Lamports))
	return nil
}

// ProgramAccounts lists the accounts owned by a program.
func (e *Explorer) ProgramAccounts(ctx context.Context, programID string) error {
	pk, err := ident.PublicKey(programID)
	if err != nil {
		return err
	}

	accts, err := e.q.GetProgramAccounts(ctx, pk.String())
	if err != nil {
		return err
	}

	output.Heading(e.w, fmt.Sprintf("Program Accounts (%d)", len(accts)))
	if len(accts) == 0 {
		fmt.Fprintln(e.w, "No accounts found.")
		return nil
	}
	shown, more := output.Cap(accts, output.DefaultCap)
	for i, a := range shown {
		fmt.Fprintf(e.w, "%s %s | %d lamports\n", output.Indexed(i), a.Pubkey, a.Account.Lamports)
	}
	output.More(e.w, more, "accounts")
	return nil
}
