package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/dmagro/solana-explorer/internal/ident"
	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

// AccountInfo prints balance, owner and data size of an account.
func (e *Explorer) AccountInfo(ctx context.Context, address string) error {
	pk, err := ident.PublicKey(address)
	if err != nil {
		return err
	}

	acct, err := e.q.GetAccountInfo(ctx, pk.String(), rpc.EncodingBase64)
	if err != nil {
		return err
	}
	balance, err := e.q.GetBalance(ctx, pk.String())
	if err != nil {
		return err
	}

	output.Heading(e.w, "Account Info")
	output.Field(e.w, "Address", pk)
	output.Field(e.w, "Balance (SOL)", output.SOL(balance))
	output.Field(e.w, "Lamports", balance)
	output.Field(e.w, "Owner Program", acct.Owner)
	output.Field(e.w, "Executable", output.YesNo(acct.Executable))
	output.Field(e.w, "Data Size", fmt.Sprintf("%d bytes", acct.DataLen()))
	output.Field(e.w, "Rent Epoch", acct.RentEpoch)
	return nil
}

// AccountHistory prints the most recent signatures involving an account.
func (e *Explorer) AccountHistory(ctx context.Context, address string) error {
	pk, err := ident.PublicKey(address)
	if err != nil {
		return err
	}

	sigs, err := e.q.GetSignaturesForAddress(ctx, pk.String())
	if err != nil {
		return err
	}

	output.Heading(e.w, fmt.Sprintf("Transaction History (%d)", len(sigs)))
	if len(sigs) == 0 {
		fmt.Fprintln(e.w, "No transactions found.")
		return nil
	}

	shown, more := output.Cap(sigs, output.HistoryCap)
	for i, s := range shown {
		fmt.Fprintf(e.w, "%s %s | %s | Slot: %d | %s\n",
			output.Indexed(i), s.Signature, output.Status(!s.Failed()), s.Slot, output.Date(s.BlockTime))
	}
	output.More(e.w, more, "transactions")
	return nil
}

// AccountTokens lists the token accounts an owner holds under the Token program.
func (e *Explorer) AccountTokens(ctx context.Context, owner string) error {
	pk, err := ident.PublicKey(owner)
	if err != nil {
		return err
	}

	accts, err := e.q.GetTokenAccountsByOwner(ctx, pk.String(), solana.TokenProgramID.String(), rpc.EncodingBase64)
	if err != nil {
		return err
	}

	output.Heading(e.w, fmt.Sprintf("Token Accounts (%d)", len(accts)))
	if len(accts) == 0 {
		fmt.Fprintln(e.w, "No token accounts found.")
		return nil
	}

	shown, more := output.Cap(accts, output.DefaultCap)
	for i, a := range shown {
		fmt.Fprintf(e.w, "%s %s | %s SOL\n", output.Indexed(i), a.Pubkey, output.SOL(a.Account.Lamports))
	}
	output.More(e.w, more, "token accounts")
	return nil
}

// stakeState is the jsonParsed body of a stake account.
type stakeState struct {
	Type string `json:"type"`
	Info struct {
		Meta struct {
			RentExemptReserve string `json:"rentExemptReserve"`
			Authorized        struct {
				Staker     string `json:"staker"`
				Withdrawer string `json:"withdrawer"`
			} `json:"authorized"`
		} `json:"meta"`
		Stake *struct {
			Delegation struct {
				Voter             string `json:"voter"`
				Stake             string `json:"stake"`
				ActivationEpoch   string `json:"activationEpoch"`
				DeactivationEpoch string `json:"deactivationEpoch"`
			} `json:"delegation"`
		} `json:"stake"`
	} `json:"info"`
}

// deactivationUnset is the sentinel epoch of a stake that was never deactivated.
const deactivationUnset = "18446744073709551615"

// StakeInfo prints a stake account. An account the Stake program does not
// own gets an advisory warning and is still printed.
func (e *Explorer) StakeInfo(ctx context.Context, address string) error {
	pk, err := ident.PublicKey(address)
	if err != nil {
		return err
	}

	acct, err := e.q.GetAccountInfo(ctx, pk.String(), rpc.EncodingJSONParsed)
	if err != nil {
		return err
	}

	output.Heading(e.w, "Stake Account")
	if !ownedBy(acct.Owner, solana.StakeProgramID) {
		output.Warn(e.w, "This does not appear to be a Stake account (owner mismatch).")
	}
	output.Field(e.w, "Address", pk)
	output.Field(e.w, "Balance (SOL)", output.SOL(acct.Lamports))
	output.Field(e.w, "Owner Program", acct.Owner)
	output.Field(e.w, "Data Size", fmt.Sprintf("%d bytes", acct.DataLen()))

	parsed, ok := acct.ParsedData()
	if !ok || parsed.Program != "stake" {
		output.Field(e.w, "State", "unknown")
		return nil
	}
	var st stakeState
	if err := json.Unmarshal(parsed.Parsed, &st); err != nil {
		output.Field(e.w, "State", "unknown")
		return nil
	}

	output.Field(e.w, "State", st.Type)
	if st.Info.Meta.Authorized.Staker != "" {
		output.Field(e.w, "Staker", st.Info.Meta.Authorized.Staker)
		output.Field(e.w, "Withdrawer", st.Info.Meta.Authorized.Withdrawer)
	}
	if st.Info.Stake == nil {
		return nil
	}
	d := st.Info.Stake.Delegation
	if lamports, err := strconv.ParseUint(d.Stake, 10, 64); err == nil {
		output.Field(e.w, "Stake Balance (SOL)", output.SOL(lamports))
	}
	output.Field(e.w, "Vote Account", d.Voter)
	output.Field(e.w, "Activation Epoch", d.ActivationEpoch)
	if d.DeactivationEpoch != "" && d.DeactivationEpoch != deactivationUnset {
		output.Field(e.w, "Deactivation Epoch", d.DeactivationEpoch)
	}
	return nil
}
