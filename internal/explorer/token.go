package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/dmagro/solana-explorer/internal/ident"
	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

type tokenAccountState struct {
	Type string `json:"type"`
	Info struct {
		Mint        string `json:"mint"`
		Owner       string `json:"owner"`
		TokenAmount struct {
			Amount         string `json:"amount"`
			Decimals       uint8  `json:"decimals"`
			UIAmountString string `json:"uiAmountString"`
		} `json:"tokenAmount"`
	} `json:"info"`
}

type mintState struct {
	Type string `json:"type"`
	Info struct {
		Supply          string  `json:"supply"`
		Decimals        uint8   `json:"decimals"`
		MintAuthority   *string `json:"mintAuthority"`
		FreezeAuthority *string `json:"freezeAuthority"`
		IsInitialized   bool    `json:"isInitialized"`
	} `json:"info"`
}

// TokenAccounts prints mint, amount and decimals of each token account owned
// by owner.
func (e *Explorer) TokenAccounts(ctx context.Context, owner string) error {
	pk, err := ident.PublicKey(owner)
	if err != nil {
		return err
	}

	accts, err := e.q.GetTokenAccountsByOwner(ctx, pk.String(), solana.TokenProgramID.String(), rpc.EncodingJSONParsed)
	if err != nil {
		return err
	}

	output.Heading(e.w, fmt.Sprintf("Token Accounts (%d)", len(accts)))
	if len(accts) == 0 {
		fmt.Fprintln(e.w, "No token accounts found.")
		return nil
	}

	shown, more := output.Cap(accts, output.DefaultCap)
	tbl := output.NewTable(e.w, "Account", "Mint", "Amount", "Decimals")
	for _, a := range shown {
		mint, amount, decimals := "-", "-", "-"
		if st, ok := parseTokenAccount(&a.Account); ok {
			mint = st.Info.Mint
			amount = st.Info.TokenAmount.UIAmountString
			decimals = fmt.Sprint(st.Info.TokenAmount.Decimals)
		}
		tbl.AddRow(a.Pubkey, mint, amount, decimals)
	}
	tbl.Print()
	output.More(e.w, more, "token accounts")
	return nil
}

func parseTokenAccount(acct *rpc.Account) (*tokenAccountState, bool) {
	parsed, ok := acct.ParsedData()
	if !ok {
		return nil, false
	}
	var st tokenAccountState
	if err := json.Unmarshal(parsed.Parsed, &st); err != nil || st.Type != "account" {
		return nil, false
	}
	return &st, true
}

// TokenMint prints supply, decimals and authorities of a mint. An account
// not owned by a token program gets an advisory warning.
func (e *Explorer) TokenMint(ctx context.Context, mint string) error {
	pk, err := ident.PublicKey(mint)
	if err != nil {
		return err
	}

	acct, err := e.q.GetAccountInfo(ctx, pk.String(), rpc.EncodingJSONParsed)
	if err != nil {
		return err
	}

	output.Heading(e.w, "Token Mint")
	if !ownedBy(acct.Owner, tokenPrograms...) {
		output.Warn(e.w, "This does not appear to be a token mint (owner mismatch).")
	}
	output.Field(e.w, "Address", pk)
	output.Field(e.w, "Owner Program", acct.Owner)
	output.Field(e.w, "Data Size", fmt.Sprintf("%d bytes", acct.DataLen()))

	parsed, ok := acct.ParsedData()
	if !ok {
		return nil
	}
	var st mintState
	if err := json.Unmarshal(parsed.Parsed, &st); err != nil || st.Type != "mint" {
		return nil
	}
	output.Field(e.w, "Supply", UIAmount(st.Info.Supply, st.Info.Decimals))
	output.Field(e.w, "Decimals", st.Info.Decimals)
	output.Field(e.w, "Mint Authority", authority(st.Info.MintAuthority))
	output.Field(e.w, "Freeze Authority", authority(st.Info.FreezeAuthority))
	output.Field(e.w, "Initialized", output.YesNo(st.Info.IsInitialized))
	return nil
}

func authority(a *string) string {
	if a == nil || *a == "" {
		return "None"
	}
	return *a
}

// UIAmount places the decimal point into a raw integer token amount:
// ("1500000", 6) is "1.500000".
func UIAmount(raw string, decimals uint8) string {
	if raw == "" || strings.Trim(raw, "0123456789") != "" {
		return raw
	}
	if decimals == 0 {
		return raw
	}
	d := int(decimals)
	if len(raw) <= d {
		raw = strings.Repeat("0", d-len(raw)+1) + raw
	}
	return raw[:len(raw)-d] + "." + raw[len(raw)-d:]
}
