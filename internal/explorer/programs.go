package explorer

import (
	"github.com/gagliardetto/solana-go"
)

// Token2022ProgramID is the Token Extensions program.
var Token2022ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

// loaderPrograms own deployed programs.
var loaderPrograms = []solana.PublicKey{
	solana.BPFLoaderDeprecatedProgramID,
	solana.BPFLoaderProgramID,
	solana.BPFLoaderUpgradeableProgramID,
}

// tokenPrograms own mints and token accounts.
var tokenPrograms = []solana.PublicKey{
	solana.TokenProgramID,
	Token2022ProgramID,
}

// ownedBy reports whether owner equals one of programs by exact string match.
func ownedBy(owner string, programs ...solana.PublicKey) bool {
	for _, p := range programs {
		if owner == p.String() {
			return true
		}
	}
	return false
}
