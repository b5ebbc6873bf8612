// Package ident decodes user-supplied identifiers (addresses, signatures and
// slots) before any query is made.
//
// A decode failure is always an *InvalidIdentifierError. Callers must not
// touch the network when one is returned.
package ident

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

const (
	PublicKeyLength = 32
	SignatureLength = 64
)

// Kind names the identifier being decoded.
type Kind string

const (
	KindAddress   Kind = "address"
	KindSignature Kind = "signature"
	KindSlot      Kind = "slot"
)

// ErrInvalidIdentifier matches every *InvalidIdentifierError via errors.Is.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// InvalidIdentifierError reports malformed user input.
type InvalidIdentifierError struct {
	Kind   Kind
	Input  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// PublicKey decodes a base58 string into a 32-byte public key.
func PublicKey(s string) (solana.PublicKey, error) {
	raw, err := decodeBase58(KindAddress, s, PublicKeyLength)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(raw), nil
}

// Signature decodes a base58 string into a 64-byte transaction signature.
func Signature(s string) (solana.Signature, error) {
	raw, err := decodeBase58(KindSignature, s, SignatureLength)
	if err != nil {
		return solana.Signature{}, err
	}
	return solana.SignatureFromBytes(raw), nil
}

// Slot parses a decimal slot number.
func Slot(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	slot, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &InvalidIdentifierError{Kind: KindSlot, Input: s, Reason: "expected a non-negative decimal integer"}
	}
	return slot, nil
}

func decodeBase58(kind Kind, s string, want int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &InvalidIdentifierError{Kind: kind, Input: s, Reason: "empty"}
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, &InvalidIdentifierError{Kind: kind, Input: s, Reason: "not valid base58"}
	}
	if len(raw) != want {
		return nil, &InvalidIdentifierError{
			Kind:   kind,
			Input:  s,
			Reason: fmt.Sprintf("decodes to %d bytes, want %d", len(raw), want),
		}
	}
	return raw, nil
}
