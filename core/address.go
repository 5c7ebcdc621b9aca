package core

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
)

// AddressValidator checks the syntax of a chain address and returns
// its canonical form. It never checks that the account exists.
type AddressValidator interface {
	ValidateAddress(addr string) (string, error)
}

// Bech32Validator accepts bech32 addresses; when Prefix is set the
// human readable part must equal it.
type Bech32Validator struct {
	Prefix string
}

// NewBech32Validator new validator for the given human readable part
func NewBech32Validator(prefix string) *Bech32Validator {
	return &Bech32Validator{Prefix: prefix}
}

// ValidateAddress implements AddressValidator
func (v *Bech32Validator) ValidateAddress(addr string) (string, error) {
	if addr == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidInput)
	}

	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", fmt.Errorf("%w: address %q: %s", ErrInvalidInput, addr, err.Error())
	}

	if v.Prefix != "" && hrp != v.Prefix {
		return "", fmt.Errorf("%w: address %q: prefix must be %s", ErrInvalidInput, addr, v.Prefix)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: address %q: empty payload", ErrInvalidInput, addr)
	}

	return strings.ToLower(addr), nil
}
