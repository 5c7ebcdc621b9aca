package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cwasset/pkg/number"

	"github.com/shopspring/decimal"
)

// Asset an asset info paired with an amount
//
// Amount is a non-negative integer of arbitrary precision. Assets are
// values: arithmetic returns new assets and never mutates the receiver.
type Asset struct {
	Info   AssetInfo       `json:"info"`
	Amount decimal.Decimal `json:"amount"`
}

// NewAsset new asset, the amount is not range checked
func NewAsset(info AssetInfo, amount decimal.Decimal) Asset {
	return Asset{Info: info, Amount: amount}
}

// NewNativeAsset native coin of denom
func NewNativeAsset(denom string, amount decimal.Decimal) Asset {
	return NewAsset(NativeInfo(denom), amount)
}

// NewCw20Asset cw20 token of contract address
func NewCw20Asset(contractAddr string, amount decimal.Decimal) Asset {
	return NewAsset(Cw20Info(contractAddr), amount)
}

// Equal same info and same amount
func (a Asset) Equal(other Asset) bool {
	return a.Info == other.Info && a.Amount.Equal(other.Amount)
}

// IsZero zero amount
func (a Asset) IsZero() bool {
	return a.Amount.IsZero()
}

// validAmount amount is a non-negative integer
func (a Asset) validAmount() error {
	if !number.IsUint(a.Amount) {
		return fmt.Errorf("%w: amount %s of %s must be a non-negative integer", ErrInvalidInput, a.Amount.String(), a.Info)
	}

	return nil
}

// Add sum of two assets of the same info
func (a Asset) Add(other Asset) (Asset, error) {
	if err := a.validAmount(); err != nil {
		return Asset{}, err
	}

	if err := other.validAmount(); err != nil {
		return Asset{}, err
	}

	if a.Info != other.Info {
		return Asset{}, fmt.Errorf("%w: cannot add %s to %s", ErrMismatchedAssetKind, other.Info, a.Info)
	}

	sum, err := number.CheckedAdd(a.Amount, other.Amount)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s + %s", ErrOverflow, number.Format(a.Amount), number.Format(other.Amount))
	}

	return NewAsset(a.Info, sum), nil
}

// Sub difference of two assets of the same info
func (a Asset) Sub(other Asset) (Asset, error) {
	if err := a.validAmount(); err != nil {
		return Asset{}, err
	}

	if err := other.validAmount(); err != nil {
		return Asset{}, err
	}

	if a.Info != other.Info {
		return Asset{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrMismatchedAssetKind, other.Info, a.Info)
	}

	diff, err := number.CheckedSub(a.Amount, other.Amount)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s < %s", ErrInsufficientAmount, a, other)
	}

	return NewAsset(a.Info, diff), nil
}

func (a Asset) String() string {
	return a.Info.String() + ":" + number.Format(a.Amount)
}

// ParseAsset parse the `{asset info}:{amount}` form, e.g. `native:uusd:12345`
func ParseAsset(s string) (Asset, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return Asset{}, fmt.Errorf("%w: invalid asset format `%s`; must be in format `{asset info}:{amount}`", ErrInvalidInput, s)
	}

	info, err := ParseAssetInfo(s[:idx])
	if err != nil {
		return Asset{}, err
	}

	amount, err := number.ParseUint(s[idx+1:])
	if err != nil {
		return Asset{}, fmt.Errorf("%w: asset amount %q: %s", ErrInvalidInput, s[idx+1:], err.Error())
	}

	return NewAsset(info, amount), nil
}

// Check validate the amount and the info, see AssetInfo.Check
func (a Asset) Check(v AddressValidator, whitelist ...string) (Asset, error) {
	if err := a.validAmount(); err != nil {
		return Asset{}, err
	}

	info, err := a.Info.Check(v, whitelist...)
	if err != nil {
		return Asset{}, err
	}

	return NewAsset(info, a.Amount), nil
}

// Coin format a native asset as the coin-like shape
func (a Asset) Coin() (Coin, error) {
	if !a.Info.IsNative() {
		return Coin{}, fmt.Errorf("%w: %s is not a native coin", ErrUnsupportedOperation, a.Info)
	}

	if err := a.validAmount(); err != nil {
		return Coin{}, err
	}

	return Coin{Denom: a.Info.Denom(), Amount: number.Format(a.Amount)}, nil
}

// UnmarshalJSON decode {"info":...,"amount":"123"}, rejecting non integer amounts
//
// The info is taken as is, an empty denom or an unvalidated address
// decodes fine; pass the result through Check before building messages.
func (a *Asset) UnmarshalJSON(b []byte) error {
	var raw struct {
		Info   AssetInfo `json:"info"`
		Amount string    `json:"amount"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("%w: asset: %s", ErrInvalidInput, err.Error())
	}

	if raw.Info.Kind() == 0 {
		return fmt.Errorf("%w: asset: missing info", ErrInvalidInput)
	}

	amount, err := number.ParseUint(raw.Amount)
	if err != nil {
		return fmt.Errorf("%w: asset amount %q: %s", ErrInvalidInput, raw.Amount, err.Error())
	}

	*a = NewAsset(raw.Info, amount)
	return nil
}
