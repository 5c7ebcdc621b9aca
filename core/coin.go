package core

import (
	"fmt"

	"cwasset/pkg/number"
)

// Coin coin-like external shape, as used by the bank module
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func (c Coin) String() string {
	return c.Amount + c.Denom
}

// ParseCoin parse a coin-like shape into a native asset
func ParseCoin(c Coin) (Asset, error) {
	if err := ValidateDenom(c.Denom); err != nil {
		return Asset{}, err
	}

	amount, err := number.ParseUint(c.Amount)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: coin amount %q: %s", ErrInvalidInput, c.Amount, err.Error())
	}

	return NewAsset(NativeInfo(c.Denom), amount), nil
}

// ParseCoins parse every coin, failing on the first malformed one
func ParseCoins(coins []Coin) ([]Asset, error) {
	assets := make([]Asset, 0, len(coins))
	for _, c := range coins {
		asset, err := ParseCoin(c)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, nil
}
