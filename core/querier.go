package core

import (
	"context"
	"encoding/json"
	"fmt"

	"cwasset/pkg/number"

	"github.com/shopspring/decimal"
)

// Querier dispatches a query to the chain and returns the raw json response
type Querier interface {
	Query(ctx context.Context, req QueryRequest) ([]byte, error)
}

// QueryBalance query the balance address holds of the asset
func (i AssetInfo) QueryBalance(ctx context.Context, querier Querier, address string) (decimal.Decimal, error) {
	req, err := i.BalanceQuery(address)
	if err != nil {
		return decimal.Zero, err
	}

	data, err := querier.Query(ctx, req)
	if err != nil {
		return decimal.Zero, err
	}

	var amount string
	if i.IsNative() {
		var resp BankBalanceResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return decimal.Zero, err
		}
		amount = resp.Amount.Amount
	} else {
		var resp Cw20BalanceResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return decimal.Zero, err
		}
		amount = resp.Balance
	}

	balance, err := number.ParseUint(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: balance %q of %s", ErrInvalidInput, amount, i)
	}

	return balance, nil
}
