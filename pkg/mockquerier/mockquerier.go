package mockquerier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"cwasset/core"
	"cwasset/pkg/number"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedQuery the request is neither a bank balance nor a cw20 balance query
var ErrUnsupportedQuery = errors.New("unsupported query")

// Querier in-memory core.Querier answering bank and cw20 balance queries
type Querier struct {
	mux   sync.RWMutex
	bank  map[string]map[string]decimal.Decimal
	cw20  map[string]map[string]decimal.Decimal
	calls int64
}

// New empty querier
func New() *Querier {
	return &Querier{
		bank: make(map[string]map[string]decimal.Decimal),
		cw20: make(map[string]map[string]decimal.Decimal),
	}
}

// SetBaseBalances replace the native balances of address
func (q *Querier) SetBaseBalances(address string, coins ...core.Coin) {
	q.mux.Lock()
	defer q.mux.Unlock()

	balances := make(map[string]decimal.Decimal, len(coins))
	for _, c := range coins {
		balances[c.Denom] = number.Decimal(c.Amount)
	}
	q.bank[address] = balances
}

// SetCw20Balance set the balance address holds of a cw20 contract
func (q *Querier) SetCw20Balance(contractAddr, address string, amount decimal.Decimal) {
	q.mux.Lock()
	defer q.mux.Unlock()

	balances, ok := q.cw20[contractAddr]
	if !ok {
		balances = make(map[string]decimal.Decimal)
		q.cw20[contractAddr] = balances
	}
	balances[address] = amount
}

// Calls number of queries answered or rejected so far
func (q *Querier) Calls() int {
	return int(atomic.LoadInt64(&q.calls))
}

// Query implements core.Querier
func (q *Querier) Query(ctx context.Context, req core.QueryRequest) ([]byte, error) {
	atomic.AddInt64(&q.calls, 1)

	q.mux.RLock()
	defer q.mux.RUnlock()

	switch {
	case req.Bank != nil && req.Bank.Balance != nil:
		query := req.Bank.Balance
		amount := q.bank[query.Address][query.Denom]
		return json.Marshal(core.BankBalanceResponse{
			Amount: core.Coin{Denom: query.Denom, Amount: number.Format(amount)},
		})
	case req.Wasm != nil && req.Wasm.Smart != nil:
		query := req.Wasm.Smart
		balances, ok := q.cw20[query.ContractAddr]
		if !ok {
			return nil, fmt.Errorf("no such contract: %s", query.ContractAddr)
		}

		var msg core.Cw20QueryMsg
		if err := json.Unmarshal(query.Msg, &msg); err != nil {
			return nil, err
		}
		if msg.Balance == nil {
			return nil, ErrUnsupportedQuery
		}

		return json.Marshal(core.Cw20BalanceResponse{
			Balance: number.Format(balances[msg.Balance.Address]),
		})
	default:
		return nil, ErrUnsupportedQuery
	}
}
