package querier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"cwasset/core"
	"cwasset/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const (
	bankBalancePath = "/cosmos/bank/v1beta1/balances/{address}/by_denom"
	smartQueryPath  = "/cosmwasm/wasm/v1/contract/{contract}/smart/{query}"
)

// ErrUnsupportedQuery the request has no variant the lcd can serve
var ErrUnsupportedQuery = errors.New("unsupported query")

// New core.Querier backed by a node's lcd rest endpoint
func New(client *resty.Client) core.Querier {
	return &lcdQuerier{client: client}
}

type lcdQuerier struct {
	client *resty.Client
}

func (q *lcdQuerier) Query(ctx context.Context, req core.QueryRequest) ([]byte, error) {
	switch {
	case req.Bank != nil && req.Bank.Balance != nil:
		return q.bankBalance(ctx, req.Bank.Balance)
	case req.Wasm != nil && req.Wasm.Smart != nil:
		return q.smart(ctx, req.Wasm.Smart)
	default:
		return nil, ErrUnsupportedQuery
	}
}

func (q *lcdQuerier) bankBalance(ctx context.Context, query *core.BankBalanceQuery) ([]byte, error) {
	log := logger.FromContext(ctx).WithField("denom", query.Denom)

	r, err := resthttp.Request(ctx, q.client).
		SetPathParam("address", query.Address).
		SetQueryParam("denom", query.Denom).
		Get(bankBalancePath)
	if err != nil {
		log.WithError(err).Errorln("lcd: bank balance")
		return nil, err
	}

	var body struct {
		Balance core.Coin `json:"balance"`
	}
	if err := resthttp.ParseResponse(r, &body); err != nil {
		log.WithError(err).Errorln("lcd: parse bank balance")
		return nil, err
	}

	if body.Balance.Denom == "" {
		body.Balance.Denom = query.Denom
	}

	return json.Marshal(core.BankBalanceResponse{Amount: body.Balance})
}

func (q *lcdQuerier) smart(ctx context.Context, query *core.WasmSmartQuery) ([]byte, error) {
	log := logger.FromContext(ctx).WithField("contract", query.ContractAddr)

	r, err := resthttp.Request(ctx, q.client).
		SetPathParam("contract", query.ContractAddr).
		SetPathParam("query", base64.URLEncoding.EncodeToString(query.Msg)).
		Get(smartQueryPath)
	if err != nil {
		log.WithError(err).Errorln("lcd: smart query")
		return nil, err
	}

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resthttp.ParseResponse(r, &body); err != nil {
		log.WithError(err).Errorln("lcd: parse smart query")
		return nil, err
	}

	log.Debugln("lcd: smart query", string(body.Data))
	return body.Data, nil
}
