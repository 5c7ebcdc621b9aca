package core

import (
	"encoding/json"
	"fmt"

	"cwasset/pkg/number"
)

func unknownKind(info AssetInfo) error {
	return fmt.Errorf("%w: unknown asset kind %d", ErrInvalidInput, info.kind)
}

func executeCw20(contractAddr string, msg Cw20ExecuteMsg) (CosmosMsg, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return CosmosMsg{}, err
	}

	return CosmosMsg{
		Wasm: &WasmMsg{
			Execute: &WasmExecuteMsg{
				ContractAddr: contractAddr,
				Msg:          payload,
				Funds:        []Coin{},
			},
		},
	}, nil
}

// TransferMsg message that transfers the asset from the sender to recipient
func (a Asset) TransferMsg(recipient string) (CosmosMsg, error) {
	if err := a.validAmount(); err != nil {
		return CosmosMsg{}, err
	}

	amount := number.Format(a.Amount)

	switch a.Info.kind {
	case AssetKindNative:
		return CosmosMsg{
			Bank: &BankMsg{
				Send: &BankSendMsg{
					ToAddress: recipient,
					Amount:    []Coin{{Denom: a.Info.value, Amount: amount}},
				},
			},
		}, nil
	case AssetKindCw20:
		return executeCw20(a.Info.value, Cw20ExecuteMsg{
			Transfer: &Cw20Transfer{Recipient: recipient, Amount: amount},
		})
	default:
		return CosmosMsg{}, unknownKind(a.Info)
	}
}

// TransferFromMsg message that draws the asset from owner to recipient
// using an allowance. Only cw20 tokens support it.
func (a Asset) TransferFromMsg(owner, recipient string) (CosmosMsg, error) {
	if err := a.validAmount(); err != nil {
		return CosmosMsg{}, err
	}

	switch a.Info.kind {
	case AssetKindCw20:
		return executeCw20(a.Info.value, Cw20ExecuteMsg{
			TransferFrom: &Cw20TransferFrom{
				Owner:     owner,
				Recipient: recipient,
				Amount:    number.Format(a.Amount),
			},
		})
	case AssetKindNative:
		return CosmosMsg{}, fmt.Errorf("%w: native coins do not have `transfer_from` method", ErrUnsupportedOperation)
	default:
		return CosmosMsg{}, unknownKind(a.Info)
	}
}

// SendMsg message that sends a cw20 token to a contract together with
// a payload for the contract's receive hook
func (a Asset) SendMsg(contract string, msg Binary) (CosmosMsg, error) {
	if err := a.validAmount(); err != nil {
		return CosmosMsg{}, err
	}

	switch a.Info.kind {
	case AssetKindCw20:
		return executeCw20(a.Info.value, Cw20ExecuteMsg{
			Send: &Cw20Send{
				Contract: contract,
				Amount:   number.Format(a.Amount),
				Msg:      msg,
			},
		})
	case AssetKindNative:
		return CosmosMsg{}, fmt.Errorf("%w: native coins do not have `send` method", ErrUnsupportedOperation)
	default:
		return CosmosMsg{}, unknownKind(a.Info)
	}
}

// IncreaseAllowanceMsg message that lets spender draw the asset from the
// sender, expires may be nil
func (a Asset) IncreaseAllowanceMsg(spender string, expires *Expiration) (CosmosMsg, error) {
	if err := a.validAmount(); err != nil {
		return CosmosMsg{}, err
	}

	switch a.Info.kind {
	case AssetKindCw20:
		if expires != nil {
			if err := expires.Validate(); err != nil {
				return CosmosMsg{}, err
			}
		}
		return executeCw20(a.Info.value, Cw20ExecuteMsg{
			IncreaseAllowance: &Cw20IncreaseAllowance{
				Spender: spender,
				Amount:  number.Format(a.Amount),
				Expires: expires,
			},
		})
	case AssetKindNative:
		return CosmosMsg{}, fmt.Errorf("%w: native coins do not have `increase_allowance` method", ErrUnsupportedOperation)
	default:
		return CosmosMsg{}, unknownKind(a.Info)
	}
}

// BalanceQuery query for the balance address holds of the asset
func (i AssetInfo) BalanceQuery(address string) (QueryRequest, error) {
	switch i.kind {
	case AssetKindNative:
		return QueryRequest{
			Bank: &BankQuery{
				Balance: &BankBalanceQuery{Address: address, Denom: i.value},
			},
		}, nil
	case AssetKindCw20:
		payload, err := json.Marshal(Cw20QueryMsg{
			Balance: &Cw20BalanceQuery{Address: address},
		})
		if err != nil {
			return QueryRequest{}, err
		}
		return QueryRequest{
			Wasm: &WasmQuery{
				Smart: &WasmSmartQuery{ContractAddr: i.value, Msg: payload},
			},
		}, nil
	default:
		return QueryRequest{}, unknownKind(i)
	}
}
