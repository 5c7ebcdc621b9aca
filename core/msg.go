package core

// Binary raw json payload, base64 encoded on the wire
type Binary []byte

type (
	// CosmosMsg outbound message, exactly one variant is set
	CosmosMsg struct {
		Bank *BankMsg `json:"bank,omitempty"`
		Wasm *WasmMsg `json:"wasm,omitempty"`
	}

	// BankMsg bank module message
	BankMsg struct {
		Send *BankSendMsg `json:"send,omitempty"`
	}

	// BankSendMsg send coins to an address
	BankSendMsg struct {
		ToAddress string `json:"to_address"`
		Amount    []Coin `json:"amount"`
	}

	// WasmMsg wasm module message
	WasmMsg struct {
		Execute *WasmExecuteMsg `json:"execute,omitempty"`
	}

	// WasmExecuteMsg execute a contract with a json payload
	WasmExecuteMsg struct {
		ContractAddr string `json:"contract_addr"`
		Msg          Binary `json:"msg"`
		Funds        []Coin `json:"funds"`
	}
)

type (
	// QueryRequest inbound query, exactly one variant is set
	QueryRequest struct {
		Bank *BankQuery `json:"bank,omitempty"`
		Wasm *WasmQuery `json:"wasm,omitempty"`
	}

	// BankQuery bank module query
	BankQuery struct {
		Balance *BankBalanceQuery `json:"balance,omitempty"`
	}

	// BankBalanceQuery balance of one denom
	BankBalanceQuery struct {
		Address string `json:"address"`
		Denom   string `json:"denom"`
	}

	// BankBalanceResponse response of BankBalanceQuery
	BankBalanceResponse struct {
		Amount Coin `json:"amount"`
	}

	// WasmQuery wasm module query
	WasmQuery struct {
		Smart *WasmSmartQuery `json:"smart,omitempty"`
	}

	// WasmSmartQuery query a contract with a json payload
	WasmSmartQuery struct {
		ContractAddr string `json:"contract_addr"`
		Msg          Binary `json:"msg"`
	}
)
