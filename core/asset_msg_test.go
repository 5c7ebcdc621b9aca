package core

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, v interface{}) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestTransferMsg(t *testing.T) {
	t.Run("native", func(t *testing.T) {
		msg, err := NewNativeAsset("uusd", amt("123456")).TransferMsg("alice")
		require.NoError(t, err)

		require.NotNil(t, msg.Bank)
		assert.Nil(t, msg.Wasm)
		assert.Equal(t, []Coin{{Denom: "uusd", Amount: "123456"}}, msg.Bank.Send.Amount)
		assert.Equal(t,
			`{"bank":{"send":{"to_address":"alice","amount":[{"denom":"uusd","amount":"123456"}]}}}`,
			marshal(t, msg),
		)
	})

	t.Run("cw20", func(t *testing.T) {
		msg, err := NewCw20Asset("mock_token", amt("123456")).TransferMsg("alice")
		require.NoError(t, err)

		require.NotNil(t, msg.Wasm)
		assert.Nil(t, msg.Bank)
		assert.Equal(t, `{"transfer":{"recipient":"alice","amount":"123456"}}`, string(msg.Wasm.Execute.Msg))
		assert.Empty(t, msg.Wasm.Execute.Funds)
		assert.Equal(t,
			`{"wasm":{"execute":{"contract_addr":"mock_token","msg":"`+b64(`{"transfer":{"recipient":"alice","amount":"123456"}}`)+`","funds":[]}}}`,
			marshal(t, msg),
		)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Asset{}.TransferMsg("alice")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestTransferMsgDeterministic(t *testing.T) {
	asset := NewCw20Asset("mock_token", amt("42"))

	first, err := asset.TransferMsg("alice")
	require.NoError(t, err)
	second, err := asset.TransferMsg("alice")
	require.NoError(t, err)

	assert.Equal(t, marshal(t, first), marshal(t, second))
}

func TestTransferFromMsg(t *testing.T) {
	msg, err := NewCw20Asset("mock_token", amt("123456")).TransferFromMsg("bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "mock_token", msg.Wasm.Execute.ContractAddr)
	assert.Equal(t,
		`{"transfer_from":{"owner":"bob","recipient":"alice","amount":"123456"}}`,
		string(msg.Wasm.Execute.Msg),
	)

	_, err = NewNativeAsset("uusd", amt("123456")).TransferFromMsg("bob", "alice")
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.EqualError(t, err, "unsupported operation: native coins do not have `transfer_from` method")
}

func TestSendMsg(t *testing.T) {
	hook := Binary(`{"mock_command":{}}`)

	msg, err := NewCw20Asset("mock_token", amt("123456")).SendMsg("mock_contract", hook)
	require.NoError(t, err)
	assert.Equal(t,
		`{"send":{"contract":"mock_contract","amount":"123456","msg":"`+b64(`{"mock_command":{}}`)+`"}}`,
		string(msg.Wasm.Execute.Msg),
	)

	_, err = NewNativeAsset("uusd", amt("123456")).SendMsg("mock_contract", hook)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestIncreaseAllowanceMsg(t *testing.T) {
	token := NewCw20Asset("mock_token", amt("500"))

	msg, err := token.IncreaseAllowanceMsg("carol", nil)
	require.NoError(t, err)
	assert.Equal(t,
		`{"increase_allowance":{"spender":"carol","amount":"500"}}`,
		string(msg.Wasm.Execute.Msg),
	)

	cases := map[string]struct {
		expires *Expiration
		payload string
	}{
		"height": {ExpiresAtHeight(12345), `{"at_height":12345}`},
		"time":   {ExpiresAtTime(time.Unix(1700000000, 0)), `{"at_time":"1700000000000000000"}`},
		"never":  {ExpiresNever(), `{"never":{}}`},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			msg, err := token.IncreaseAllowanceMsg("carol", c.expires)
			require.NoError(t, err)
			assert.Equal(t,
				`{"increase_allowance":{"spender":"carol","amount":"500","expires":`+c.payload+`}}`,
				string(msg.Wasm.Execute.Msg),
			)
		})
	}

	t.Run("invalid expiration", func(t *testing.T) {
		_, err := token.IncreaseAllowanceMsg("carol", &Expiration{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("native", func(t *testing.T) {
		_, err := NewNativeAsset("uusd", amt("500")).IncreaseAllowanceMsg("carol", nil)
		assert.ErrorIs(t, err, ErrUnsupportedOperation)
	})
}

func TestExpirationString(t *testing.T) {
	assert.Equal(t, "height:10", ExpiresAtHeight(10).String())
	assert.Equal(t, "time:1000000000", ExpiresAtTime(time.Unix(1, 0)).String())
	assert.Equal(t, "never", ExpiresNever().String())
}

func TestBalanceQuery(t *testing.T) {
	query, err := NativeInfo("uusd").BalanceQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, `{"bank":{"balance":{"address":"alice","denom":"uusd"}}}`, marshal(t, query))

	query, err = Cw20Info("mock_token").BalanceQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, `{"balance":{"address":"alice"}}`, string(query.Wasm.Smart.Msg))
	assert.Equal(t,
		`{"wasm":{"smart":{"contract_addr":"mock_token","msg":"`+b64(`{"balance":{"address":"alice"}}`)+`"}}}`,
		marshal(t, query),
	)

	_, err = AssetInfo{}.BalanceQuery("alice")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMsgsRejectInvalidAmounts(t *testing.T) {
	for _, bad := range []string{"-5", "0.4"} {
		t.Run(bad, func(t *testing.T) {
			_, err := NewNativeAsset("uusd", amt(bad)).TransferMsg("alice")
			assert.ErrorIs(t, err, ErrInvalidInput)

			token := NewCw20Asset("mock_token", amt(bad))

			_, err = token.TransferMsg("alice")
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, err = token.TransferFromMsg("alice", "bob")
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, err = token.SendMsg("mock_contract", Binary(`{}`))
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, err = token.IncreaseAllowanceMsg("bob", nil)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
