package core_test

import (
	"context"
	"errors"
	"testing"

	"cwasset/core"
	"cwasset/pkg/mockquerier"
	"cwasset/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenQuerier struct {
	data []byte
	err  error
}

func (q brokenQuerier) Query(ctx context.Context, req core.QueryRequest) ([]byte, error) {
	return q.data, q.err
}

func TestQueryBalance(t *testing.T) {
	ctx := context.Background()

	q := mockquerier.New()
	q.SetBaseBalances("alice", core.Coin{Denom: "uusd", Amount: "12345"})
	q.SetCw20Balance("mock_token", "bob", number.Decimal("67890"))

	balance, err := core.NativeInfo("uusd").QueryBalance(ctx, q, "alice")
	require.NoError(t, err)
	assert.Equal(t, "12345", balance.String())

	balance, err = core.Cw20Info("mock_token").QueryBalance(ctx, q, "bob")
	require.NoError(t, err)
	assert.Equal(t, "67890", balance.String())

	balance, err = core.NativeInfo("uluna").QueryBalance(ctx, q, "alice")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	_, err = core.Cw20Info("unknown_token").QueryBalance(ctx, q, "bob")
	assert.Error(t, err)
}

func TestQueryBalanceErrors(t *testing.T) {
	ctx := context.Background()
	info := core.NativeInfo("uusd")

	boom := errors.New("boom")
	_, err := info.QueryBalance(ctx, brokenQuerier{err: boom}, "alice")
	assert.ErrorIs(t, err, boom)

	_, err = info.QueryBalance(ctx, brokenQuerier{data: []byte(`not json`)}, "alice")
	assert.Error(t, err)

	_, err = info.QueryBalance(ctx, brokenQuerier{data: []byte(`{"amount":{"denom":"uusd","amount":"-1"}}`)}, "alice")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = core.AssetInfo{}.QueryBalance(ctx, brokenQuerier{}, "alice")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
