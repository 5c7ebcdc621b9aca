package core

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddr(t *testing.T, hrp string, seed byte) string {
	t.Helper()

	data := make([]byte, 20)
	for i := range data {
		data[i] = seed + byte(i)
	}

	conv, err := bech32.ConvertBits(data, 8, 5, true)
	require.NoError(t, err)

	addr, err := bech32.Encode(hrp, conv)
	require.NoError(t, err)
	return addr
}

func TestBech32Validator(t *testing.T) {
	addr := testAddr(t, "terra", 1)

	t.Run("valid", func(t *testing.T) {
		got, err := NewBech32Validator("terra").ValidateAddress(addr)
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	})

	t.Run("any prefix", func(t *testing.T) {
		got, err := NewBech32Validator("").ValidateAddress(testAddr(t, "osmo", 2))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "osmo1"))
	})

	t.Run("uppercase", func(t *testing.T) {
		got, err := NewBech32Validator("terra").ValidateAddress(strings.ToUpper(addr))
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	})

	invalid := map[string]string{
		"empty":        "",
		"not bech32":   "mock_token",
		"wrong prefix": testAddr(t, "osmo", 1),
		"bad checksum": addr[:len(addr)-1] + flipChar(addr[len(addr)-1]),
		"mixed case":   "T" + addr[1:],
	}

	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := NewBech32Validator("terra").ValidateAddress(input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func flipChar(c byte) string {
	if c == 'q' {
		return "p"
	}
	return "q"
}
