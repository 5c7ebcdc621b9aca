package config

import (
	"os"
	"path/filepath"
	"testing"

	"cwasset/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cwasset.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
chain:
  bech32_prefix: terra
  denoms:
    - uusd
    - uluna
lcd:
  endpoint: https://lcd.example.com
  timeout: 5
`), 0o600))

	var cfg core.Config
	require.NoError(t, Load(file, &cfg))

	assert.Equal(t, "terra", cfg.Chain.Bech32Prefix)
	assert.Equal(t, []string{"uusd", "uluna"}, cfg.Chain.Denoms)
	assert.Equal(t, "https://lcd.example.com", cfg.LCD.Endpoint)
	assert.Equal(t, int64(5), cfg.LCD.Timeout)
	assert.Equal(t, defaultCacheSize, cfg.Cache.Size)
	assert.Equal(t, int64(defaultCacheTTL), cfg.Cache.TTL)
}

func TestValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cwasset.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
lcd:
  endpoint: "not a url"
`), 0o600))

	var cfg core.Config
	assert.Error(t, Load(file, &cfg))
}
