package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cwasset/core"

	"github.com/spf13/cobra"
)

func mustFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil || v == "" {
		panic(fmt.Sprintf("invalid %s", name))
	}

	return v
}

func mustAsset(cmd *cobra.Command) core.Asset {
	asset, err := core.ParseAsset(mustFlag(cmd, "asset"))
	if err != nil {
		panic(err)
	}

	asset, err = asset.Check(provideAddressValidator(), provideConfig().Chain.Denoms...)
	if err != nil {
		panic(err)
	}

	return asset
}

func mustInfo(s string) core.AssetInfo {
	info, err := core.ParseAssetInfo(s)
	if err != nil {
		panic(err)
	}

	info, err = info.Check(provideAddressValidator(), provideConfig().Chain.Denoms...)
	if err != nil {
		panic(err)
	}

	return info
}

func mustAddress(cmd *cobra.Command, name string) string {
	addr, err := provideAddressValidator().ValidateAddress(mustFlag(cmd, name))
	if err != nil {
		panic(err)
	}

	return addr
}

// parseExpiration parse height:{n}, time:{unix nanos} or never
func parseExpiration(v string) (*core.Expiration, error) {
	if v == "" {
		return nil, nil
	}

	if v == "never" {
		return core.ExpiresNever(), nil
	}

	words := strings.SplitN(v, ":", 2)
	if len(words) != 2 {
		return nil, fmt.Errorf("%w: invalid expiration %q", core.ErrInvalidInput, v)
	}

	switch words[0] {
	case "height":
		height, err := strconv.ParseUint(words[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expiration height %q", core.ErrInvalidInput, words[1])
		}
		return core.ExpiresAtHeight(height), nil
	case "time":
		nanos, err := strconv.ParseInt(words[1], 10, 64)
		if err != nil || nanos < 0 {
			return nil, fmt.Errorf("%w: invalid expiration time %q", core.ErrInvalidInput, words[1])
		}
		return core.ExpiresAtTime(time.Unix(0, nanos)), nil
	default:
		return nil, fmt.Errorf("%w: invalid expiration %q", core.ErrInvalidInput, v)
	}
}

func printJSON(cmd *cobra.Command, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	cmd.Println(string(b))
}
