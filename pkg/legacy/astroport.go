// Package legacy converts assets to and from the asset types other
// projects used before adopting the unified ones.
package legacy

import (
	"fmt"

	"cwasset/core"
	"cwasset/pkg/number"
)

type (
	// AstroportAssetInfo {"token":{"contract_addr":...}} or {"native_token":{"denom":...}}
	AstroportAssetInfo struct {
		Token       *core.Token           `json:"token,omitempty"`
		NativeToken *AstroportNativeToken `json:"native_token,omitempty"`
	}

	AstroportNativeToken struct {
		Denom string `json:"denom"`
	}

	// AstroportAsset astroport asset with an amount
	AstroportAsset struct {
		Info   AstroportAssetInfo `json:"info"`
		Amount string             `json:"amount"`
	}
)

// ToAstroportInfo convert asset info to astroport asset info
func ToAstroportInfo(info core.AssetInfo) (AstroportAssetInfo, error) {
	switch info.Kind() {
	case core.AssetKindCw20:
		return AstroportAssetInfo{Token: &core.Token{ContractAddr: info.ContractAddr()}}, nil
	case core.AssetKindNative:
		return AstroportAssetInfo{NativeToken: &AstroportNativeToken{Denom: info.Denom()}}, nil
	default:
		return AstroportAssetInfo{}, fmt.Errorf("%w: unknown asset kind", core.ErrInvalidInput)
	}
}

// FromAstroportInfo convert astroport asset info to asset info
func FromAstroportInfo(legacy AstroportAssetInfo) (core.AssetInfo, error) {
	switch {
	case legacy.Token != nil && legacy.NativeToken == nil:
		return core.Cw20Info(legacy.Token.ContractAddr), nil
	case legacy.NativeToken != nil && legacy.Token == nil:
		return core.NativeInfo(legacy.NativeToken.Denom), nil
	default:
		return core.AssetInfo{}, fmt.Errorf("%w: astroport asset info must set exactly one of token, native_token", core.ErrInvalidInput)
	}
}

// AstroportInfoEqual compare astroport asset info with asset info
func AstroportInfoEqual(legacy AstroportAssetInfo, info core.AssetInfo) bool {
	converted, err := FromAstroportInfo(legacy)
	return err == nil && converted == info
}

// ToAstroport convert asset to astroport asset
func ToAstroport(asset core.Asset) (AstroportAsset, error) {
	info, err := ToAstroportInfo(asset.Info)
	if err != nil {
		return AstroportAsset{}, err
	}

	return AstroportAsset{Info: info, Amount: number.Format(asset.Amount)}, nil
}

// FromAstroport convert astroport asset to asset
func FromAstroport(legacy AstroportAsset) (core.Asset, error) {
	info, err := FromAstroportInfo(legacy.Info)
	if err != nil {
		return core.Asset{}, err
	}

	amount, err := number.ParseUint(legacy.Amount)
	if err != nil {
		return core.Asset{}, fmt.Errorf("%w: astroport amount %q", core.ErrInvalidInput, legacy.Amount)
	}

	return core.NewAsset(info, amount), nil
}
