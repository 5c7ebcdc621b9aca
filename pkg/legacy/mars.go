package legacy

import (
	"fmt"

	"cwasset/core"
)

type (
	// MarsAsset {"cw20":{"contract_addr":...}} or {"native":{"denom":...}}
	MarsAsset struct {
		Cw20   *core.Token      `json:"cw20,omitempty"`
		Native *MarsNativeAsset `json:"native,omitempty"`
	}

	MarsNativeAsset struct {
		Denom string `json:"denom"`
	}
)

// ToMars convert asset info to mars asset
func ToMars(info core.AssetInfo) (MarsAsset, error) {
	switch info.Kind() {
	case core.AssetKindCw20:
		return MarsAsset{Cw20: &core.Token{ContractAddr: info.ContractAddr()}}, nil
	case core.AssetKindNative:
		return MarsAsset{Native: &MarsNativeAsset{Denom: info.Denom()}}, nil
	default:
		return MarsAsset{}, fmt.Errorf("%w: unknown asset kind", core.ErrInvalidInput)
	}
}

// FromMars convert mars asset to asset info
func FromMars(legacy MarsAsset) (core.AssetInfo, error) {
	switch {
	case legacy.Cw20 != nil && legacy.Native == nil:
		return core.Cw20Info(legacy.Cw20.ContractAddr), nil
	case legacy.Native != nil && legacy.Cw20 == nil:
		return core.NativeInfo(legacy.Native.Denom), nil
	default:
		return core.AssetInfo{}, fmt.Errorf("%w: mars asset must set exactly one of cw20, native", core.ErrInvalidInput)
	}
}
