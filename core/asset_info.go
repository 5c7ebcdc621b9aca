package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
)

// AssetKind kind of fungible value
type AssetKind int

const (
	_ AssetKind = iota
	// AssetKindNative coin held by the bank module, identified by denom
	AssetKindNative
	// AssetKindCw20 token issued by a cw20 contract, identified by address
	AssetKindCw20
)

func (k AssetKind) String() string {
	switch k {
	case AssetKindNative:
		return "native"
	case AssetKindCw20:
		return "cw20"
	default:
		return "unknown"
	}
}

// denomPattern is the bank module's default denom syntax
const denomPattern = `^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`

// ValidateDenom check the syntax of a native coin denom
func ValidateDenom(denom string) error {
	if denom == "" {
		return fmt.Errorf("%w: empty denom", ErrInvalidInput)
	}

	if !govalidator.Matches(denom, denomPattern) {
		return fmt.Errorf("%w: invalid denom %q", ErrInvalidInput, denom)
	}

	return nil
}

// AssetInfo identifies what kind of value an asset is: a native coin
// by denom or a cw20 token by contract address. It is comparable and
// may be used as a map key.
type AssetInfo struct {
	kind  AssetKind
	value string
}

// NativeInfo asset info of a native coin
func NativeInfo(denom string) AssetInfo {
	return AssetInfo{kind: AssetKindNative, value: denom}
}

// Cw20Info asset info of a cw20 token
func Cw20Info(contractAddr string) AssetInfo {
	return AssetInfo{kind: AssetKindCw20, value: contractAddr}
}

// Kind asset kind
func (i AssetInfo) Kind() AssetKind {
	return i.kind
}

// IsNative native coin
func (i AssetInfo) IsNative() bool {
	return i.kind == AssetKindNative
}

// IsCw20 cw20 token
func (i AssetInfo) IsCw20() bool {
	return i.kind == AssetKindCw20
}

// Denom denom of a native coin, empty for cw20
func (i AssetInfo) Denom() string {
	if i.IsNative() {
		return i.value
	}

	return ""
}

// ContractAddr contract address of a cw20 token, empty for native
func (i AssetInfo) ContractAddr() string {
	if i.IsCw20() {
		return i.value
	}

	return ""
}

// Matches structural equality
func (i AssetInfo) Matches(other AssetInfo) bool {
	return i == other
}

// Compare order native before cw20, then by denom or address
func (i AssetInfo) Compare(other AssetInfo) int {
	switch {
	case i.kind < other.kind:
		return -1
	case i.kind > other.kind:
		return 1
	}

	return strings.Compare(i.value, other.value)
}

func (i AssetInfo) String() string {
	return i.kind.String() + ":" + i.value
}

// ParseAssetInfo parse the `native:{denom}` or `cw20:{contract_addr}` form
//
// denoms are syntax checked, addresses are only required to be non-empty;
// use Check to validate them.
func ParseAssetInfo(s string) (AssetInfo, error) {
	words := strings.Split(s, ":")
	if len(words) != 2 {
		return AssetInfo{}, fmt.Errorf(
			"%w: invalid asset info format `%s`; must be in format `native:{denom}` or `cw20:{contract_addr}`",
			ErrInvalidInput, s,
		)
	}

	switch words[0] {
	case "native":
		if err := ValidateDenom(words[1]); err != nil {
			return AssetInfo{}, err
		}
		return NativeInfo(words[1]), nil
	case "cw20":
		if words[1] == "" {
			return AssetInfo{}, fmt.Errorf("%w: empty address", ErrInvalidInput)
		}
		return Cw20Info(words[1]), nil
	default:
		return AssetInfo{}, fmt.Errorf("%w: invalid asset type `%s`; must be `native` or `cw20`", ErrInvalidInput, words[0])
	}
}

// Check validate the info and return its canonical form
//
// cw20 addresses are lowercased before validation. When whitelist is not
// empty, native denoms must be included in it.
func (i AssetInfo) Check(v AddressValidator, whitelist ...string) (AssetInfo, error) {
	switch i.kind {
	case AssetKindCw20:
		addr, err := v.ValidateAddress(strings.ToLower(i.value))
		if err != nil {
			return AssetInfo{}, err
		}
		return Cw20Info(addr), nil
	case AssetKindNative:
		if err := ValidateDenom(i.value); err != nil {
			return AssetInfo{}, err
		}
		if len(whitelist) > 0 && !govalidator.IsIn(i.value, whitelist...) {
			return AssetInfo{}, fmt.Errorf("%w: invalid denom %s; must be %s", ErrInvalidInput, i.value, strings.Join(whitelist, "|"))
		}
		return i, nil
	default:
		return AssetInfo{}, fmt.Errorf("%w: unknown asset kind", ErrInvalidInput)
	}
}

// Token token-like external shape
type Token struct {
	ContractAddr string `json:"contract_addr"`
}

// ParseToken parse a token-like shape into cw20 asset info
func ParseToken(t Token, v AddressValidator) (AssetInfo, error) {
	return Cw20Info(t.ContractAddr).Check(v)
}

// Token format a cw20 info as the token-like shape
func (i AssetInfo) Token() (Token, error) {
	if !i.IsCw20() {
		return Token{}, fmt.Errorf("%w: %s is not a cw20 token", ErrUnsupportedOperation, i)
	}

	return Token{ContractAddr: i.value}, nil
}

// MarshalJSON encode as {"native":"uusd"} or {"cw20":"addr"}
func (i AssetInfo) MarshalJSON() ([]byte, error) {
	switch i.kind {
	case AssetKindNative, AssetKindCw20:
		return json.Marshal(map[string]string{i.kind.String(): i.value})
	default:
		return nil, fmt.Errorf("%w: unknown asset kind", ErrInvalidInput)
	}
}

// UnmarshalJSON decode {"native":"uusd"} or {"cw20":"addr"}
//
// Values are not validated; use Check before building messages.
func (i *AssetInfo) UnmarshalJSON(b []byte) error {
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("%w: asset info: %s", ErrInvalidInput, err.Error())
	}

	if len(m) != 1 {
		return fmt.Errorf("%w: asset info must have exactly one of `native` or `cw20`", ErrInvalidInput)
	}

	for k, v := range m {
		switch k {
		case "native":
			*i = NativeInfo(v)
		case "cw20":
			*i = Cw20Info(v)
		default:
			return fmt.Errorf("%w: invalid asset type `%s`; must be `native` or `cw20`", ErrInvalidInput, k)
		}
	}

	return nil
}
