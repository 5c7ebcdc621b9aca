package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 200000
	// ErrInvalidInput malformed denom, address or amount
	ErrInvalidInput ErrorCode = 200100
	// ErrMismatchedAssetKind arithmetic between different assets
	ErrMismatchedAssetKind ErrorCode = 200101
	// ErrUnsupportedOperation operation not available for the asset kind
	ErrUnsupportedOperation ErrorCode = 200102
	// ErrInsufficientAmount deduction exceeds the tracked amount
	ErrInsufficientAmount ErrorCode = 200103
	// ErrOverflow amount exceeds uint128
	ErrOverflow ErrorCode = 200104
)

var errorTexts = map[ErrorCode]string{
	ErrUnknown:              "unknown error",
	ErrInvalidInput:         "invalid input",
	ErrMismatchedAssetKind:  "mismatched asset kind",
	ErrUnsupportedOperation: "unsupported operation",
	ErrInsufficientAmount:   "insufficient amount",
	ErrOverflow:             "overflow",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if text, ok := errorTexts[e]; ok {
		return text
	}

	return e.String()
}
