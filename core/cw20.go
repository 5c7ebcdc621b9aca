package core

import (
	"fmt"
	"strconv"
	"time"
)

type (
	// Cw20ExecuteMsg cw20 execute payload, exactly one variant is set
	Cw20ExecuteMsg struct {
		Transfer          *Cw20Transfer          `json:"transfer,omitempty"`
		TransferFrom      *Cw20TransferFrom      `json:"transfer_from,omitempty"`
		Send              *Cw20Send              `json:"send,omitempty"`
		IncreaseAllowance *Cw20IncreaseAllowance `json:"increase_allowance,omitempty"`
	}

	Cw20Transfer struct {
		Recipient string `json:"recipient"`
		Amount    string `json:"amount"`
	}

	Cw20TransferFrom struct {
		Owner     string `json:"owner"`
		Recipient string `json:"recipient"`
		Amount    string `json:"amount"`
	}

	Cw20Send struct {
		Contract string `json:"contract"`
		Amount   string `json:"amount"`
		Msg      Binary `json:"msg"`
	}

	Cw20IncreaseAllowance struct {
		Spender string      `json:"spender"`
		Amount  string      `json:"amount"`
		Expires *Expiration `json:"expires,omitempty"`
	}

	// Cw20QueryMsg cw20 query payload
	Cw20QueryMsg struct {
		Balance *Cw20BalanceQuery `json:"balance,omitempty"`
	}

	Cw20BalanceQuery struct {
		Address string `json:"address"`
	}

	// Cw20BalanceResponse response of Cw20BalanceQuery
	Cw20BalanceResponse struct {
		Balance string `json:"balance"`
	}
)

// Expiration when an allowance expires, exactly one variant is set
type Expiration struct {
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *string   `json:"at_time,omitempty"`
	Never    *struct{} `json:"never,omitempty"`
}

// ExpiresAtHeight expire at block height
func ExpiresAtHeight(height uint64) *Expiration {
	return &Expiration{AtHeight: &height}
}

// ExpiresAtTime expire at block time, encoded as unix nanoseconds
func ExpiresAtTime(t time.Time) *Expiration {
	nanos := strconv.FormatInt(t.UnixNano(), 10)
	return &Expiration{AtTime: &nanos}
}

// ExpiresNever never expire
func ExpiresNever() *Expiration {
	return &Expiration{Never: &struct{}{}}
}

// Validate exactly one variant set, at_time holds unix nanoseconds
func (e *Expiration) Validate() error {
	set := 0
	if e.AtHeight != nil {
		set++
	}
	if e.AtTime != nil {
		set++
		if _, err := strconv.ParseUint(*e.AtTime, 10, 64); err != nil {
			return fmt.Errorf("%w: expiration time %q", ErrInvalidInput, *e.AtTime)
		}
	}
	if e.Never != nil {
		set++
	}

	if set != 1 {
		return fmt.Errorf("%w: expiration must set exactly one of at_height, at_time, never", ErrInvalidInput)
	}

	return nil
}

func (e *Expiration) String() string {
	switch {
	case e.AtHeight != nil:
		return "height:" + strconv.FormatUint(*e.AtHeight, 10)
	case e.AtTime != nil:
		return "time:" + *e.AtTime
	default:
		return "never"
	}
}
