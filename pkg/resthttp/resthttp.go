package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"
)

// DefaultTimeout used when the configured timeout is not positive
const DefaultTimeout = 10 * time.Second

// Error non 2xx response of a cosmos rest endpoint
type Error struct {
	Status  int
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: code %d: %s", e.Status, e.Code, e.Message)
}

// New resty client for a rest endpoint
func New(endpoint string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return resty.New().
		SetBaseURL(endpoint).
		SetHeader("Content-Type", "application/json").
		SetHeader("Charset", "utf-8").
		SetTimeout(timeout)
}

// Request new resty request bound to ctx
func Request(ctx context.Context, client *resty.Client) *resty.Request {
	return client.R().SetContext(ctx)
}

// ParseResponse decode a successful response body into obj
func ParseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		// grpc-gateway sends code as a number, older lcd nodes as a string
		var body struct {
			Code    interface{} `json:"code"`
			Message string      `json:"message"`
		}

		e := &Error{Status: r.StatusCode()}
		if err := json.Unmarshal(r.Body(), &body); err == nil {
			e.Code = cast.ToInt(body.Code)
			e.Message = body.Message
		}

		if e.Message == "" {
			e.Message = string(r.Body())
		}
		return e
	}

	if obj != nil {
		return json.Unmarshal(r.Body(), obj)
	}

	return nil
}
