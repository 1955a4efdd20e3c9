package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// HTTPClient embeds *resty.Client so callers use its request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose attempts time out after timeout and
// which retries up to retries times on transport errors only. Any HTTP
// answer, 5xx included, is final: the server may already have committed the
// request. A zero timeout disables the deadline; a negative retries is
// treated as 0.
func NewHTTPClient(timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(max(retries, 0)).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(_ *resty.Response, err error) bool {
			return err != nil
		})

	return &HTTPClient{Client: client}
}
