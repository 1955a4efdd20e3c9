package adapter

import "errors"

var (
	ErrNoEndpoint       = errors.New("sync endpoint is not configured")
	ErrInvalidEndpoint  = errors.New("invalid sync endpoint")
	ErrTransport        = errors.New("sync transport failed")
	ErrBadRequest       = errors.New("remote rejected the request")
	ErrUnauthorized     = errors.New("remote rejected the api key")
	ErrRemoteInternal   = errors.New("remote store failed")
	ErrUnexpectedStatus = errors.New("unexpected remote status")
)
