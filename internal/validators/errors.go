package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyClientID    = errors.New("client ID is required")
	ErrInvalidNamespace = errors.New("invalid sync namespace")
	ErrEnabledRequired  = errors.New("enabled flag is required")

	ErrInvalidEntityType = errors.New("only LIST and LIST_ITEM deletions are queued")
	ErrInvalidEntityKey  = errors.New("malformed entity key")
)
