package service

import "errors"

var (
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrSyncAPIKeyNotConfigured = errors.New("sync API key not configured")
	ErrInvalidSyncAPIKey       = errors.New("invalid sync API key")
	ErrCorruptRemoteStore      = errors.New("sync store corrupted")

	ErrUnsupportedOutboxEntity = errors.New("only LIST and LIST_ITEM deletions are queued")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrValidationNoUserID  = errors.New("no user ID was given")
)
