package grpc

import (
	"errors"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrInvalidDataProvided:     codes.InvalidArgument,
	service.ErrSyncAPIKeyNotConfigured: codes.FailedPrecondition,
	service.ErrInvalidSyncAPIKey:       codes.Unauthenticated,
	service.ErrCorruptRemoteStore:      codes.DataLoss,
	store.ErrDocumentConflict:          codes.Aborted,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// statusFromError converts a service error into a gRPC status. Internal
// failures carry no detail beyond the code.
func statusFromError(err error) error {
	code := codeFromError(err)
	switch code {
	case codes.Internal, codes.DataLoss:
		return status.Error(code, code.String())
	default:
		return status.Error(code, err.Error())
	}
}
