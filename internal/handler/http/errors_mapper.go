package http

import (
	"errors"
	"net/http"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/store"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidationNoUserID:      http.StatusBadRequest,
	service.ErrUnsupportedOutboxEntity: http.StatusBadRequest,
	service.ErrSyncAPIKeyNotConfigured: http.StatusBadRequest,
	service.ErrInvalidSyncAPIKey:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrCorruptRemoteStore:      http.StatusInternalServerError,

	store.ErrDocumentConflict: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Server-side
// failures get the generic status text so no internals leak.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
