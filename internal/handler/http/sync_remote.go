package http

import (
	"encoding/json"
	"net/http"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/adapter"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// namespaceHeader selects the snapshot document; empty means the configured
// default.
const namespaceHeader = "X-Sync-Namespace"

func (h *Handler) remoteMerge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	apiKey := r.Header.Get(adapter.APIKeyHeader)
	if err := h.services.RemoteMergeService.Authenticate(apiKey); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.remoteMerge").Msg("sync request rejected")
		writeServiceError(w, err)
		return
	}

	var req models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.remoteMerge").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.RemoteMergeService.Merge(ctx, apiKey, r.Header.Get(namespaceHeader), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
