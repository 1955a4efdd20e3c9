// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/validators"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// runSync performs one sync round for the caller. Transport failures are
// reported in the returned status, not as an HTTP error.
func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	h.respondWithStatus(w, r, "*Handler.runSync", h.services.SyncService.Run)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	h.respondWithStatus(w, r, "*Handler.syncStatus", h.services.SyncService.Status)
}

// resetSync makes the caller's next round a full sync.
func (h *Handler) resetSync(w http.ResponseWriter, r *http.Request) {
	h.respondWithStatus(w, r, "*Handler.resetSync", func(ctx context.Context, userID int64) (models.SyncStatus, error) {
		if err := h.services.SyncService.MarkNeedsFullSync(ctx, userID); err != nil {
			return models.SyncStatus{}, err
		}
		return h.services.SyncService.Status(ctx, userID)
	})
}

func (h *Handler) enableSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SyncEnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.enableSync").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req, validators.FieldEnabled); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.enableSync").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respondWithStatus(w, r, "*Handler.enableSync", func(ctx context.Context, userID int64) (models.SyncStatus, error) {
		return h.services.SyncService.Enable(ctx, userID, *req.Enabled)
	})
}

func (h *Handler) respondWithStatus(
	w http.ResponseWriter,
	r *http.Request,
	funcName string,
	call func(ctx context.Context, userID int64) (models.SyncStatus, error),
) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", funcName).Msg("no user ID was given")
		utils.WriteError(w, service.ErrValidationNoUserID.Error(), http.StatusBadRequest)
		return
	}

	status, err := call(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Send()
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
