package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/service"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// enqueueDelete queues a local list or membership deletion for the next
// sync round. It answers 202 with the normalized request.
func (h *Handler) enqueueDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.enqueueDelete").Msg("no user ID was given")
		utils.WriteError(w, service.ErrValidationNoUserID.Error(), http.StatusBadRequest)
		return
	}

	var req models.OutboxDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.enqueueDelete").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.enqueueDelete").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.EntityType = models.EntityType(strings.ToUpper(string(req.EntityType)))

	if err := h.services.OutboxService.EnqueueDelete(ctx, userID, req.EntityType, req.EntityKey); err != nil {
		log.Err(err).Str("func", "*Handler.enqueueDelete").Int64("user_id", userID).Send()
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, req, http.StatusAccepted)
}
