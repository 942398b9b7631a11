package set_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "черновик не найден"
	msgExpired            = "срок жизни черновика истёк"
	msgSubmitted          = "черновик уже отправлен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStepNotReachable   = "условия перехода на шаг не выполнены"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	var req SetStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/step - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.SetStep(r.Context(), draftID, userID, req.Step)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id}/step - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrDraftExpired):
			h.logger.Warn("PATCH /drafts/{id}/step - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, drafts.ErrDraftSubmitted):
			h.logger.Warn("PATCH /drafts/{id}/step - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitted)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id}/step - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, drafts.ErrStepNotReachable):
			h.logger.Warn("PATCH /drafts/{id}/step - Step not reachable: draft_id=%s, step=%d", draftID, req.Step)
			handlers.RespondError(w, http.StatusConflict, msgStepNotReachable)

		default:
			h.logger.Error("PATCH /drafts/{id}/step - Failed to set step: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id}/step - Step changed successfully: draft_id=%s, step=%d", draftID, req.Step)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
