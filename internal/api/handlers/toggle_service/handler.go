package toggle_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	draftsModels "github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
	toggleService "github.com/zied7316-tech/Xaura-sub000/internal/usecase/toggle_service"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "черновик не найден"
	msgExpired            = "срок жизни черновика истёк"
	msgSubmitted          = "черновик уже отправлен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgSalonNotFound      = "салон не найден"
	msgServiceNotFound    = "услуга не найдена в каталоге салона"
	msgPersonOutOfRange   = "некорректный индекс участника"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase ToggleServiceUseCase
	logger  Logger
}

func NewHandler(useCase ToggleServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/services/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	var req ToggleServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/services/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/services/toggle - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), &toggleService.Request{
		UserID:      userID,
		DraftID:     draftID,
		PersonIndex: req.PersonIndex,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, toggleService.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, toggleService.ErrDraftExpired):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, toggleService.ErrDraftSubmitted):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitted)

		case errors.Is(err, toggleService.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, toggleService.ErrSalonNotFound):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Salon not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, toggleService.ErrServiceNotFound):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Service not found: draft_id=%s, service_id=%s",
				draftID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, toggleService.ErrPersonIndexOutOfRange):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Person index out of range: draft_id=%s, person=%d",
				draftID, req.PersonIndex)
			handlers.RespondBadRequest(w, msgPersonOutOfRange)

		case errors.Is(err, toggleService.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/services/toggle - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts/{id}/services/toggle - Failed to toggle service: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/services/toggle - Service toggled successfully: draft_id=%s, person=%d, service_id=%s",
		draftID, req.PersonIndex, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, draftsModels.FromDomainDraft(draft))
}
