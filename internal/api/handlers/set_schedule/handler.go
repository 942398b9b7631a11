package set_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "черновик не найден"
	msgExpired            = "срок жизни черновика истёк"
	msgSubmitted          = "черновик уже отправлен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStepNotReachable   = "сначала нужно выбрать услуги и мастера"
	msgInvalidDate        = "некорректная дата записи, ожидается YYYY-MM-DD"
	msgSlotsNotFetched    = "слоты на выбранную дату ещё не загружены"
	msgSlotUnavailable    = "выбранное время недоступно"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle PATCH /api/v1/drafts/{draftId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	var req SetScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.SetSchedule(r.Context(), draftID, &models.SetScheduleRequest{
		UserID:    userID,
		Date:      req.Date,
		SlotStart: req.SlotStart,
	})
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrDraftExpired):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, drafts.ErrDraftSubmitted):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitted)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, drafts.ErrStepNotReachable):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Step not reachable: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgStepNotReachable)

		case errors.Is(err, drafts.ErrInvalidDate):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Invalid date: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, drafts.ErrSlotsNotFetched):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Slots not fetched: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSlotsNotFetched)

		case errors.Is(err, drafts.ErrSlotUnavailable):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Slot unavailable: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("PATCH /drafts/{id}/schedule - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /drafts/{id}/schedule - Failed to set schedule: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id}/schedule - Schedule updated successfully: draft_id=%s, user_id=%d", draftID, userID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
