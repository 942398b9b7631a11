package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	getAvailableSlots "github.com/zied7316-tech/Xaura-sub000/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast       = "дата не может быть в прошлом"
	msgNotFound         = "черновик не найден"
	msgExpired          = "срок жизни черновика истёк"
	msgSubmitted        = "черновик уже отправлен"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
	msgStepNotReachable = "сначала нужно выбрать услуги и мастера"
	msgWorkerNotFound   = "мастер не найден"
	msgAvailabilityDown = "сервис доступности временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /drafts/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID:  userID,
		DraftID: draftID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id}/slots - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getAvailableSlots.ErrDraftExpired):
			h.logger.Warn("GET /drafts/{id}/slots - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, getAvailableSlots.ErrDraftSubmitted):
			h.logger.Warn("GET /drafts/{id}/slots - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitted)

		case errors.Is(err, getAvailableSlots.ErrAccessDenied):
			h.logger.Warn("GET /drafts/{id}/slots - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getAvailableSlots.ErrStepNotReachable):
			h.logger.Warn("GET /drafts/{id}/slots - Step not reachable: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgStepNotReachable)

		case errors.Is(err, getAvailableSlots.ErrWorkerNotFound):
			h.logger.Warn("GET /drafts/{id}/slots - Worker not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /drafts/{id}/slots - Date in past: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /drafts/{id}/slots - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /drafts/{id}/slots - Failed to get slots: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Сбой сервиса доступности: пустая сетка уже сохранена в черновике,
	// пользователю возвращается ошибка вместо "полностью занятого" дня
	if result.Degraded {
		h.logger.Error("GET /drafts/{id}/slots - Availability service degraded: draft_id=%s, date=%s",
			draftID, date.Format(domain.DateFormat))
		handlers.RespondError(w, http.StatusBadGateway, msgAvailabilityDown)
		return
	}

	h.logger.Info("GET /drafts/{id}/slots - Slots retrieved successfully: draft_id=%s, date=%s",
		draftID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
