package submit_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	submitBooking "github.com/zied7316-tech/Xaura-sub000/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "черновик не найден"
	msgExpired             = "срок жизни черновика истёк"
	msgAlreadySubmitted    = "черновик уже отправлен"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"
	msgNotReady            = "сначала нужно выбрать услуги и мастера"
	msgScheduleNotSelected = "сначала нужно выбрать дату и время"
	msgSlotUnavailable     = "выбранное время недоступно"
	msgInvalidRecurrence   = "некорректное правило повторения"
	msgSlotTaken           = "выбранное время уже занято"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	// Тело запроса опционально: заметки можно не передавать
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /drafts/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		UserID:  userID,
		DraftID: draftID,
		Notes:   req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitBooking.ErrDraftExpired):
			h.logger.Warn("POST /drafts/{id}/submit - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, submitBooking.ErrAlreadySubmitted):
			h.logger.Warn("POST /drafts/{id}/submit - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitBooking.ErrNotReadyToSubmit):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not ready: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgNotReady)

		case errors.Is(err, submitBooking.ErrScheduleNotSelected):
			h.logger.Warn("POST /drafts/{id}/submit - Schedule not selected: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleNotSelected)

		case errors.Is(err, submitBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /drafts/{id}/submit - Slot unavailable: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, submitBooking.ErrInvalidRecurrence):
			h.logger.Warn("POST /drafts/{id}/submit - Invalid recurrence: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, submitBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /drafts/{id}/submit - Slot taken downstream: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/submit - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Частичный успех групповой записи - тоже успех с точки зрения HTTP:
	// клиент разбирает поле people
	status := http.StatusCreated
	if result.Created < result.Requested {
		status = http.StatusMultiStatus
	}

	h.logger.Info("POST /drafts/{id}/submit - Draft submitted: draft_id=%s, kind=%s, created=%d/%d",
		draftID, result.Kind, result.Created, result.Requested)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
