package set_recurrence

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	draftsModels "github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
	setRecurrence "github.com/zied7316-tech/Xaura-sub000/internal/usecase/set_recurrence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "черновик не найден"
	msgExpired            = "срок жизни черновика истёк"
	msgSubmitted          = "черновик уже отправлен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidFrequency   = "некорректная периодичность, ожидается weekly, biweekly или monthly"
	msgInvalidDayOfWeek   = "некорректный день недели, ожидается значение от 0 до 6"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase SetRecurrenceUseCase
	logger  Logger
}

func NewHandler(useCase SetRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/drafts/{draftId}/recurrence
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	var req SetRecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/recurrence - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /drafts/{id}/recurrence - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), &setRecurrence.Request{
		UserID:    userID,
		DraftID:   draftID,
		Enabled:   req.Enabled,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		DayOfWeek: req.DayOfWeek,
	})
	if err != nil {
		switch {
		case errors.Is(err, setRecurrence.ErrDraftNotFound):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, setRecurrence.ErrDraftExpired):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, setRecurrence.ErrDraftSubmitted):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitted)

		case errors.Is(err, setRecurrence.ErrAccessDenied):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, setRecurrence.ErrInvalidFrequency):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Invalid frequency: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidFrequency)

		case errors.Is(err, setRecurrence.ErrInvalidDayOfWeek):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Invalid day of week: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, setRecurrence.ErrInvalidDate):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Invalid date: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, setRecurrence.ErrInvalidInput):
			h.logger.Warn("PUT /drafts/{id}/recurrence - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /drafts/{id}/recurrence - Failed to set recurrence: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /drafts/{id}/recurrence - Recurrence updated successfully: draft_id=%s, enabled=%t",
		draftID, req.Enabled)
	handlers.RespondJSON(w, http.StatusOK, draftsModels.FromDomainDraft(draft))
}
