package set_people

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	draftsModels "github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
	setPeople "github.com/zied7316-tech/Xaura-sub000/internal/usecase/set_people"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "черновик не найден"
	msgExpired            = "срок жизни черновика истёк"
	msgSubmitted          = "черновик уже отправлен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase SetPeopleUseCase
	logger  Logger
}

func NewHandler(useCase SetPeopleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}/people
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	var req SetPeopleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/people - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/people - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), &setPeople.Request{
		UserID:         userID,
		DraftID:        draftID,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		switch {
		case errors.Is(err, setPeople.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id}/people - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, setPeople.ErrDraftExpired):
			h.logger.Warn("PATCH /drafts/{id}/people - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, setPeople.ErrDraftSubmitted):
			h.logger.Warn("PATCH /drafts/{id}/people - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitted)

		case errors.Is(err, setPeople.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id}/people - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, setPeople.ErrInvalidInput):
			h.logger.Warn("PATCH /drafts/{id}/people - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /drafts/{id}/people - Failed to set people: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id}/people - People count updated: draft_id=%s, numberOfPeople=%d",
		draftID, draft.NumberOfPeople)
	handlers.RespondJSON(w, http.StatusOK, draftsModels.FromDomainDraft(draft))
}
