package select_worker

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	draftsModels "github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
	selectWorker "github.com/zied7316-tech/Xaura-sub000/internal/usecase/select_worker"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "черновик не найден"
	msgExpired            = "срок жизни черновика истёк"
	msgSubmitted          = "черновик уже отправлен"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgSalonNotFound      = "салон не найден"
	msgWorkerNotFound     = "мастер не найден в каталоге салона"
	msgStepNotReachable   = "сначала нужно выбрать услуги для всех участников"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase SelectWorkerUseCase
	logger  Logger
}

func NewHandler(useCase SelectWorkerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/worker
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	var req SelectWorkerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/worker - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/worker - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), &selectWorker.Request{
		UserID:   userID,
		DraftID:  draftID,
		WorkerID: req.WorkerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, selectWorker.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/worker - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, selectWorker.ErrDraftExpired):
			h.logger.Warn("POST /drafts/{id}/worker - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, selectWorker.ErrDraftSubmitted):
			h.logger.Warn("POST /drafts/{id}/worker - Draft already submitted: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitted)

		case errors.Is(err, selectWorker.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/worker - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, selectWorker.ErrSalonNotFound):
			h.logger.Warn("POST /drafts/{id}/worker - Salon not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, selectWorker.ErrWorkerNotFound):
			h.logger.Warn("POST /drafts/{id}/worker - Worker not found: draft_id=%s, worker_id=%s",
				draftID, req.WorkerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, selectWorker.ErrStepNotReachable):
			h.logger.Warn("POST /drafts/{id}/worker - Step not reachable: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgStepNotReachable)

		case errors.Is(err, selectWorker.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/worker - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts/{id}/worker - Failed to select worker: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/worker - Worker selected successfully: draft_id=%s, worker_id=%s",
		draftID, req.WorkerID)
	handlers.RespondJSON(w, http.StatusOK, draftsModels.FromDomainDraft(draft))
}
