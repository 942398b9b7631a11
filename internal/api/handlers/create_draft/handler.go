package create_draft

import (
	"errors"
	"net/http"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSalonNotFound      = "салон не найден"
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

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.Create(r.Context(), &models.CreateDraftRequest{
		UserID:  userID,
		SalonID: req.SalonID,
	})
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrSalonNotFound):
			h.logger.Warn("POST /drafts - Salon not found: salon_id=%s", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("POST /drafts - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts - Failed to create draft: user_id=%d, salon_id=%s, error=%v",
				userID, req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft created successfully: draft_id=%s, user_id=%d", draft.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
