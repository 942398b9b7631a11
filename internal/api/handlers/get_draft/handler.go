package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts"
)

const (
	msgNotFound      = "черновик не найден"
	msgExpired       = "срок жизни черновика истёк"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft, err := h.service.GetByID(r.Context(), draftID, userID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrDraftExpired):
			h.logger.Warn("GET /drafts/{id} - Draft expired: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusGone, msgExpired)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("GET /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /drafts/{id} - Draft retrieved successfully: draft_id=%s, user_id=%d", draftID, userID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
