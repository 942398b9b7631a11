package get_catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/catalog"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]

	if strings.TrimSpace(salonID) == "" {
		h.logger.Warn("GET /salons/{id}/catalog - Empty salon ID")
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetCatalog(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/catalog - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		default:
			h.logger.Error("GET /salons/{id}/catalog - Failed to get catalog: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/catalog - Catalog retrieved successfully: salon_id=%s, services=%d, workers=%d",
		salonID, len(result.Services), len(result.Workers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
