package get_catalog

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/service/catalog/models"
)

type CatalogService interface {
	GetCatalog(ctx context.Context, salonID string) (*models.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
