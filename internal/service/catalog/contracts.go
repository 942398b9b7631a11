package catalog

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/integrations/salonservice"
)

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetCatalog(ctx context.Context, salonID string) (*salonservice.Catalog, error)
}

// Cache интерфейс кэша каталогов
type Cache interface {
	Get(ctx context.Context, salonID string) (*salonservice.Catalog, error)
	Set(ctx context.Context, salonID string, catalog *salonservice.Catalog) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
