package select_worker

import (
	"context"
	"time"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	catalogModels "github.com/zied7316-tech/Xaura-sub000/internal/service/catalog/models"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
}

// CatalogProvider интерфейс сервиса каталогов салонов
type CatalogProvider interface {
	GetCatalog(ctx context.Context, salonID string) (*catalogModels.Catalog, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
