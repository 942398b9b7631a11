package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/zied7316-tech/Xaura-sub000/internal/infra/cache"
	"github.com/zied7316-tech/Xaura-sub000/internal/integrations/salonservice"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/catalog/models"
)

// Service сервис каталогов салонов
// Читает каталог из кэша и при промахе ходит в SalonService
// Ошибки кэша не фатальны: кэш деградирует до прямых запросов
type Service struct {
	client SalonServiceClient
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса каталогов
func NewService(client SalonServiceClient, cache Cache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// GetCatalog получает каталог салона (услуги + работники)
func (s *Service) GetCatalog(ctx context.Context, salonID string) (*models.Catalog, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, salonID)
		if err == nil {
			s.logger.Info("GetCatalog: cache hit for salon=%s", salonID)
			return models.FromIntegrationCatalog(cached), nil
		}
		// Промах - штатная ситуация, остальное логируем
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("GetCatalog: cache read failed for salon=%s: %v", salonID, err)
		}
	}

	fetched, err := s.client.GetCatalog(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonservice.ErrSalonNotFound) {
			s.logger.Warn("GetCatalog: salon id=%s not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetCatalog: failed to fetch catalog for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, salonID, fetched); err != nil {
			s.logger.Warn("GetCatalog: cache write failed for salon=%s: %v", salonID, err)
		}
	}

	return models.FromIntegrationCatalog(fetched), nil
}
