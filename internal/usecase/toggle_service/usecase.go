package toggle_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/catalog"
)

// UseCase use case для переключения услуги участника
// Повторный вызов с той же услугой снимает выбор (инволюция)
type UseCase struct {
	draftRepo    DraftRepository
	catalog      CatalogProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	catalogProvider CatalogProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		catalog:      catalogProvider,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переключения услуги
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingDraft, error) {
	uc.logger.Info("ToggleService: user=%d, draft=%s, person=%d, service=%s",
		req.UserID, req.DraftID, req.PersonIndex, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ToggleService: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем черновик для определения салона
	draft, err := uc.loadDraft(ctx, req.DraftID, req.UserID)
	if err != nil {
		return nil, err
	}

	// 3. Получаем каталог салона и проверяем услугу
	salonCatalog, err := uc.catalog.GetCatalog(ctx, draft.SalonID)
	if err != nil {
		if errors.Is(err, catalog.ErrSalonNotFound) {
			uc.logger.Warn("ToggleService: salon id=%s not found", draft.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("ToggleService: failed to get catalog for salon=%s: %v", draft.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	service, ok := salonCatalog.ServiceByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("ToggleService: service id=%s not found in salon=%s", req.ServiceID, draft.SalonID)
		return nil, ErrServiceNotFound
	}

	// Переменная для хранения результата
	var result *domain.BookingDraft

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем черновик внутри транзакции
		draft, err := uc.loadDraft(txCtx, req.DraftID, req.UserID)
		if err != nil {
			return err
		}

		// 4.2. Переключаем услугу участника
		if err := draft.ToggleService(req.PersonIndex, *service); err != nil {
			uc.logger.Warn("ToggleService: person index=%d out of range for draft=%s",
				req.PersonIndex, req.DraftID)
			return ErrPersonIndexOutOfRange
		}

		// 4.3. Набор услуг изменил требуемую длительность - загруженные слоты устарели
		draft.InvalidateSlots()

		// 4.4. Сохраняем черновик
		result, err = uc.draftRepo.Update(txCtx, draft)
		if err != nil {
			uc.logger.Error("ToggleService: failed to update draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ToggleService: draft=%s, person=%d now has %d services, required duration=%d",
		result.ID, req.PersonIndex, len(result.People[req.PersonIndex].Services), result.RequiredDuration())

	return result, nil
}

// loadDraft загружает черновик с проверками владельца, срока жизни и статуса
func (uc *UseCase) loadDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("ToggleService: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("ToggleService: repository error for draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		uc.logger.Warn("ToggleService: access denied for user=%d to draft id=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	if draft.IsExpired(uc.timeProvider.Now()) {
		return nil, ErrDraftExpired
	}

	if draft.IsSubmitted() {
		return nil, ErrDraftSubmitted
	}

	return draft, nil
}
