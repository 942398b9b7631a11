package select_worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/catalog"
)

// UseCase use case для выбора мастера
// Мастер один на всех участников; повторный выбор безусловно заменяет предыдущий
// Статус мастера (on_break, offline) не блокирует выбор - он только подсказка
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

// Execute выполняет use case выбора мастера
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingDraft, error) {
	uc.logger.Info("SelectWorker: user=%d, draft=%s, worker=%s", req.UserID, req.DraftID, req.WorkerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectWorker: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем черновик для определения салона
	draft, err := uc.loadDraft(ctx, req.DraftID, req.UserID)
	if err != nil {
		return nil, err
	}

	// 3. Получаем каталог салона и проверяем мастера
	salonCatalog, err := uc.catalog.GetCatalog(ctx, draft.SalonID)
	if err != nil {
		if errors.Is(err, catalog.ErrSalonNotFound) {
			uc.logger.Warn("SelectWorker: salon id=%s not found", draft.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("SelectWorker: failed to get catalog for salon=%s: %v", draft.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	worker, ok := salonCatalog.WorkerByID(req.WorkerID)
	if !ok {
		uc.logger.Warn("SelectWorker: worker id=%s not found in salon=%s", req.WorkerID, draft.SalonID)
		return nil, ErrWorkerNotFound
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

		// 4.2. Выбирать мастера можно только после выбора услуг всеми участниками
		if !draft.CanEnterStep(domain.StepSelectWorker) {
			uc.logger.Warn("SelectWorker: draft=%s has people without services", req.DraftID)
			return ErrStepNotReachable
		}

		// 4.3. Заменяем мастера; загруженные слоты относятся к прежнему мастеру
		draft.SelectWorker(*worker)
		draft.InvalidateSlots()

		// 4.4. Выбранный мастер открывает шаг выбора даты и времени
		if err := draft.SetStep(domain.StepSelectSchedule); err != nil {
			return fmt.Errorf("%w: failed to advance step: %v", ErrInternal, err)
		}

		// 4.5. Сохраняем черновик
		result, err = uc.draftRepo.Update(txCtx, draft)
		if err != nil {
			uc.logger.Error("SelectWorker: failed to update draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SelectWorker: draft=%s selected worker=%s (%s)",
		result.ID, result.Worker.ID, result.Worker.CurrentStatus)

	return result, nil
}

// loadDraft загружает черновик с проверками владельца, срока жизни и статуса
func (uc *UseCase) loadDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SelectWorker: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SelectWorker: repository error for draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		uc.logger.Warn("SelectWorker: access denied for user=%d to draft id=%s", userID, draftID)
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
