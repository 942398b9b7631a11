package set_people

import (
	"context"
	"errors"
	"fmt"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
)

// UseCase use case для изменения количества участников групповой записи
// Список выборов услуг ресинхронизируется: при увеличении добавляются
// участники без услуг, при уменьшении лишние отбрасываются с хвоста
type UseCase struct {
	draftRepo    DraftRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения количества участников
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingDraft, error) {
	uc.logger.Info("SetPeople: user=%d, draft=%s, numberOfPeople=%d",
		req.UserID, req.DraftID, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetPeople: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.BookingDraft

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем черновик
		draft, err := uc.loadDraft(txCtx, req.DraftID, req.UserID)
		if err != nil {
			return err
		}

		// 2.2. Изменяем количество участников с ресинхронизацией выборов
		draft.SetNumberOfPeople(req.NumberOfPeople)
		if draft.NumberOfPeople != req.NumberOfPeople {
			uc.logger.Warn("SetPeople: requested %d clamped to %d for draft=%s",
				req.NumberOfPeople, draft.NumberOfPeople, req.DraftID)
		}

		// 2.3. Состав группы влияет на требуемую длительность - слоты устарели
		draft.InvalidateSlots()

		// 2.4. Сохраняем черновик
		result, err = uc.draftRepo.Update(txCtx, draft)
		if err != nil {
			uc.logger.Error("SetPeople: failed to update draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetPeople: draft=%s now has %d people", result.ID, result.NumberOfPeople)
	return result, nil
}

// loadDraft загружает черновик с проверками владельца, срока жизни и статуса
func (uc *UseCase) loadDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SetPeople: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SetPeople: repository error for draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		uc.logger.Warn("SetPeople: access denied for user=%d to draft id=%s", userID, draftID)
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
