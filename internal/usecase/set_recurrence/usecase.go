package set_recurrence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
)

// UseCase use case для установки правила повторяющейся записи
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

// Execute выполняет use case установки правила повторения
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.BookingDraft, error) {
	uc.logger.Info("SetRecurrence: user=%d, draft=%s, enabled=%t", req.UserID, req.DraftID, req.Enabled)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetRecurrence: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем даты до транзакции
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		uc.logger.Warn("SetRecurrence: invalid startDate %q", *req.StartDate)
		return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidDate)
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		uc.logger.Warn("SetRecurrence: invalid endDate %q", *req.EndDate)
		return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidDate)
	}

	// Переменная для хранения результата
	var result *domain.BookingDraft

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем черновик
		draft, err := uc.loadDraft(txCtx, req.DraftID, req.UserID)
		if err != nil {
			return err
		}

		// 3.2. Выключенное повторение удаляет правило целиком
		if !req.Enabled {
			draft.Recurrence = nil
		} else {
			draft.Recurrence = buildRule(req, draft, startDate, endDate)
		}

		// 3.3. Сохраняем черновик
		result, err = uc.draftRepo.Update(txCtx, draft)
		if err != nil {
			uc.logger.Error("SetRecurrence: failed to update draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Recurrence != nil {
		uc.logger.Info("SetRecurrence: draft=%s repeats %s starting %s (dayOfWeek=%d)",
			result.ID, result.Recurrence.Frequency,
			result.Recurrence.StartDate.Format(domain.DateFormat), result.Recurrence.DayOfWeek)
	} else {
		uc.logger.Info("SetRecurrence: draft=%s recurrence disabled", result.ID)
	}

	return result, nil
}

// buildRule собирает правило повторения из запроса и состояния черновика
func buildRule(req *Request, draft *domain.BookingDraft, startDate, endDate *time.Time) *domain.RecurrenceRule {
	rule := &domain.RecurrenceRule{
		Enabled:   true,
		Frequency: domain.FrequencyWeekly,
		EndDate:   endDate,
	}

	if req.Frequency != nil {
		rule.Frequency = domain.Frequency(*req.Frequency)
	}

	// Дата начала серии: явная из запроса, иначе выбранная дата записи
	switch {
	case startDate != nil:
		rule.SetStartDate(*startDate)
	case draft.Date != nil:
		rule.SetStartDate(*draft.Date)
	}

	if req.DayOfWeek != nil {
		rule.OverrideDayOfWeek(*req.DayOfWeek)
	}

	return rule
}

// loadDraft загружает черновик с проверками владельца, срока жизни и статуса
func (uc *UseCase) loadDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SetRecurrence: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SetRecurrence: repository error for draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		uc.logger.Warn("SetRecurrence: access denied for user=%d to draft id=%s", userID, draftID)
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

// parseDate разбирает опциональную дату формата YYYY-MM-DD
func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DateFormat, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
