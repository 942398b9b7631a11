package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	availabilityClient "github.com/zied7316-tech/Xaura-sub000/internal/integrations/availability"
	"github.com/zied7316-tech/Xaura-sub000/pkg/types"
)

// UseCase use case для запроса доступных слотов мастера на дату
//
// Запрос выполняется в три фазы:
//  1. транзакция: фиксация даты и инкремент поколения загрузки
//  2. вне транзакции: поход в сервис доступности
//  3. транзакция: сохранение сетки, если поколение не изменилось
//
// Ответы устаревших поколений отбрасываются: при параллельных запросах
// (смена даты, повторное открытие шага) выигрывает более поздний запрос
//
// При ошибке сервиса доступности сетка сохраняется целиком недоступной
// (показывать непроверенные слоты опаснее, чем не показать никаких),
// а сбой возвращается вызывающему через флаг Degraded
type UseCase struct {
	draftRepo          DraftRepository
	availabilityClient AvailabilityClient
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	availabilityClient AvailabilityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:          draftRepo,
		availabilityClient: availabilityClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case запроса доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, draft=%s, date=%s",
		req.UserID, req.DraftID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// Параметры запроса доступности, снятые с черновика в первой транзакции
	var (
		generation     int64
		workerID       string
		serviceID      string
		totalDuration  int
		numberOfPeople int
	)

	// 3. Фиксируем дату и поколение загрузки
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		draft, err := uc.loadDraft(txCtx, req.DraftID, req.UserID)
		if err != nil {
			return err
		}

		// 3.1. Слоты имеют смысл только при выбранных услугах и мастере
		if !draft.CanEnterStep(domain.StepSelectSchedule) {
			uc.logger.Warn("GetAvailableSlots: draft=%s is not ready for schedule step", req.DraftID)
			return ErrStepNotReachable
		}

		// 3.2. Смена даты сбрасывает прежнюю сетку и выбранное время
		if draft.Date == nil || !sameDay(*draft.Date, req.Date) {
			date := req.Date
			draft.Date = &date
			draft.InvalidateSlots()
		}

		// 3.3. Инкремент поколения: ответы предыдущих запросов устаревают
		draft.SlotFetchGeneration++

		updated, err := uc.draftRepo.Update(txCtx, draft)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to update draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}

		generation = updated.SlotFetchGeneration
		workerID = updated.Worker.ID
		totalDuration = updated.RequiredDuration()
		numberOfPeople = updated.NumberOfPeople
		if primary := updated.PrimaryService(); primary != nil {
			serviceID = primary.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Запрашиваем слоты у сервиса доступности (вне транзакции)
	var degraded bool
	fetched, err := uc.availabilityClient.GetWorkerSlots(ctx, &availabilityClient.SlotsRequest{
		WorkerID:       workerID,
		Date:           req.Date.Format(domain.DateFormat),
		ServiceID:      serviceID,
		TotalDuration:  totalDuration,
		NumberOfPeople: numberOfPeople,
	})
	if err != nil {
		if errors.Is(err, availabilityClient.ErrWorkerNotFound) {
			uc.logger.Warn("GetAvailableSlots: worker id=%s not found in availability service", workerID)
			return nil, ErrWorkerNotFound
		}
		// Нет данных - нет доступных слотов: сетка целиком недоступна,
		// а сбой доводится до вызывающего
		uc.logger.Error("GetAvailableSlots: availability fetch failed for worker=%s: %v", workerID, err)
		fetched = nil
		degraded = true
	}

	// 5. Раскладываем полученные слоты по фиксированной сетке отображения
	grid := domain.MapToGrid(toDomainSlots(fetched))

	// Переменные для хранения результата
	var (
		resultSlots []domain.TimeSlot
		stale       bool
	)

	// 6. Сохраняем сетку, если за время запроса не стартовала новая загрузка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		draft, err := uc.loadDraft(txCtx, req.DraftID, req.UserID)
		if err != nil {
			return err
		}

		// 6.1. Поколение изменилось - ответ устарел, отбрасываем его
		if draft.SlotFetchGeneration != generation {
			uc.logger.Info("GetAvailableSlots: discarding stale fetch for draft=%s (generation %d != %d)",
				req.DraftID, generation, draft.SlotFetchGeneration)
			resultSlots = draft.Slots
			stale = true
			return nil
		}

		draft.Slots = grid

		// 6.2. Выбранное ранее время могло стать недоступным
		if draft.SlotStart != nil {
			if slot, ok := domain.SlotByStart(grid, *draft.SlotStart); !ok || !slot.Available {
				uc.logger.Warn("GetAvailableSlots: selected slot %s is no longer available for draft=%s",
					draft.SlotStart.String(), req.DraftID)
				draft.SlotStart = nil
			}
		}

		updated, err := uc.draftRepo.Update(txCtx, draft)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to save slots for draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to save slots: %v", ErrInternal, err)
		}

		resultSlots = updated.Slots
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: draft=%s, date=%s, %d/%d slots available (stale=%t)",
		req.DraftID, req.Date.Format(domain.DateFormat), countAvailable(resultSlots), len(resultSlots), stale)

	return &Response{
		DraftID:              req.DraftID,
		Date:                 req.Date,
		WorkerID:             workerID,
		TotalDurationMinutes: totalDuration,
		NumberOfPeople:       numberOfPeople,
		Slots:                resultSlots,
		Stale:                stale,
		Degraded:             degraded,
	}, nil
}

// loadDraft загружает черновик с проверками владельца, срока жизни и статуса
func (uc *UseCase) loadDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("GetAvailableSlots: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("GetAvailableSlots: repository error for draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		uc.logger.Warn("GetAvailableSlots: access denied for user=%d to draft id=%s", userID, draftID)
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

// toDomainSlots конвертирует слоты сервиса доступности в domain модель
// Слоты с невалидным временем начала пропускаются
func toDomainSlots(fetched []availabilityClient.Slot) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(fetched))
	for _, s := range fetched {
		start, err := types.NewTimeStringFromString(s.Start)
		if err != nil {
			continue
		}
		slots = append(slots, domain.TimeSlot{Start: start, Available: s.Available})
	}
	return slots
}

func countAvailable(slots []domain.TimeSlot) int {
	count := 0
	for _, s := range slots {
		if s.Available {
			count++
		}
	}
	return count
}

func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
