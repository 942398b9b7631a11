package drafts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/catalog"
	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
	"github.com/zied7316-tech/Xaura-sub000/pkg/types"
)

// Service сервис черновиков записи: создание, чтение, удаление,
// навигация по шагам и выбор даты/времени
// Сложные операции мастера (услуги, мастер, слоты, отправка) живут в usecases
type Service struct {
	draftRepo    DraftRepository
	catalog      CatalogProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	draftTTL     time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	draftRepo DraftRepository,
	catalogProvider CatalogProvider,
	txManager TransactionManager,
	draftTTL time.Duration,
	logger Logger,
) *Service {
	if draftTTL <= 0 {
		draftTTL = domain.DefaultDraftTTLHours * time.Hour
	}
	return &Service{
		draftRepo:    draftRepo,
		catalog:      catalogProvider,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		draftTTL:     draftTTL,
		logger:       logger,
	}
}

// Create создает черновик записи для салона
// Салон проверяется через каталог, чтобы не плодить черновики несуществующих салонов
func (s *Service) Create(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("CreateDraft: user=%d, salon=%s", req.UserID, req.SalonID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SalonID) == "" {
		return nil, fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if _, err := s.catalog.GetCatalog(ctx, req.SalonID); err != nil {
		if errors.Is(err, catalog.ErrSalonNotFound) {
			s.logger.Warn("CreateDraft: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("CreateDraft: failed to get catalog for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	draft := domain.NewBookingDraft(uuid.NewString(), req.UserID, req.SalonID, s.timeProvider.Now(), s.draftTTL)

	created, err := s.draftRepo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("CreateDraft: failed to create draft: %v", err)
		return nil, fmt.Errorf("%w: failed to create draft: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDraft: created draft id=%s for user=%d", created.ID, req.UserID)
	return models.FromDomainDraft(created), nil
}

// GetByID получает черновик по ID с проверкой владельца
func (s *Service) GetByID(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error) {
	draft, err := s.loadOwnedDraft(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(draft), nil
}

// Delete удаляет черновик (аналог закрытия мастера без отправки)
func (s *Service) Delete(ctx context.Context, draftID string, userID int64) error {
	if _, err := s.loadOwnedDraft(ctx, draftID, userID); err != nil {
		// Просроченный черновик удалить можно
		if !errors.Is(err, ErrDraftExpired) {
			return err
		}
	}

	if err := s.draftRepo.Delete(ctx, draftID); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		s.logger.Error("DeleteDraft: failed to delete draft id=%s: %v", draftID, err)
		return fmt.Errorf("%w: failed to delete draft: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDraft: deleted draft id=%s", draftID)
	return nil
}

// SetStep переводит мастер на указанный шаг
// Назад можно всегда, вперед - только при выполненных условиях шага
func (s *Service) SetStep(ctx context.Context, draftID string, userID int64, step int) (*models.DraftResponse, error) {
	s.logger.Info("SetStep: draft=%s, user=%d, step=%d", draftID, userID, step)

	var result *domain.BookingDraft

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		draft, err := s.loadMutableDraft(txCtx, draftID, userID)
		if err != nil {
			return err
		}

		if err := draft.SetStep(domain.Step(step)); err != nil {
			return ErrStepNotReachable
		}

		result, err = s.draftRepo.Update(txCtx, draft)
		if err != nil {
			s.logger.Error("SetStep: failed to update draft id=%s: %v", draftID, err)
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(result), nil
}

// SetSchedule выбирает дату и/или время записи
// Изменение даты сбрасывает загруженные слоты: их нужно перезапросить
// Время можно выбрать только из доступных слотов текущей загрузки
func (s *Service) SetSchedule(ctx context.Context, draftID string, req *models.SetScheduleRequest) (*models.DraftResponse, error) {
	s.logger.Info("SetSchedule: draft=%s, user=%d", draftID, req.UserID)

	if req.Date == nil && req.SlotStart == nil {
		return nil, fmt.Errorf("%w: date or slotStart is required", ErrInvalidInput)
	}

	var result *domain.BookingDraft

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		draft, err := s.loadMutableDraft(txCtx, draftID, req.UserID)
		if err != nil {
			return err
		}

		if !draft.CanEnterStep(domain.StepSelectSchedule) {
			return ErrStepNotReachable
		}

		if req.Date != nil {
			date, err := time.Parse(domain.DateFormat, *req.Date)
			if err != nil {
				return fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidDate)
			}
			if isDateInPast(date, s.timeProvider.Now()) {
				return ErrInvalidDate
			}
			draft.Date = &date
			draft.InvalidateSlots()
		}

		if req.SlotStart != nil {
			start, err := types.NewTimeStringFromString(*req.SlotStart)
			if err != nil {
				return fmt.Errorf("%w: invalid slotStart format: %v", ErrInvalidInput, err)
			}
			if len(draft.Slots) == 0 {
				return ErrSlotsNotFetched
			}
			slot, ok := domain.SlotByStart(draft.Slots, start)
			if !ok || !slot.Available {
				return ErrSlotUnavailable
			}
			draft.SlotStart = &start
		}

		result, err = s.draftRepo.Update(txCtx, draft)
		if err != nil {
			s.logger.Error("SetSchedule: failed to update draft id=%s: %v", draftID, err)
			return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(result), nil
}

// loadOwnedDraft загружает черновик с проверками владельца и срока жизни
func (s *Service) loadOwnedDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("loadOwnedDraft: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("loadOwnedDraft: repository error for draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		s.logger.Warn("loadOwnedDraft: access denied for user=%d to draft id=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	if draft.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("loadOwnedDraft: draft id=%s has expired", draftID)
		return nil, ErrDraftExpired
	}

	return draft, nil
}

// loadMutableDraft дополнительно запрещает изменение отправленных черновиков
func (s *Service) loadMutableDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := s.loadOwnedDraft(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	if draft.IsSubmitted() {
		return nil, ErrDraftSubmitted
	}
	return draft, nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
