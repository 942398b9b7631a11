package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	appointmentsClient "github.com/zied7316-tech/Xaura-sub000/internal/integrations/appointments"
	"github.com/zied7316-tech/Xaura-sub000/pkg/ptr"
)

// UseCase use case для отправки черновика - финальный шаг мастера
//
// Групповые записи создаются последовательно по участникам. Первый запрос
// проходит полную проверку доступности на стороне сервиса записей и занимает
// слот; остальные идут с skipAvailabilityCheck, иначе они были бы отклонены
// как конфликтующие с первым. При сбое на любом участнике создание
// останавливается; уже созданные записи не откатываются, а результат по
// каждому участнику фиксируется в истории отправок
//
// Черновик помечается отправленным, если создана хотя бы одна запись
type UseCase struct {
	draftRepo          DraftRepository
	submissionRepo     SubmissionRepository
	appointmentsClient AppointmentsClient
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	submissionRepo SubmissionRepository,
	appointmentsClient AppointmentsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:          draftRepo,
		submissionRepo:     submissionRepo,
		appointmentsClient: appointmentsClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case отправки черновика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%d, draft=%s", req.UserID, req.DraftID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем черновик и проверяем готовность к отправке
	draft, err := uc.loadDraft(ctx, req.DraftID, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := validateReadiness(draft, now); err != nil {
		uc.logger.Warn("SubmitBooking: draft=%s is not ready: %v", req.DraftID, err)
		return nil, err
	}

	// 4. Определяем форму отправки
	kind := submissionKind(draft)
	uc.logger.Info("SubmitBooking: draft=%s, kind=%s, people=%d", req.DraftID, kind, draft.NumberOfPeople)

	// 5. Создаем записи во внешнем сервисе (вне транзакции)
	submission := &domain.Submission{
		ID:      uuid.NewString(),
		DraftID: draft.ID,
		UserID:  draft.UserID,
		Kind:    kind,
	}

	var firstErr error
	switch kind {
	case domain.SubmissionRecurring, domain.SubmissionMultiRecurring:
		firstErr = uc.submitRecurring(ctx, draft, submission)
	default:
		firstErr = uc.submitAppointments(ctx, draft, req.Notes, submission)
	}

	// 6. Фиксируем результат: статус черновика и запись в истории отправок
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.draftRepo.GetByID(txCtx, req.DraftID)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to reload draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to reload draft: %v", ErrInternal, err)
		}

		// Черновик остаётся черновиком, только если не создано ничего
		if submission.Created > 0 {
			current.Status = domain.DraftStatusSubmitted
			if _, err := uc.draftRepo.Update(txCtx, current); err != nil {
				uc.logger.Error("SubmitBooking: failed to mark draft id=%s submitted: %v", req.DraftID, err)
				return fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
			}
		}

		stored, err := uc.submissionRepo.Create(txCtx, submission)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to record submission for draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to record submission: %v", ErrInternal, err)
		}
		submission.CreatedAt = stored.CreatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 7. Ни одной записи не создано - отправка не состоялась
	if submission.Created == 0 {
		uc.logger.Warn("SubmitBooking: draft=%s, nothing created: %v", req.DraftID, firstErr)
		return nil, uc.mapSubmitError(firstErr)
	}

	if submission.IsPartialFailure() {
		uc.logger.Warn("SubmitBooking: draft=%s partially submitted: %d of %d created",
			req.DraftID, submission.Created, submission.Requested)
	} else {
		uc.logger.Info("SubmitBooking: draft=%s submitted, %d of %d created",
			req.DraftID, submission.Created, submission.Requested)
	}

	return toResponse(submission), nil
}

// submitAppointments создает разовые записи последовательно по участникам
func (uc *UseCase) submitAppointments(
	ctx context.Context,
	draft *domain.BookingDraft,
	notes *string,
	submission *domain.Submission,
) error {
	startAt, err := draft.SlotStart.OnDate(*draft.Date)
	if err != nil {
		return fmt.Errorf("%w: invalid slot start: %v", ErrInternal, err)
	}
	dateTime := startAt.Format(time.RFC3339)

	submission.Requested = draft.NumberOfPeople
	submission.People = make([]domain.PersonOutcome, 0, draft.NumberOfPeople)

	var firstErr error
	for i := range draft.People {
		person := &draft.People[i]

		appointment, err := uc.appointmentsClient.CreateAppointment(ctx, &appointmentsClient.CreateAppointmentRequest{
			WorkerID:  draft.Worker.ID,
			ServiceID: person.Services[0].ID,
			Services:  toServiceItems(person.Services),
			DateTime:  dateTime,
			Notes:     notes,
			// Первый участник занимает слот, остальные подселяются к нему
			SkipAvailabilityCheck: i > 0,
		})
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to create appointment for person=%d: %v", i, err)
			submission.People = append(submission.People, domain.PersonOutcome{
				PersonIndex: person.PersonIndex,
				Error:       ptr.Ptr(err.Error()),
			})
			firstErr = err
			// Останавливаемся на первом сбое: слот уже мог быть занят целиком
			break
		}

		submission.Created++
		submission.People = append(submission.People, domain.PersonOutcome{
			PersonIndex:   person.PersonIndex,
			AppointmentID: ptr.Ptr(appointment.ID),
			Success:       true,
		})
	}

	return firstErr
}

// submitRecurring создает одну повторяющуюся серию на всех участников
func (uc *UseCase) submitRecurring(
	ctx context.Context,
	draft *domain.BookingDraft,
	submission *domain.Submission,
) error {
	rule := draft.Recurrence
	submission.Requested = 1

	request := &appointmentsClient.CreateRecurringRequest{
		SalonID:        draft.SalonID,
		WorkerID:       draft.Worker.ID,
		ServiceID:      draft.PrimaryService().ID,
		Services:       toServiceItems(draft.People[0].Services),
		Frequency:      string(rule.Frequency),
		StartDate:      rule.StartDate.Format(domain.DateFormat),
		DayOfWeek:      rule.DayOfWeek,
		TimeSlot:       draft.SlotStart.String(),
		NumberOfPeople: draft.NumberOfPeople,
	}
	if rule.EndDate != nil {
		request.EndDate = ptr.Ptr(rule.EndDate.Format(domain.DateFormat))
	}

	// Состав группы передаётся по участникам только для групповых серий
	if draft.NumberOfPeople > 1 {
		people := make([]appointmentsClient.PersonServices, len(draft.People))
		for i := range draft.People {
			people[i] = appointmentsClient.PersonServices{
				PersonIndex: draft.People[i].PersonIndex,
				Services:    toServiceItems(draft.People[i].Services),
			}
		}
		request.PeopleServices = people
	}

	series, err := uc.appointmentsClient.CreateRecurringSeries(ctx, request)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create recurring series for draft=%s: %v", draft.ID, err)
		return err
	}

	submission.Created = 1
	submission.SeriesID = ptr.Ptr(series.ID)
	return nil
}

// loadDraft загружает черновик с проверками владельца, срока жизни и статуса
func (uc *UseCase) loadDraft(ctx context.Context, draftID string, userID int64) (*domain.BookingDraft, error) {
	draft, err := uc.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SubmitBooking: draft id=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SubmitBooking: repository error for draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		uc.logger.Warn("SubmitBooking: access denied for user=%d to draft id=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	if draft.IsExpired(uc.timeProvider.Now()) {
		return nil, ErrDraftExpired
	}

	if draft.IsSubmitted() {
		return nil, ErrAlreadySubmitted
	}

	return draft, nil
}

// mapSubmitError переводит ошибку сервиса записей в ошибку usecase
func (uc *UseCase) mapSubmitError(err error) error {
	switch {
	case err == nil:
		return ErrNothingCreated
	case errors.Is(err, appointmentsClient.ErrSlotNotAvailable):
		return ErrSlotNotAvailable
	case errors.Is(err, appointmentsClient.ErrValidation):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// submissionKind определяет форму отправки по состоянию черновика
func submissionKind(draft *domain.BookingDraft) domain.SubmissionKind {
	recurring := draft.Recurrence != nil && draft.Recurrence.Enabled
	multi := draft.NumberOfPeople > 1

	switch {
	case recurring && multi:
		return domain.SubmissionMultiRecurring
	case recurring:
		return domain.SubmissionRecurring
	case multi:
		return domain.SubmissionMulti
	default:
		return domain.SubmissionSingle
	}
}

// toServiceItems конвертирует услуги участника в элементы запроса сервиса записей
func toServiceItems(services []domain.Service) []appointmentsClient.ServiceItem {
	items := make([]appointmentsClient.ServiceItem, len(services))
	for i, s := range services {
		items[i] = appointmentsClient.ServiceItem{
			ServiceID: s.ID,
			Name:      s.Name,
			Price:     s.Price,
			Duration:  s.DurationMinutes,
		}
	}
	return items
}

// toResponse конвертирует результат отправки в response модель
func toResponse(s *domain.Submission) *Response {
	people := make([]PersonOutcomeView, len(s.People))
	for i, o := range s.People {
		people[i] = PersonOutcomeView(o)
	}
	return &Response{
		SubmissionID: s.ID,
		DraftID:      s.DraftID,
		Kind:         string(s.Kind),
		Requested:    s.Requested,
		Created:      s.Created,
		SeriesID:     s.SeriesID,
		People:       people,
		SubmittedAt:  s.CreatedAt,
	}
}
