package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	availabilityClient "github.com/zied7316-tech/Xaura-sub000/internal/integrations/availability"
	"github.com/zied7316-tech/Xaura-sub000/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	drafts map[string]*domain.BookingDraft
}

func newStubRepo() *stubRepo {
	return &stubRepo{drafts: make(map[string]*domain.BookingDraft)}
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	d, ok := r.drafts[id]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *stubRepo) Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	copied := *d
	r.drafts[d.ID] = &copied
	return &copied, nil
}

type stubAvailability struct {
	slots []availabilityClient.Slot
	err   error

	lastRequest *availabilityClient.SlotsRequest
	onFetch     func()
}

func (s *stubAvailability) GetWorkerSlots(ctx context.Context, req *availabilityClient.SlotsRequest) ([]availabilityClient.Slot, error) {
	s.lastRequest = req
	if s.onFetch != nil {
		s.onFetch()
	}
	return s.slots, s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	testNow  = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *stubRepo, client *stubAvailability) *UseCase {
	uc := NewUseCase(repo, client, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func seedReadyDraft(repo *stubRepo, mutate func(*domain.BookingDraft)) *domain.BookingDraft {
	draft := domain.NewBookingDraft("draft-1", 42, "salon-1", testNow, 24*time.Hour)
	draft.SetNumberOfPeople(2)
	_ = draft.ToggleService(0, domain.Service{ID: "svc-1", Name: "Стрижка", DurationMinutes: 45})
	_ = draft.ToggleService(0, domain.Service{ID: "svc-2", Name: "Укладка", DurationMinutes: 30})
	_ = draft.ToggleService(1, domain.Service{ID: "svc-3", Name: "Маникюр", DurationMinutes: 40})
	draft.SelectWorker(domain.Worker{ID: "w-1", Name: "Анна"})
	if mutate != nil {
		mutate(draft)
	}
	repo.drafts[draft.ID] = draft
	return draft
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("maps fetched slots onto the grid", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)
		client := &stubAvailability{slots: []availabilityClient.Slot{
			{Start: "10:00", Available: true},
			{Start: "14:00", Available: true},
		}}
		uc := newTestUseCase(repo, client)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		require.NoError(t, err)
		assert.False(t, resp.Stale)
		assert.False(t, resp.Degraded)
		require.Len(t, resp.Slots, 8)

		available := make(map[string]bool)
		for _, slot := range resp.Slots {
			available[slot.Start.String()] = slot.Available
		}
		assert.True(t, available["10:00"])
		assert.True(t, available["14:00"])
		assert.False(t, available["09:00"])
		assert.False(t, available["16:00"])

		// Запрос к сервису доступности собран из состояния черновика
		require.NotNil(t, client.lastRequest)
		assert.Equal(t, "w-1", client.lastRequest.WorkerID)
		assert.Equal(t, "2026-03-14", client.lastRequest.Date)
		assert.Equal(t, "svc-1", client.lastRequest.ServiceID)
		assert.Equal(t, 75, client.lastRequest.TotalDuration)
		assert.Equal(t, 2, client.lastRequest.NumberOfPeople)

		// Сетка и дата сохранены в черновике
		stored := repo.drafts["draft-1"]
		require.NotNil(t, stored.Date)
		assert.Equal(t, testDate, *stored.Date)
		assert.Len(t, stored.Slots, 8)
	})

	t.Run("availability failure is degraded with fully unavailable grid", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)
		client := &stubAvailability{err: errors.New("availability service is down")}
		uc := newTestUseCase(repo, client)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		require.NoError(t, err)
		assert.True(t, resp.Degraded)
		require.Len(t, resp.Slots, 8)
		for _, slot := range resp.Slots {
			assert.False(t, slot.Available, "slot %s", slot.Start)
		}

		// Пустая сетка сохранена: до успешной загрузки выбрать время нельзя
		for _, slot := range repo.drafts["draft-1"].Slots {
			assert.False(t, slot.Available)
		}
	})

	t.Run("worker unknown to availability service", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)
		client := &stubAvailability{err: availabilityClient.ErrWorkerNotFound}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		assert.ErrorIs(t, err, ErrWorkerNotFound)
	})

	t.Run("stale fetch is discarded", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)

		kept := []domain.TimeSlot{{Start: "11:00", Available: true}}
		client := &stubAvailability{slots: []availabilityClient.Slot{{Start: "10:00", Available: true}}}
		// Пока ответ в пути, черновик запросил слоты ещё раз
		client.onFetch = func() {
			d := repo.drafts["draft-1"]
			d.SlotFetchGeneration++
			d.Slots = kept
		}
		uc := newTestUseCase(repo, client)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		require.NoError(t, err)
		assert.True(t, resp.Stale)
		assert.Equal(t, kept, resp.Slots)

		// Устаревший ответ не перезаписал состояние черновика
		assert.Equal(t, kept, repo.drafts["draft-1"].Slots)
	})

	t.Run("date change resets selected time", func(t *testing.T) {
		repo := newStubRepo()
		oldDate := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
		seedReadyDraft(repo, func(d *domain.BookingDraft) {
			d.Date = &oldDate
			start := types.TimeString("10:00")
			d.Slots = []domain.TimeSlot{{Start: start, Available: true}}
			d.SlotStart = &start
		})
		client := &stubAvailability{}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		require.NoError(t, err)
		stored := repo.drafts["draft-1"]
		assert.Equal(t, testDate, *stored.Date)
		assert.Nil(t, stored.SlotStart)
	})

	t.Run("selected slot cleared when it becomes unavailable", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, func(d *domain.BookingDraft) {
			d.Date = &testDate
			start := types.TimeString("10:00")
			d.Slots = []domain.TimeSlot{{Start: start, Available: true}}
			d.SlotStart = &start
		})
		client := &stubAvailability{slots: []availabilityClient.Slot{{Start: "11:00", Available: true}}}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		require.NoError(t, err)
		assert.Nil(t, repo.drafts["draft-1"].SlotStart)
	})

	t.Run("selected slot survives when still available", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, func(d *domain.BookingDraft) {
			d.Date = &testDate
			start := types.TimeString("10:00")
			d.Slots = []domain.TimeSlot{{Start: start, Available: true}}
			d.SlotStart = &start
		})
		client := &stubAvailability{slots: []availabilityClient.Slot{{Start: "10:00", Available: true}}}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		require.NoError(t, err)
		require.NotNil(t, repo.drafts["draft-1"].SlotStart)
		assert.Equal(t, types.TimeString("10:00"), *repo.drafts["draft-1"].SlotStart)
	})

	t.Run("each request bumps the fetch generation", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)
		uc := newTestUseCase(repo, &stubAvailability{})

		_, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})
		require.NoError(t, err)
		assert.EqualValues(t, 1, repo.drafts["draft-1"].SlotFetchGeneration)

		_, err = uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})
		require.NoError(t, err)
		assert.EqualValues(t, 2, repo.drafts["draft-1"].SlotFetchGeneration)
	})

	t.Run("invalid slot starts from availability are dropped", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)
		client := &stubAvailability{slots: []availabilityClient.Slot{
			{Start: "zz:zz", Available: true},
			{Start: "12:00", Available: true},
		}}
		uc := newTestUseCase(repo, client)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		require.NoError(t, err)
		assert.Equal(t, 1, countAvailable(resp.Slots))
	})

	t.Run("not ready for schedule step", func(t *testing.T) {
		repo := newStubRepo()
		draft := domain.NewBookingDraft("draft-1", 42, "salon-1", testNow, 24*time.Hour)
		repo.drafts[draft.ID] = draft
		uc := newTestUseCase(repo, &stubAvailability{})

		_, err := uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", Date: testDate})

		assert.ErrorIs(t, err, ErrStepNotReachable)
	})

	t.Run("date in the past", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)
		uc := newTestUseCase(repo, &stubAvailability{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID: 42, DraftID: "draft-1",
			Date: time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		})

		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("draft guards", func(t *testing.T) {
		repo := newStubRepo()
		seedReadyDraft(repo, nil)
		uc := newTestUseCase(repo, &stubAvailability{})

		_, err := uc.Execute(context.Background(), &Request{UserID: 99, DraftID: "draft-1", Date: testDate})
		assert.ErrorIs(t, err, ErrAccessDenied)

		_, err = uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "missing", Date: testDate})
		assert.ErrorIs(t, err, ErrDraftNotFound)

		_, err = uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
