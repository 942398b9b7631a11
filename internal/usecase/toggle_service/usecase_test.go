package toggle_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	catalogModels "github.com/zied7316-tech/Xaura-sub000/internal/service/catalog/models"
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

type stubCatalog struct {
	catalog *catalogModels.Catalog
	err     error
}

func (s *stubCatalog) GetCatalog(ctx context.Context, salonID string) (*catalogModels.Catalog, error) {
	return s.catalog, s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func testCatalog() *catalogModels.Catalog {
	return &catalogModels.Catalog{
		Services: []catalogModels.Service{
			{ID: "svc-1", Name: "Стрижка", DurationMinutes: 45, Price: 1500},
			{ID: "svc-2", Name: "Окрашивание", DurationMinutes: 90, Price: 4000},
		},
	}
}

func newTestUseCase(repo *stubRepo, cat *stubCatalog) *UseCase {
	uc := NewUseCase(repo, cat, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func seedDraft(repo *stubRepo, mutate func(*domain.BookingDraft)) *domain.BookingDraft {
	draft := domain.NewBookingDraft("draft-1", 42, "salon-1", testNow, 24*time.Hour)
	if mutate != nil {
		mutate(draft)
	}
	repo.drafts[draft.ID] = draft
	return draft
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("adds service from catalog", func(t *testing.T) {
		repo := newStubRepo()
		seedDraft(repo, nil)
		uc := newTestUseCase(repo, &stubCatalog{catalog: testCatalog()})

		draft, err := uc.Execute(context.Background(), &Request{
			UserID: 42, DraftID: "draft-1", PersonIndex: 0, ServiceID: "svc-1",
		})

		require.NoError(t, err)
		require.Len(t, draft.People[0].Services, 1)
		assert.Equal(t, "svc-1", draft.People[0].Services[0].ID)
		assert.Equal(t, 45, draft.People[0].Services[0].DurationMinutes)
	})

	t.Run("second toggle removes the service", func(t *testing.T) {
		repo := newStubRepo()
		seedDraft(repo, nil)
		uc := newTestUseCase(repo, &stubCatalog{catalog: testCatalog()})
		req := &Request{UserID: 42, DraftID: "draft-1", PersonIndex: 0, ServiceID: "svc-1"}

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		draft, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, draft.People[0].Services)
	})

	t.Run("toggle resets fetched slots", func(t *testing.T) {
		repo := newStubRepo()
		seedDraft(repo, func(d *domain.BookingDraft) {
			start := types.TimeString("10:00")
			d.Slots = []domain.TimeSlot{{Start: start, Available: true}}
			d.SlotStart = &start
		})
		uc := newTestUseCase(repo, &stubCatalog{catalog: testCatalog()})

		draft, err := uc.Execute(context.Background(), &Request{
			UserID: 42, DraftID: "draft-1", PersonIndex: 0, ServiceID: "svc-2",
		})

		require.NoError(t, err)
		assert.Nil(t, draft.Slots)
		assert.Nil(t, draft.SlotStart)
	})

	t.Run("service not in catalog", func(t *testing.T) {
		repo := newStubRepo()
		seedDraft(repo, nil)
		uc := newTestUseCase(repo, &stubCatalog{catalog: testCatalog()})

		_, err := uc.Execute(context.Background(), &Request{
			UserID: 42, DraftID: "draft-1", PersonIndex: 0, ServiceID: "missing",
		})

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("person index out of range", func(t *testing.T) {
		repo := newStubRepo()
		seedDraft(repo, nil)
		uc := newTestUseCase(repo, &stubCatalog{catalog: testCatalog()})

		_, err := uc.Execute(context.Background(), &Request{
			UserID: 42, DraftID: "draft-1", PersonIndex: 5, ServiceID: "svc-1",
		})

		assert.ErrorIs(t, err, ErrPersonIndexOutOfRange)
	})

	t.Run("draft guards", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*domain.BookingDraft)
			userID  int64
			wantErr error
		}{
			{
				name:    "not found",
				userID:  42,
				wantErr: ErrDraftNotFound,
			},
			{
				name:    "foreign draft",
				mutate:  func(d *domain.BookingDraft) {},
				userID:  99,
				wantErr: ErrAccessDenied,
			},
			{
				name: "expired",
				mutate: func(d *domain.BookingDraft) {
					d.ExpiresAt = testNow.Add(-time.Hour)
				},
				userID:  42,
				wantErr: ErrDraftExpired,
			},
			{
				name: "already submitted",
				mutate: func(d *domain.BookingDraft) {
					d.Status = domain.DraftStatusSubmitted
				},
				userID:  42,
				wantErr: ErrDraftSubmitted,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newStubRepo()
				if tt.mutate != nil {
					seedDraft(repo, tt.mutate)
				}
				uc := newTestUseCase(repo, &stubCatalog{catalog: testCatalog()})

				_, err := uc.Execute(context.Background(), &Request{
					UserID: tt.userID, DraftID: "draft-1", PersonIndex: 0, ServiceID: "svc-1",
				})

				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(newStubRepo(), &stubCatalog{catalog: testCatalog()})

		_, err := uc.Execute(context.Background(), &Request{UserID: 0, DraftID: "draft-1", ServiceID: "svc-1"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "", ServiceID: "svc-1"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", ServiceID: ""})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{UserID: 42, DraftID: "draft-1", PersonIndex: -1, ServiceID: "svc-1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
