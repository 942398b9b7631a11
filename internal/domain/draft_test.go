package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zied7316-tech/Xaura-sub000/pkg/types"
)

func svc(id string, duration int) Service {
	return Service{ID: id, Name: "service " + id, DurationMinutes: duration, Price: 100}
}

func newTestDraft() *BookingDraft {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	return NewBookingDraft("draft-1", 42, "salon-1", now, 24*time.Hour)
}

func TestNewBookingDraft(t *testing.T) {
	draft := newTestDraft()

	assert.Equal(t, StepSelectServices, draft.Step)
	assert.Equal(t, DraftStatusDraft, draft.Status)
	assert.Equal(t, 1, draft.NumberOfPeople)
	require.Len(t, draft.People, 1)
	assert.Equal(t, 0, draft.People[0].PersonIndex)
	assert.Empty(t, draft.People[0].Services)
}

func TestBookingDraft_IsExpired(t *testing.T) {
	draft := newTestDraft()

	assert.False(t, draft.IsExpired(draft.ExpiresAt.Add(-time.Minute)))
	assert.True(t, draft.IsExpired(draft.ExpiresAt.Add(time.Minute)))

	// Черновик без срока жизни не истекает
	draft.ExpiresAt = time.Time{}
	assert.False(t, draft.IsExpired(time.Now()))
}

func TestBookingDraft_ToggleService(t *testing.T) {
	t.Run("toggle twice removes the service", func(t *testing.T) {
		draft := newTestDraft()

		require.NoError(t, draft.ToggleService(0, svc("haircut", 30)))
		require.Len(t, draft.People[0].Services, 1)

		require.NoError(t, draft.ToggleService(0, svc("haircut", 30)))
		assert.Empty(t, draft.People[0].Services)
	})

	t.Run("removal preserves order of the rest", func(t *testing.T) {
		draft := newTestDraft()
		require.NoError(t, draft.ToggleService(0, svc("a", 30)))
		require.NoError(t, draft.ToggleService(0, svc("b", 45)))
		require.NoError(t, draft.ToggleService(0, svc("c", 15)))

		require.NoError(t, draft.ToggleService(0, svc("b", 45)))

		require.Len(t, draft.People[0].Services, 2)
		assert.Equal(t, "a", draft.People[0].Services[0].ID)
		assert.Equal(t, "c", draft.People[0].Services[1].ID)
	})

	t.Run("person index out of range", func(t *testing.T) {
		draft := newTestDraft()
		assert.ErrorIs(t, draft.ToggleService(1, svc("a", 30)), ErrPersonIndexOutOfRange)
		assert.ErrorIs(t, draft.ToggleService(-1, svc("a", 30)), ErrPersonIndexOutOfRange)
	})
}

func TestBookingDraft_SetNumberOfPeople(t *testing.T) {
	t.Run("grow adds empty selections", func(t *testing.T) {
		draft := newTestDraft()
		require.NoError(t, draft.ToggleService(0, svc("a", 30)))

		draft.SetNumberOfPeople(3)

		assert.Equal(t, 3, draft.NumberOfPeople)
		require.Len(t, draft.People, 3)
		assert.Equal(t, []int{0, 1, 2}, []int{
			draft.People[0].PersonIndex,
			draft.People[1].PersonIndex,
			draft.People[2].PersonIndex,
		})
		assert.Len(t, draft.People[0].Services, 1)
		assert.Empty(t, draft.People[1].Services)
		assert.Empty(t, draft.People[2].Services)
	})

	t.Run("shrink drops from the tail keeping the rest", func(t *testing.T) {
		draft := newTestDraft()
		draft.SetNumberOfPeople(3)
		require.NoError(t, draft.ToggleService(0, svc("a", 30)))
		require.NoError(t, draft.ToggleService(1, svc("b", 45)))
		require.NoError(t, draft.ToggleService(2, svc("c", 60)))

		draft.SetNumberOfPeople(2)

		assert.Equal(t, 2, draft.NumberOfPeople)
		require.Len(t, draft.People, 2)
		assert.Equal(t, "a", draft.People[0].Services[0].ID)
		assert.Equal(t, "b", draft.People[1].Services[0].ID)
	})

	t.Run("values are clamped to the allowed range", func(t *testing.T) {
		draft := newTestDraft()

		draft.SetNumberOfPeople(0)
		assert.Equal(t, MinNumberOfPeople, draft.NumberOfPeople)

		draft.SetNumberOfPeople(100)
		assert.Equal(t, MaxNumberOfPeople, draft.NumberOfPeople)
		assert.Len(t, draft.People, MaxNumberOfPeople)
	})
}

func TestBookingDraft_RequiredDuration(t *testing.T) {
	t.Run("single person sums services", func(t *testing.T) {
		draft := newTestDraft()
		require.NoError(t, draft.ToggleService(0, svc("a", 30)))
		require.NoError(t, draft.ToggleService(0, svc("b", 45)))

		assert.Equal(t, 75, draft.RequiredDuration())
	})

	t.Run("group takes max over people, not a sum", func(t *testing.T) {
		draft := newTestDraft()
		draft.SetNumberOfPeople(2)
		require.NoError(t, draft.ToggleService(0, svc("a", 30)))
		require.NoError(t, draft.ToggleService(0, svc("b", 45)))
		require.NoError(t, draft.ToggleService(1, svc("c", 40)))

		assert.Equal(t, 75, draft.RequiredDuration())
	})

	t.Run("empty draft", func(t *testing.T) {
		draft := &BookingDraft{}
		assert.Equal(t, 0, draft.RequiredDuration())
	})
}

func TestBookingDraft_CanEnterStep(t *testing.T) {
	draft := newTestDraft()
	draft.SetNumberOfPeople(2)

	assert.True(t, draft.CanEnterStep(StepSelectServices))
	assert.False(t, draft.CanEnterStep(StepSelectWorker))
	assert.False(t, draft.CanEnterStep(StepSelectSchedule))

	require.NoError(t, draft.ToggleService(0, svc("a", 30)))
	assert.False(t, draft.CanEnterStep(StepSelectWorker), "every person needs a service")

	require.NoError(t, draft.ToggleService(1, svc("b", 45)))
	assert.True(t, draft.CanEnterStep(StepSelectWorker))
	assert.False(t, draft.CanEnterStep(StepSelectSchedule), "worker is not selected yet")

	draft.SelectWorker(Worker{ID: "w1", Name: "Anna"})
	assert.True(t, draft.CanEnterStep(StepSelectSchedule))
}

func TestBookingDraft_SetStep(t *testing.T) {
	draft := newTestDraft()
	require.NoError(t, draft.ToggleService(0, svc("a", 30)))
	draft.SelectWorker(Worker{ID: "w1"})
	require.NoError(t, draft.SetStep(StepSelectSchedule))

	t.Run("back is always allowed", func(t *testing.T) {
		require.NoError(t, draft.SetStep(StepSelectServices))
		assert.Equal(t, StepSelectServices, draft.Step)
	})

	t.Run("forward requires preconditions", func(t *testing.T) {
		fresh := newTestDraft()
		assert.ErrorIs(t, fresh.SetStep(StepSelectWorker), ErrStepNotReachable)

		require.NoError(t, fresh.ToggleService(0, svc("a", 30)))
		require.NoError(t, fresh.SetStep(StepSelectWorker))
		assert.Equal(t, StepSelectWorker, fresh.Step)
	})

	t.Run("unknown step", func(t *testing.T) {
		assert.ErrorIs(t, draft.SetStep(Step(0)), ErrStepNotReachable)
		assert.ErrorIs(t, draft.SetStep(Step(4)), ErrStepNotReachable)
	})
}

func TestBookingDraft_InvalidateSlots(t *testing.T) {
	draft := newTestDraft()
	start := types.TimeString("10:00")
	draft.Slots = []TimeSlot{{Start: start, Available: true}}
	draft.SlotStart = &start

	draft.InvalidateSlots()

	assert.Nil(t, draft.Slots)
	assert.Nil(t, draft.SlotStart)
}

func TestBookingDraft_SelectedSlot(t *testing.T) {
	draft := newTestDraft()
	draft.Slots = []TimeSlot{
		{Start: "09:00", Available: false},
		{Start: "10:00", Available: true},
	}

	_, ok := draft.SelectedSlot()
	assert.False(t, ok, "no slot selected")

	start := types.TimeString("10:00")
	draft.SlotStart = &start
	slot, ok := draft.SelectedSlot()
	require.True(t, ok)
	assert.True(t, slot.Available)

	missing := types.TimeString("12:00")
	draft.SlotStart = &missing
	_, ok = draft.SelectedSlot()
	assert.False(t, ok)
}

func TestBookingDraft_PrimaryService(t *testing.T) {
	draft := newTestDraft()
	assert.Nil(t, draft.PrimaryService())

	require.NoError(t, draft.ToggleService(0, svc("first", 30)))
	require.NoError(t, draft.ToggleService(0, svc("second", 45)))

	primary := draft.PrimaryService()
	require.NotNil(t, primary)
	assert.Equal(t, "first", primary.ID)
}
