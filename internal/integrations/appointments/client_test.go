package appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zied7316-tech/Xaura-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_CreateAppointment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/appointments", r.URL.Path)

			var body CreateAppointmentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "w-1", body.WorkerID)
			assert.Equal(t, "svc-1", body.ServiceID)
			assert.True(t, body.SkipAvailabilityCheck)
			require.NotNil(t, body.Notes)
			assert.Equal(t, "без опозданий", *body.Notes)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data": {"id": "apt-1", "status": "confirmed", "dateTime": "2026-03-14T10:00:00Z"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		appointment, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{
			WorkerID:              "w-1",
			ServiceID:             "svc-1",
			Services:              []ServiceItem{{ServiceID: "svc-1", Name: "Стрижка", Price: 1500, Duration: 45}},
			DateTime:              "2026-03-14T10:00:00Z",
			Notes:                 ptr.Ptr("без опозданий"),
			SkipAvailabilityCheck: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "apt-1", appointment.ID)
		assert.Equal(t, "confirmed", appointment.Status)
	})

	t.Run("slot conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{WorkerID: "w-1"})

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("validation errors", func(t *testing.T) {
		for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"error": "dateTime is required"}`))
			}))

			client := NewClient(server.URL, 5*time.Second, nopLogger{})
			_, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{WorkerID: "w-1"})

			assert.ErrorIs(t, err, ErrValidation, "status %d", status)
			server.Close()
		}
	})

	t.Run("unexpected status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{WorkerID: "w-1"})

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClient_CreateRecurringSeries(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/advanced-booking/recurring", r.URL.Path)

			var body CreateRecurringRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "weekly", body.Frequency)
			assert.Equal(t, "2026-03-16", body.StartDate)
			assert.Equal(t, 1, body.DayOfWeek)
			assert.Equal(t, "10:00", body.TimeSlot)
			assert.Equal(t, 2, body.NumberOfPeople)
			require.Len(t, body.PeopleServices, 2)

			_, _ = w.Write([]byte(`{"data": {"id": "series-1", "frequency": "weekly"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		series, err := client.CreateRecurringSeries(context.Background(), &CreateRecurringRequest{
			SalonID:        "salon-1",
			WorkerID:       "w-1",
			ServiceID:      "svc-1",
			Services:       []ServiceItem{{ServiceID: "svc-1"}},
			Frequency:      "weekly",
			StartDate:      "2026-03-16",
			DayOfWeek:      1,
			TimeSlot:       "10:00",
			NumberOfPeople: 2,
			PeopleServices: []PersonServices{
				{PersonIndex: 0, Services: []ServiceItem{{ServiceID: "svc-1"}}},
				{PersonIndex: 1, Services: []ServiceItem{{ServiceID: "svc-2"}}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "series-1", series.ID)
	})

	t.Run("slot conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.CreateRecurringSeries(context.Background(), &CreateRecurringRequest{WorkerID: "w-1"})

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})
}
