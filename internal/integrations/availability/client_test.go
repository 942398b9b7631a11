package availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_GetWorkerSlots(t *testing.T) {
	t.Run("success with group size", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/availability/worker/w-1/slots", r.URL.Path)

			query := r.URL.Query()
			assert.Equal(t, "2026-03-14", query.Get("date"))
			assert.Equal(t, "svc-1", query.Get("serviceId"))
			assert.Equal(t, "75", query.Get("totalDuration"))
			assert.Equal(t, "3", query.Get("numberOfPeople"))

			_, _ = w.Write([]byte(`{"data": [
				{"start": "09:00", "available": true},
				{"start": "10:00", "available": false}
			]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		slots, err := client.GetWorkerSlots(context.Background(), &SlotsRequest{
			WorkerID:       "w-1",
			Date:           "2026-03-14",
			ServiceID:      "svc-1",
			TotalDuration:  75,
			NumberOfPeople: 3,
		})

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Start)
		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available)
	})

	t.Run("single person omits numberOfPeople", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present := r.URL.Query()["numberOfPeople"]
			assert.False(t, present)
			_, _ = w.Write([]byte(`{"data": []}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		slots, err := client.GetWorkerSlots(context.Background(), &SlotsRequest{
			WorkerID:       "w-1",
			Date:           "2026-03-14",
			ServiceID:      "svc-1",
			TotalDuration:  30,
			NumberOfPeople: 1,
		})

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("worker not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.GetWorkerSlots(context.Background(), &SlotsRequest{WorkerID: "missing", Date: "2026-03-14"})

		assert.ErrorIs(t, err, ErrWorkerNotFound)
	})

	t.Run("bad request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.GetWorkerSlots(context.Background(), &SlotsRequest{WorkerID: "w-1"})

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.GetWorkerSlots(context.Background(), &SlotsRequest{WorkerID: "w-1", Date: "2026-03-14"})

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
