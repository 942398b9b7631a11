package salonservice

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

func TestClient_GetCatalog(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/salon-search/salon-1", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"data": {
					"salon": {"id": "salon-1", "name": "Студия красоты", "address": "ул. Ленина, 1"},
					"services": [
						{"id": "svc-1", "name": "Стрижка", "category": "hair", "duration": 45, "price": 1500, "image": "cut.png"}
					],
					"workers": [
						{"id": "w-1", "name": "Анна", "currentStatus": "available"},
						{"id": "w-2", "name": "Мария", "currentStatus": "on_break"}
					]
				}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		catalog, err := client.GetCatalog(context.Background(), "salon-1")

		require.NoError(t, err)
		assert.Equal(t, "salon-1", catalog.Salon.ID)
		require.Len(t, catalog.Services, 1)
		assert.Equal(t, 45, catalog.Services[0].DurationMinutes)
		assert.Equal(t, 1500.0, catalog.Services[0].Price)
		require.Len(t, catalog.Workers, 2)
		assert.Equal(t, "on_break", catalog.Workers[1].CurrentStatus)
	})

	t.Run("salon not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.GetCatalog(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("bad request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.GetCatalog(context.Background(), "???")

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("unexpected status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.GetCatalog(context.Background(), "salon-1")

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": `))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, nopLogger{})
		_, err := client.GetCatalog(context.Background(), "salon-1")

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
