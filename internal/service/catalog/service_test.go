package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zied7316-tech/Xaura-sub000/internal/infra/cache"
	"github.com/zied7316-tech/Xaura-sub000/internal/integrations/salonservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubClient struct {
	catalog *salonservice.Catalog
	err     error
	calls   int
}

func (s *stubClient) GetCatalog(ctx context.Context, salonID string) (*salonservice.Catalog, error) {
	s.calls++
	return s.catalog, s.err
}

type stubCache struct {
	entries map[string]*salonservice.Catalog
	getErr  error
	setErr  error
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*salonservice.Catalog)}
}

func (s *stubCache) Get(ctx context.Context, salonID string) (*salonservice.Catalog, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if c, ok := s.entries[salonID]; ok {
		return c, nil
	}
	return nil, cache.ErrCacheMiss
}

func (s *stubCache) Set(ctx context.Context, salonID string, catalog *salonservice.Catalog) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[salonID] = catalog
	return nil
}

func integrationCatalog() *salonservice.Catalog {
	return &salonservice.Catalog{
		Salon: salonservice.Salon{ID: "salon-1", Name: "Студия красоты"},
		Services: []salonservice.Service{
			{ID: "svc-1", Name: "Стрижка", Category: "hair", DurationMinutes: 45, Price: 1500, Image: "cut.png"},
		},
		Workers: []salonservice.Worker{
			{ID: "w-1", Name: "Анна", CurrentStatus: "available"},
		},
	}
}

func TestService_GetCatalog_CacheMissFetchesAndStores(t *testing.T) {
	client := &stubClient{catalog: integrationCatalog()}
	cacheStub := newStubCache()
	svc := NewService(client, cacheStub, nopLogger{})

	got, err := svc.GetCatalog(context.Background(), "salon-1")

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 1, cacheStub.sets)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "cut.png", got.Services[0].ImageRef)
	require.Len(t, got.Workers, 1)
	assert.Equal(t, "available", got.Workers[0].CurrentStatus)
}

func TestService_GetCatalog_CacheHitSkipsClient(t *testing.T) {
	client := &stubClient{catalog: integrationCatalog()}
	cacheStub := newStubCache()
	cacheStub.entries["salon-1"] = integrationCatalog()
	svc := NewService(client, cacheStub, nopLogger{})

	got, err := svc.GetCatalog(context.Background(), "salon-1")

	require.NoError(t, err)
	assert.Equal(t, 0, client.calls)
	assert.Equal(t, "salon-1", got.Salon.ID)
}

func TestService_GetCatalog_CacheFailureFallsThrough(t *testing.T) {
	client := &stubClient{catalog: integrationCatalog()}
	cacheStub := newStubCache()
	cacheStub.getErr = errors.New("redis is down")
	svc := NewService(client, cacheStub, nopLogger{})

	got, err := svc.GetCatalog(context.Background(), "salon-1")

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "salon-1", got.Salon.ID)
}

func TestService_GetCatalog_SalonNotFound(t *testing.T) {
	client := &stubClient{err: salonservice.ErrSalonNotFound}
	svc := NewService(client, newStubCache(), nopLogger{})

	_, err := svc.GetCatalog(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestService_GetCatalog_ClientFailure(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	svc := NewService(client, newStubCache(), nopLogger{})

	_, err := svc.GetCatalog(context.Background(), "salon-1")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetCatalog_NilCache(t *testing.T) {
	client := &stubClient{catalog: integrationCatalog()}
	svc := NewService(client, nil, nopLogger{})

	got, err := svc.GetCatalog(context.Background(), "salon-1")

	require.NoError(t, err)
	assert.Equal(t, "salon-1", got.Salon.ID)
}
