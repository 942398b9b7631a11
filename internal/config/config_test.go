package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "booking_wizard"
sslmode = "disable"

[redis]
addr = "localhost:6379"
catalog_ttl_minutes = 10

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "booking-wizard"

[salon_service]
url = "http://salon:8081/api/v1"
timeout = 5

[availability_service]
url = "http://availability:8082/api/v1"
timeout = 5

[appointment_service]
url = "http://appointments:8083/api/v1"
timeout = 10

[drafts]
ttl_hours = 24
cleanup_interval_minutes = 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "booking_wizard", cfg.Database.DBName)
	assert.Equal(t, 10, cfg.Redis.CatalogTTLMin)
	assert.Equal(t, "http://salon:8081/api/v1", cfg.SalonService.URL)
	assert.Equal(t, 24, cfg.Drafts.TTLHours)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("SALON_SERVICE_URL", "http://salon.internal/api/v1")

	cfg, err := Load(writeConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, "http://salon.internal/api/v1", cfg.SalonService.URL)

	// Значения без переопределений остаются из файла
	assert.Equal(t, "booking", cfg.Database.User)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("missing integration url", func(t *testing.T) {
		content := `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "booking"
`
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		content := `
[server]
http_port = 0

[database]
host = "localhost"
dbname = "booking"
`
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "booking",
		Password: "secret",
		DBName:   "booking_wizard",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=booking_wizard sslmode=disable",
		cfg.DSN())
}
