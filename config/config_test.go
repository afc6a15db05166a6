package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "CONFIG_FILE", "AUTH_REQUIRED", "JWT_TTL", "ID_MAX_ATTEMPTS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "farmtrack.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 50, cfg.IDMaxAttempts)
	assert.False(t, cfg.AuthRequired)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "farmtrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
db_driver: mongo
mongodb_uri: mongodb://localhost:27017
auth_required: true
jwt_ttl: 2h
id_max_attempts: 10
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7000")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("AUTH_REQUIRED", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("ID_MAX_ATTEMPTS", "")

	cfg := Load()
	assert.Equal(t, "7000", cfg.Port, "env wins over file")
	assert.Equal(t, "mongo", cfg.DBDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.IDMaxAttempts)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ID_MAX_ATTEMPTS", "-3")
	t.Setenv("JWT_TTL", "forever")
	t.Setenv("RATE_LIMIT", "abc")

	cfg := Load()
	assert.Equal(t, 50, cfg.IDMaxAttempts)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Zero(t, cfg.RateLimit)
}
