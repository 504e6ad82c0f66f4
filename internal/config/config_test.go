package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, int64(16<<20), cfg.Upload.MaxUploadBytes)
	assert.Contains(t, cfg.Upload.AllowedExtensions, "webm")
}

func TestLoadUploadOverrides(t *testing.T) {
	os.Setenv("UPLOAD_ALLOWED_EXTENSIONS", "png, svg ,")
	os.Setenv("UPLOAD_MAX_BYTES", "1048576")
	defer os.Unsetenv("UPLOAD_ALLOWED_EXTENSIONS")
	defer os.Unsetenv("UPLOAD_MAX_BYTES")

	cfg := Load()

	assert.Equal(t, []string{"png", "svg"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxUploadBytes)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"

	os.Setenv(key, "17179869184")
	assert.Equal(t, int64(17179869184), getEnvInt64(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, int64(42), getEnvInt64(key, 42))

	os.Unsetenv(key)
	assert.Equal(t, int64(42), getEnvInt64(key, 42))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"

	os.Setenv(key, "a, b ,c,,")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvList(key, "z"))

	os.Unsetenv(key)
	assert.Equal(t, []string{"x", "y"}, getEnvList(key, "x,y"))
}
