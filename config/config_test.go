package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "go-blog-api", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disk", cfg.MediaDriver)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.BlogCacheTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("MEDIA_DRIVER", "gcs")
	t.Setenv("JWT_TOKEN_TTL", "30m")
	t.Setenv("DB_MAX_CONNS", "not-a-number") // falls back to default

	cfg := Load()
	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, "gcs", cfg.MediaDriver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "app", DBPassword: "pw", DBHost: "db", DBPort: "5432",
		DBName: "blogdb", DBSSLMode: "disable",
	}
	assert.Equal(t, "postgres://app:pw@db:5432/blogdb?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://a.test, http://b.test ,,"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}
