package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "JWT_ALGORITHM", "JWT_ACCESS_EXPIRY", "BCRYPT_COST",
		"PHONE_REGION", "LOG_LEVEL", "LOG_RETENTION_DAYS", "SENTRY_DSN", "APP_ENV", "PORT", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()
	assert.Equal(t, "sqlite:///./cf-incubator.db", cfg.DatabaseURL)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "US", cfg.PhoneRegion)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://u:p@db/incubator")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ALGORITHM", "hs512")
	t.Setenv("JWT_ACCESS_EXPIRY", "15m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PHONE_REGION", "co")
	t.Setenv("PORT", "9000")

	cfg := Load()
	assert.Equal(t, "postgres://u:p@db/incubator", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "CO", cfg.PhoneRegion)
	assert.Equal(t, "9000", cfg.Port)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 30*time.Minute, parseDuration("soon"))
	assert.Equal(t, 30*time.Minute, parseDuration("-5m"))
	assert.Equal(t, time.Hour, parseDuration("1h"))
	assert.Equal(t, 7, parseInt("x", 7))
	assert.Equal(t, 3, parseInt("3", 7))
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
