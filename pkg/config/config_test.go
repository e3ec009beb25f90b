package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATABASE_URL", "REDIS_URL", "JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES",
		"UPLOAD_DIR", "MAX_RESUME_BYTES", "APPLICATION_TRANSITIONS_FILE", "STATS_DEFAULT_DAYS",
		"SITE_TITLE", "SITE_HEADER",
	} {
		t.Setenv(k, "")
	}
}

// chdir switches the working directory for the duration of the test,
// like testing.T.Chdir on newer toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "jobboard", cfg.JWTIssuer)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(5<<20), cfg.MaxResumeBytes)
	assert.Equal(t, 30, cfg.StatsDefaultDays)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.TransitionsFile)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("MAX_RESUME_BYTES", "-1")
	t.Setenv("STATS_DEFAULT_DAYS", "not-a-number")
	t.Setenv("SITE_TITLE", "Careers")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 15, cfg.JWTTTLMinutes)
	assert.Equal(t, int64(5<<20), cfg.MaxResumeBytes)
	assert.Equal(t, 30, cfg.StatsDefaultDays)
	assert.Equal(t, "Careers", cfg.SiteTitle)
}
