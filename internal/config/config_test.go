package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.DBPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NUTRIAI_API_URL", "https://api.nutriai.test/api/v1")
	t.Setenv("NUTRIAI_TIMEOUT", "3s")
	t.Setenv("NUTRIAI_DB", "/tmp/nutriai-test.db")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.nutriai.test/api/v1", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/nutriai-test.db", cfg.DBPath)
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("NUTRIAI_TIMEOUT", "0s")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestLoadRejectsBlankAPIURL(t *testing.T) {
	t.Setenv("NUTRIAI_API_URL", "   ")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
}
