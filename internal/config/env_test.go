package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PRICEFMT_TEST_FORMAT=csv\n"), 0o644))
	t.Setenv("PRICEFMT_TEST_FORMAT", "")
	require.NoError(t, os.Unsetenv("PRICEFMT_TEST_FORMAT"))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "csv", EnvOr("PRICEFMT_TEST_FORMAT", "json"))
}

func TestLoadEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestEnvOr(t *testing.T) {
	t.Setenv("PRICEFMT_TEST_BLANK", "   ")
	assert.Equal(t, "fallback", EnvOr("PRICEFMT_TEST_BLANK", "fallback"))
	t.Setenv("PRICEFMT_TEST_SET", " yaml ")
	assert.Equal(t, "yaml", EnvOr("PRICEFMT_TEST_SET", "fallback"))
}
