package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STOREFRONT_TOKEN_DIR", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.Timeout)
	require.Equal(t, 1, cfg.CloseConcurrency)
	require.Equal(t, "warn", cfg.Level)

	size, err := cfg.MaxUploadBytes()
	require.NoError(t, err)
	require.Equal(t, 10*datasize.MB, size)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STOREFRONT_TOKEN_DIR", dir)
	t.Setenv("STOREFRONT_API_URL", "https://auctions.example.com/api")
	t.Setenv("STOREFRONT_TIMEOUT", "3s")
	t.Setenv("STOREFRONT_CLOSE_CONCURRENCY", "4")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://auctions.example.com/api", cfg.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, 4, cfg.CloseConcurrency)
	require.Equal(t, dir, cfg.TokenDir)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `env: prod
api:
  base_url: "http://backend:9000/api"
  max_upload: "2MB"
session:
  token_dir: "` + dir + `"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.IsProd())
	require.Equal(t, "http://backend:9000/api", cfg.BaseURL)

	size, err := cfg.MaxUploadBytes()
	require.NoError(t, err)
	require.Equal(t, 2*datasize.MB, size)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero_concurrency", key: "STOREFRONT_CLOSE_CONCURRENCY", val: "0"},
		{name: "bad_upload_size", key: "STOREFRONT_MAX_UPLOAD", val: "lots"},
		{name: "negative_timeout", key: "STOREFRONT_TIMEOUT", val: "-1s"},
		{name: "unknown_env", key: "STOREFRONT_ENV", val: "staging"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("STOREFRONT_TOKEN_DIR", t.TempDir())
			t.Setenv(tc.key, tc.val)
			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
