package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/pix-brcode/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, ":50051", cfg.GRPC.Addr)
	assert.Equal(t, 256, cfg.QR.Size)
	assert.Equal(t, "medium", cfg.QR.Recovery)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.Shutdown.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BRCODE_HTTP_ADDR", ":9090")
	t.Setenv("BRCODE_QR_SIZE", "512")
	t.Setenv("BRCODE_LOG_FORMAT", "HUMAN")
	t.Setenv("BRCODE_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 512, cfg.QR.Size)
	assert.Equal(t, "human", cfg.Log.Format)
	assert.Equal(t, 2*time.Second, cfg.Shutdown.Timeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brcode.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grpc:
  addr: 127.0.0.1:6000
qr:
  recovery: high
log:
  level: debug
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6000", cfg.GRPC.Addr)
	assert.Equal(t, "high", cfg.QR.Recovery)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "qr too small", env: "BRCODE_QR_SIZE", val: "10"},
		{name: "unknown recovery", env: "BRCODE_QR_RECOVERY", val: "extreme"},
		{name: "unknown level", env: "BRCODE_LOG_LEVEL", val: "trace"},
		{name: "unknown format", env: "BRCODE_LOG_FORMAT", val: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.env, tt.val)

			_, err := config.Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
		})
	}
}
