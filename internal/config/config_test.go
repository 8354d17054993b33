package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/motif/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motif.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8098", cfg.Listen)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen: ":9000"
log_level: debug
frame_rate: 30
redis:
  addr: "localhost:6379"
  db: 2
  namespace: "plugin:"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "plugin:", cfg.Redis.Namespace)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeConfig(t, "frame_rate: 0"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame_rate")

	_, err = config.Load(writeConfig(t, "log_level: loud"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_EncryptionKey(t *testing.T) {
	// 32 bytes hex encoded.
	hexKey := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	cfg, err := config.Load(writeConfig(t, "encryption_key: "+hexKey))
	require.NoError(t, err)

	key, err := cfg.EncryptionKeyBytes()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	// Unset key disables encryption.
	key, err = config.Default().EncryptionKeyBytes()
	require.NoError(t, err)
	assert.Nil(t, key)

	_, err = config.Load(writeConfig(t, "encryption_key: not-hex"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encryption_key")

	_, err = config.Load(writeConfig(t, "encryption_key: abcd"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}
