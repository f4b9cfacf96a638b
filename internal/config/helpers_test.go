package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func testPaths(t *testing.T) Paths {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), "data")
	return Paths{
		ConfigFile: filepath.Join(t.TempDir(), "karaoke-rs", "config.yaml"),
		DataDir:    dataDir,
		SongDir:    filepath.Join(dataDir, "songs"),
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func ptr[T any](v T) *T {
	return &v
}
