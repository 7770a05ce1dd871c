package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Empty(t, cfg.Input)
	require.Equal(t, defaultLabels, cfg.Labels)
	require.Equal(t, runtime.NumCPU(), cfg.Partitions)
	require.Equal(t, []string{"naive", "index", "reduce"}, cfg.Strategies)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "langrank.yaml")
	content := `
input: "corpus/**/*.tsv"
labels:
  - Go
  - Rust
partitions: 3
strategies:
  - reduce
logging:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "corpus/**/*.tsv", cfg.Input)
	require.Equal(t, []string{"Go", "Rust"}, cfg.Labels)
	require.Equal(t, 3, cfg.Partitions)
	require.Equal(t, []string{"reduce"}, cfg.Strategies)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LANGRANK_INPUT", "env/**/*.tsv")
	t.Setenv("LANGRANK_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "env/**/*.tsv", cfg.Input)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
