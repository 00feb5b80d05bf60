package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "http://127.0.0.1:11434", cfg.Ollama.Host)
	assert.NotEmpty(t, cfg.Ollama.Model)
	assert.Equal(t, 10, cfg.Analysis.MaxSummaryFiles)
	assert.Equal(t, 5, cfg.Analysis.MaxSummaryFunctions)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Ollama.Host, cfg.Ollama.Host)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "codewiki.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ollama:
  host: http://10.0.0.162:11434
  model: custom-model
analysis:
  max_summary_files: 3
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.162:11434", cfg.Ollama.Host)
	assert.Equal(t, "custom-model", cfg.Ollama.Model)
	assert.Equal(t, 3, cfg.Analysis.MaxSummaryFiles)
	// Unset keys keep defaults.
	assert.Equal(t, 5, cfg.Analysis.MaxSummaryFunctions)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadExplicitFileMissingIsError(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
