package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, int64(16*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Positive(t, cfg.Generation.MaxTokens)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUIZFORGE_ADDR", ":9999")
	t.Setenv("QUIZFORGE_UPLOAD_DIR", filepath.Join(dir, "up"))
	t.Setenv("QUIZFORGE_RESULTS_DIR", filepath.Join(dir, "res"))
	t.Setenv("QUIZFORGE_MAX_UPLOAD_BYTES", "1024")
	t.Setenv("QUIZFORGE_DB", filepath.Join(dir, "q.db"))
	t.Setenv("QUIZFORGE_LLM_PROVIDER", "mock")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, filepath.Join(dir, "up"), cfg.UploadDir)
	assert.Equal(t, filepath.Join(dir, "res"), cfg.ResultsDir)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, filepath.Join(dir, "q.db"), cfg.DBPath)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoad_DiscoversStandardKey(t *testing.T) {
	t.Setenv("QUIZFORGE_DB", filepath.Join(t.TempDir(), "q.db"))
	t.Setenv("QUIZFORGE_LLM_PROVIDER", "")
	t.Setenv("QUIZFORGE_ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "discovered-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "discovered-key", cfg.LLM.Gemini.APIKey)
}

func TestLoad_ExplicitProviderWinsOverDiscovery(t *testing.T) {
	t.Setenv("QUIZFORGE_DB", filepath.Join(t.TempDir(), "q.db"))
	t.Setenv("QUIZFORGE_LLM_PROVIDER", "mock")
	t.Setenv("GEMINI_API_KEY", "discovered-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoad_BadMaxUploadBytes(t *testing.T) {
	t.Setenv("QUIZFORGE_DB", filepath.Join(t.TempDir(), "q.db"))
	t.Setenv("QUIZFORGE_MAX_UPLOAD_BYTES", "plenty")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.UploadDir = filepath.Join(dir, "a", "uploads")
	cfg.ResultsDir = filepath.Join(dir, "b", "results")

	require.NoError(t, cfg.EnsureDirs())

	assert.DirExists(t, cfg.UploadDir)
	assert.DirExists(t, cfg.ResultsDir)
}
