// Package config builds the process-wide configuration once at startup.
// Components receive it by reference; there is no global mutable state.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/mcq"
	"github.com/abhisek/quizforge/internal/store"
)

// Config holds everything the service needs, constructed once at startup.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// UploadDir holds uploaded originals, keyed by sanitized filename.
	UploadDir string

	// ResultsDir holds generated artifacts, keyed by "<stem>_mcqs.pdf".
	ResultsDir string

	// DBPath is the SQLite database file for the request-event log.
	DBPath string

	// MaxUploadBytes bounds the multipart form size.
	MaxUploadBytes int64

	LLM        llm.Config
	Generation mcq.Config
}

// Default returns a Config with development defaults.
func Default() Config {
	return Config{
		Addr:           ":8080",
		UploadDir:      "uploads",
		ResultsDir:     "results",
		MaxUploadBytes: 16 * 1024 * 1024,
		LLM:            llm.DefaultConfig(),
		Generation:     mcq.DefaultConfig(),
	}
}

// Load builds the Config from environment variables, reading an optional
// .env file first. Unset variables keep their defaults.
func Load() (Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("QUIZFORGE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("QUIZFORGE_UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("QUIZFORGE_RESULTS_DIR"); v != "" {
		cfg.ResultsDir = v
	}
	if v := os.Getenv("QUIZFORGE_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("QUIZFORGE_MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.MaxUploadBytes = n
	}

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return Config{}, fmt.Errorf("resolve DB path: %w", err)
	}
	cfg.DBPath = dbPath

	cfg.LLM = llm.ConfigFromEnv()
	// When no QUIZFORGE_* key is set for the selected provider, fall
	// back to the standard API key env vars. Provider construction
	// still rejects a config with no usable key.
	if cfg.LLM.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg.LLM = discovered
		}
	}

	return cfg, nil
}

// EnsureDirs creates the upload and results directories.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.UploadDir, c.ResultsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
