package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/artifact"
	"github.com/abhisek/quizforge/internal/config"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/mcq"
	"github.com/abhisek/quizforge/internal/server"
	"github.com/abhisek/quizforge/internal/store"
)

// runServe loads config, opens the store, builds the pipeline, and runs
// the HTTP server until the process is interrupted.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	cfg.DBPath = dbPath

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	generator := mcq.New(provider, cfg.Generation)
	writer := artifact.NewWriter(cfg.ResultsDir)

	srv, err := server.New(&cfg, generator, writer)
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	return srv.Start(ctx)
}
