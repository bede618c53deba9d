package cmd

import (
	"fmt"

	"github.com/abhisek/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent LLM request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		events, err := st.EventRepo().RecentLLMRequests(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		for _, e := range events {
			status := "ok"
			if !e.Success {
				status = "error: " + e.ErrorMessage
			}
			fmt.Printf("%s  %-10s %-28s %6dms  in=%d out=%d  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"),
				e.Purpose, e.Model, e.LatencyMs,
				e.InputTokens, e.OutputTokens, status)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Maximum number of events to show")
}
