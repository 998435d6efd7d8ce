package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lessonlab/quizforge/internal/app"
	"github.com/lessonlab/quizforge/internal/llm"
	"github.com/lessonlab/quizforge/internal/ocr"
	"github.com/lessonlab/quizforge/internal/quizgen"
	"github.com/lessonlab/quizforge/internal/store"
)

// runApp opens the event store, builds the gateways, and launches the
// TUI. A missing or misconfigured provider key is fatal: every feature
// of the app needs the model.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open event store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	generator := quizgen.New(provider, quizgen.DefaultConfig())
	extractor := ocr.New(provider, ocr.DefaultConfig())

	return app.Run(generator, extractor)
}
