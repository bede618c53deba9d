// Package mcq generates multiple-choice questions from extracted text.
package mcq

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/llm"
)

// Fallback is returned in place of model output when the provider
// answers successfully but produces no text. It is a normal result,
// not an error: the request completes and the artifact is still written.
const Fallback = "No MCQs could be generated for this document."

// Params are the per-request generation parameters.
type Params struct {
	QuestionCount int    // >= 1
	Difficulty    string // e.g. "Easy", "Medium", "Hard"
	OptionCount   int    // >= 2
}

// Generator produces MCQ text via the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate asks the model for MCQs covering text. The returned string is
// the model's output verbatim — no structure is parsed or validated.
// Provider failures propagate unchanged; the caller treats them as fatal.
func (g *Generator) Generate(ctx context.Context, text string, p Params) (string, error) {
	ctx = llm.WithPurpose(ctx, "mcq-gen")

	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(text, p)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
		TopP:        g.config.TopP,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mcq generation failed: %w", err)
	}

	if strings.TrimSpace(resp.Content) == "" {
		return Fallback, nil
	}
	return resp.Content, nil
}
