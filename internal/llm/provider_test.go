package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: "first"},
		MockResponse{Content: "second"},
	)

	resp, err := m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "first" {
		t.Fatalf("expected %q, got %q", "first", resp.Content)
	}

	resp, err = m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "second" {
		t.Fatalf("expected %q, got %q", "second", resp.Content)
	}

	// Exhausted queue fails with provider unavailable.
	_, err = m.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}

	if m.CallCount() != 3 {
		t.Fatalf("expected 3 calls recorded, got %d", m.CallCount())
	}
}

func TestMockProvider_CannedError(t *testing.T) {
	wantErr := &ErrRateLimit{}
	m := NewMockProvider(MockResponse{Err: wantErr})

	_, err := m.Generate(context.Background(), Request{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected canned error, got: %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Fatalf("expected 'unknown' for bare context, got %q", got)
	}

	ctx = WithPurpose(ctx, "mcq-gen")
	if got := PurposeFrom(ctx); got != "mcq-gen" {
		t.Fatalf("expected 'mcq-gen', got %q", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamacpp"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
