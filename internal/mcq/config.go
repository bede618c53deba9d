package mcq

import "time"

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// TopP is the nucleus-sampling threshold.
	TopP float64

	// Timeout bounds a single inference call. The source system left
	// the call unbounded; the timeout is a deliberate hardening.
	Timeout time.Duration
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		TopP:        0.9,
		Timeout:     120 * time.Second,
	}
}
