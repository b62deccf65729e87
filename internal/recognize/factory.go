package recognize

import (
	"context"
	"fmt"
)

// NewRecognizer creates a Recognizer from configuration.
func NewRecognizer(ctx context.Context, cfg Config) (Recognizer, error) {
	var base Recognizer
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiRecognizer(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIRecognizer(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicRecognizer(cfg.Anthropic)
	case "mock":
		return NewMockRecognizer(), nil
	default:
		return nil, fmt.Errorf("unknown vision provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s recognizer: %w", cfg.Provider, err)
	}

	return base, nil
}
