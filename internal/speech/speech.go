// Package speech pronounces Korean words. Synthesis failures are logged
// by callers and never block practice flow.
package speech

import (
	"context"
	"fmt"
	"os"
)

// Speaker synthesizes and plays spoken Korean.
type Speaker interface {
	// Speak pronounces text aloud, blocking until playback finishes
	// or ctx is cancelled.
	Speak(ctx context.Context, text string) error
}

// Config holds speech provider configuration.
type Config struct {
	// Provider selects which speech backend to use.
	// Values: "gemini", "openai", "local", "off"
	Provider string

	Gemini GeminiConfig
	OpenAI OpenAIConfig
}

// GeminiConfig holds Gemini TTS configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-2.5-flash-preview-tts"
	Voice  string // Default: "Kore"
}

// OpenAIConfig holds OpenAI TTS configuration.
type OpenAIConfig struct {
	APIKey string
	Voice  string // Default: "alloy"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "local",
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash-preview-tts",
			Voice: "Kore",
		},
		OpenAI: OpenAIConfig{
			Voice: "alloy",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables. When no
// provider is forced via HANA_SPEECH_PROVIDER, it picks the first cloud
// provider with a key available, falling back to the local synthesizer.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := firstEnv("HANA_GEMINI_API_KEY", "GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if k := firstEnv("HANA_OPENAI_API_KEY", "OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if v := os.Getenv("HANA_SPEECH_VOICE"); v != "" {
		cfg.Gemini.Voice = v
		cfg.OpenAI.Voice = v
	}

	if p := os.Getenv("HANA_SPEECH_PROVIDER"); p != "" {
		cfg.Provider = p
		return cfg
	}

	switch {
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	}
	return cfg
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// NewSpeaker creates a Speaker from configuration. Cloud providers fall
// back to the local synthesizer, both when their key is missing and at
// Speak time when synthesis fails, so practice always has audio.
func NewSpeaker(ctx context.Context, cfg Config) (Speaker, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return NewLocalSpeaker(), nil
		}
		g, err := NewGeminiSpeaker(ctx, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		return WithFallback(g, NewLocalSpeaker()), nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return NewLocalSpeaker(), nil
		}
		return WithFallback(NewOpenAISpeaker(cfg.OpenAI), NewLocalSpeaker()), nil
	case "local":
		return NewLocalSpeaker(), nil
	case "off":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown speech provider: %q", cfg.Provider)
	}
}

// Noop is a Speaker that does nothing. Used when speech is disabled.
type Noop struct{}

func (Noop) Speak(context.Context, string) error { return nil }
