package speech

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiSpeaker implements Speaker using the Gemini TTS models.
type GeminiSpeaker struct {
	client *genai.Client
	model  string
	voice  string
}

// NewGeminiSpeaker creates a new Gemini speaker.
func NewGeminiSpeaker(ctx context.Context, cfg GeminiConfig) (*GeminiSpeaker, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiSpeaker{
		client: client,
		model:  cfg.Model,
		voice:  cfg.Voice,
	}, nil
}

func (s *GeminiSpeaker) Speak(ctx context.Context, text string) error {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: s.voice,
				},
			},
		},
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: text}},
	}}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return fmt.Errorf("gemini TTS: %w", err)
	}

	pcm := extractAudio(result)
	if len(pcm) == 0 {
		return fmt.Errorf("gemini TTS returned no audio")
	}

	return playFile(ctx, wrapPCM(pcm), ".wav")
}

func extractAudio(result *genai.GenerateContentResponse) []byte {
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
