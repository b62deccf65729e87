package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISpeaker implements Speaker using the OpenAI speech endpoint.
type OpenAISpeaker struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

// NewOpenAISpeaker creates a new OpenAI speaker.
func NewOpenAISpeaker(cfg OpenAIConfig) *OpenAISpeaker {
	voice := openai.SpeechVoice(cfg.Voice)
	if voice == "" {
		voice = openai.VoiceAlloy
	}
	return &OpenAISpeaker{
		client: openai.NewClient(cfg.APIKey),
		voice:  voice,
	}
}

func (s *OpenAISpeaker) Speak(ctx context.Context, text string) error {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return fmt.Errorf("openai TTS: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return fmt.Errorf("read openai audio: %w", err)
	}

	return playFile(ctx, audio, ".mp3")
}
