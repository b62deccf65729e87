package recognize

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

const anthropicMaxTokens = 256

// AnthropicRecognizer implements Recognizer using the Anthropic SDK.
type AnthropicRecognizer struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicRecognizer creates a new Anthropic recognizer.
func NewAnthropicRecognizer(cfg AnthropicConfig) (*AnthropicRecognizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
	)

	return &AnthropicRecognizer{
		client: &client,
		model:  resolveModel(cfg.Model, anthropicModels),
	}, nil
}

func (r *AnthropicRecognizer) Recognize(ctx context.Context, png []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(png)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64("image/png", encoded),
				anthropic.NewTextBlock(prompt),
			),
		},
		OutputConfig: anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{
				Schema: resultSchema.Definition,
			},
		},
	}

	msg, err := r.client.Messages.New(ctx, params)
	if err != nil {
		return "", mapAnthropicError(err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return parseResult(json.RawMessage(block.Text))
		}
	}
	return "", &ErrInvalidResponse{
		Err: fmt.Errorf("no text content in Anthropic response"),
	}
}

func (r *AnthropicRecognizer) ModelID() string {
	return r.model
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// If not in the map, use as-is (allows direct model IDs).
	return name
}
