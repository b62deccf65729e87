// Package recognize turns rendered handwriting images into Korean text
// using a vision-capable model provider.
package recognize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Recognizer identifies Korean text in a PNG image of handwriting.
type Recognizer interface {
	// Recognize returns the Korean text found in the image, or an
	// empty string when the writing is not legible Korean.
	Recognize(ctx context.Context, png []byte) (string, error)

	// ModelID returns the underlying model identifier.
	ModelID() string
}

// prompt is shared by all vision providers. Providers that support
// structured output pair it with resultSchema.
const prompt = "Identify the Korean character or word written in this image. " +
	"Respond with the Korean text only. If the image does not contain " +
	"legible Korean writing, return an empty string."

// resultSchema constrains provider output to {"korean": "..."}.
var resultSchema = &Schema{
	Name: "recognition_result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"korean": map[string]any{
				"type":        "string",
				"description": "The Korean text in the image, or empty if none",
			},
		},
		"required":             []any{"korean"},
		"additionalProperties": false,
	},
}

// Schema describes a JSON Schema for structured provider output.
type Schema struct {
	Name       string
	Definition map[string]any
}

// result is the wire shape every provider returns.
type result struct {
	Korean string `json:"korean"`
}

// parseResult validates and decodes a provider's raw JSON response.
func parseResult(raw json.RawMessage) (string, error) {
	if err := validateResult(resultSchema, raw); err != nil {
		return "", err
	}
	var r result
	if err := json.Unmarshal(raw, &r); err != nil {
		return "", &ErrInvalidResponse{Content: raw, Err: err}
	}
	return strings.TrimSpace(r.Korean), nil
}

// ErrInvalidResponse indicates the provider returned content that does
// not conform to the expected result shape.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid recognition response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recognition provider unavailable: %v", e.Err)
	}
	return "recognition provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error.
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("recognition rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }
