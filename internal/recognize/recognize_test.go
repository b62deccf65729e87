package recognize

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestParseResult_Valid(t *testing.T) {
	got, err := parseResult(json.RawMessage(`{"korean":"사랑"}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "사랑" {
		t.Errorf("expected 사랑, got %q", got)
	}
}

func TestParseResult_TrimsWhitespace(t *testing.T) {
	got, err := parseResult(json.RawMessage(`{"korean":" 배 "}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "배" {
		t.Errorf("expected 배, got %q", got)
	}
}

func TestParseResult_EmptyKorean(t *testing.T) {
	got, err := parseResult(json.RawMessage(`{"korean":""}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestParseResult_MissingField(t *testing.T) {
	_, err := parseResult(json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for missing korean field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestParseResult_WrongType(t *testing.T) {
	_, err := parseResult(json.RawMessage(`{"korean":42}`))
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
}

func TestParseResult_InvalidJSON(t *testing.T) {
	_, err := parseResult(json.RawMessage(`not json`))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestMockRecognizer_FIFO(t *testing.T) {
	m := NewMockRecognizer(
		MockResult{Korean: "물"},
		MockResult{Korean: "불"},
	)

	got, err := m.Recognize(context.Background(), []byte("img1"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "물" {
		t.Errorf("expected 물, got %q", got)
	}

	got, err = m.Recognize(context.Background(), []byte("img2"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "불" {
		t.Errorf("expected 불, got %q", got)
	}

	if len(m.Calls) != 2 {
		t.Errorf("expected 2 recorded calls, got %d", len(m.Calls))
	}
}

func TestMockRecognizer_ExhaustedQueue(t *testing.T) {
	m := NewMockRecognizer()
	_, err := m.Recognize(context.Background(), nil)
	var unavailErr *ErrProviderUnavailable
	if !errors.As(err, &unavailErr) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestMockRecognizer_CannedError(t *testing.T) {
	wantErr := errors.New("boom")
	m := NewMockRecognizer(MockResult{Err: wantErr})
	_, err := m.Recognize(context.Background(), nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected canned error, got: %v", err)
	}
}

func TestNewRecognizer_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	r, err := NewRecognizer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if r.ModelID() != "mock" {
		t.Errorf("expected mock model ID, got %q", r.ModelID())
	}
}

func TestNewRecognizer_Unknown(t *testing.T) {
	cfg := Config{Provider: "carrier-pigeon"}
	if _, err := NewRecognizer(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"unknown provider", Config{Provider: "nope"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config with no keys set")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected config with OPENAI_API_KEY set")
	}
	if cfg.Provider != "openai" {
		t.Errorf("expected openai provider, got %q", cfg.Provider)
	}

	// Gemini takes priority when both are set.
	t.Setenv("GEMINI_API_KEY", "g-test")
	cfg, ok = DiscoverConfig()
	if !ok {
		t.Fatal("expected config")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("expected gemini provider, got %q", cfg.Provider)
	}
}
