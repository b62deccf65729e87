package speech

import "context"

// fallbackSpeaker retries a failed synthesis on a secondary speaker.
// Cloud providers are wrapped with the local synthesizer so a network
// or quota failure still produces audio.
type fallbackSpeaker struct {
	primary  Speaker
	fallback Speaker
}

// WithFallback wraps primary so its Speak errors are recovered by
// fallback. The error surfaces only when both fail.
func WithFallback(primary, fallback Speaker) Speaker {
	return &fallbackSpeaker{primary: primary, fallback: fallback}
}

func (f *fallbackSpeaker) Speak(ctx context.Context, text string) error {
	err := f.primary.Speak(ctx, text)
	if err == nil || ctx.Err() != nil {
		return err
	}
	return f.fallback.Speak(ctx, text)
}
