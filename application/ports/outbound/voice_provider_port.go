package outbound

import "context"

// VoiceProviderPort turns a text prompt into spoken audio and returns the
// URL of the generated clip.
type VoiceProviderPort interface {
	Synthesize(ctx context.Context, prompt string) (string, error)
}
