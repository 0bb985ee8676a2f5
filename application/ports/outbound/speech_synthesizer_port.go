package outbound

import "context"

type SynthesizeSpeechParams struct {
	Text         string
	LanguageCode string
	Speed        float64
}

// SpeechSynthesizerPort produces raw audio bytes for a piece of text.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeSpeechParams) ([]byte, error)
}
