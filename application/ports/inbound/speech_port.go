package inbound

import (
	"context"

	"github.com/rajesharyain/magination/domain"
)

type GenerateAudioParams struct {
	Text         string
	LanguageCode string
	Emotion      string
	Speed        float64
}

// SpeechPort is the text-to-speech surface: catalog lookups, single
// generation, and batch script processing.
type SpeechPort interface {
	Languages() map[string]string
	Emotions() map[string]domain.EmotionProfile
	GenerateAudio(ctx context.Context, params GenerateAudioParams) (string, error)
	ProcessScript(ctx context.Context, scriptJSON []byte) ([]domain.SceneAudio, error)
}
