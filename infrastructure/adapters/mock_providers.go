package adapters

import (
	"context"

	"github.com/rajesharyain/magination/application/ports/outbound"
)

// Placeholder URLs returned until real provider integrations land.
const (
	MockAudioURL = "https://example.com/mock-audio.mp3"
	MockVideoURL = "https://example.com/mock-video.mp4"
)

type mockVoiceProvider struct{}

func NewMockVoiceProvider() outbound.VoiceProviderPort {
	return &mockVoiceProvider{}
}

func (m *mockVoiceProvider) Synthesize(_ context.Context, _ string) (string, error) {
	return MockAudioURL, nil
}

type mockAnimationProvider struct{}

func NewMockAnimationProvider() outbound.AnimationProviderPort {
	return &mockAnimationProvider{}
}

func (m *mockAnimationProvider) Animate(_ context.Context, _ outbound.AnimateParams) (string, error) {
	return MockVideoURL, nil
}
