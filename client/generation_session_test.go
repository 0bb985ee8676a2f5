package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyGeneration_SelectImageResetsResult(t *testing.T) {
	s := GenerationSnapshot{
		State:    StateReady,
		VideoURL: "https://example.com/mock-video.mp4",
	}

	s = ApplyGeneration(s, SelectImage{Name: "cat.png"})

	require.Equal(t, StateImageSelected, s.State)
	require.Equal(t, "cat.png", s.ImageName)
	require.Empty(t, s.VideoURL)
	require.Empty(t, s.ErrMessage)
}

func TestApplyGeneration_SubmitNeedsImageAndPrompt(t *testing.T) {
	s := GenerationSnapshot{}

	require.Equal(t, StateIdle, ApplyGeneration(s, Submit{}).State)

	s = ApplyGeneration(s, SelectImage{Name: "cat.png"})
	require.Equal(t, StateImageSelected, ApplyGeneration(s, Submit{}).State)

	s = ApplyGeneration(s, SetPrompt{Text: "hello"})
	require.Equal(t, StateGenerating, ApplyGeneration(s, Submit{}).State)
}

func TestApplyGeneration_SubmitWhileGeneratingIsIgnored(t *testing.T) {
	s := GenerationSnapshot{}
	s = ApplyGeneration(s, SelectImage{Name: "cat.png"})
	s = ApplyGeneration(s, SetPrompt{Text: "hello"})
	s = ApplyGeneration(s, Submit{})

	generation := s.Generation
	s = ApplyGeneration(s, Submit{})

	require.Equal(t, StateGenerating, s.State)
	require.Equal(t, generation, s.Generation)
}

func TestApplyGeneration_CompletionTransitions(t *testing.T) {
	s := GenerationSnapshot{}
	s = ApplyGeneration(s, SelectImage{Name: "cat.png"})
	s = ApplyGeneration(s, SetPrompt{Text: "hello"})
	s = ApplyGeneration(s, Submit{})

	done := ApplyGeneration(s, ChainSucceeded{Generation: s.Generation, VideoURL: "https://cdn/video.mp4"})
	require.Equal(t, StateReady, done.State)
	require.Equal(t, "https://cdn/video.mp4", done.VideoURL)

	failed := ApplyGeneration(s, ChainFailed{Generation: s.Generation, Message: "voice generation failed"})
	require.Equal(t, StateFailed, failed.State)
	require.Equal(t, "voice generation failed", failed.ErrMessage)
}

func TestApplyGeneration_StaleCompletionIsDiscarded(t *testing.T) {
	s := GenerationSnapshot{}
	s = ApplyGeneration(s, SelectImage{Name: "cat.png"})
	s = ApplyGeneration(s, SetPrompt{Text: "hello"})
	s = ApplyGeneration(s, Submit{})
	staleGeneration := s.Generation

	// Picking a new image mid-chain invalidates the running chain.
	s = ApplyGeneration(s, SelectImage{Name: "dog.png"})
	s = ApplyGeneration(s, Submit{})

	s = ApplyGeneration(s, ChainSucceeded{Generation: staleGeneration, VideoURL: "https://cdn/stale.mp4"})

	require.Equal(t, StateGenerating, s.State)
	require.Empty(t, s.VideoURL)

	s = ApplyGeneration(s, ChainFailed{Generation: staleGeneration, Message: "stale failure"})
	require.Equal(t, StateGenerating, s.State)
	require.Empty(t, s.ErrMessage)
}
