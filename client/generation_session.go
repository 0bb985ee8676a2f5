package client

import (
	"context"
	"fmt"
	"sync"
)

type GenerationState int

const (
	StateIdle GenerationState = iota
	StateImageSelected
	StateGenerating
	StateReady
	StateFailed
)

func (s GenerationState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateImageSelected:
		return "ImageSelected"
	case StateGenerating:
		return "Generating"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// GenerationSnapshot is the full state of one talking-head request. The
// Generation counter tags in-flight chains; completion events carrying a
// stale counter are discarded, which replaces request cancellation.
type GenerationSnapshot struct {
	State      GenerationState
	ImageName  string
	Prompt     string
	VideoURL   string
	ErrMessage string
	Generation uint64
}

type GenerationEvent interface {
	isGenerationEvent()
}

// SelectImage starts over with a fresh image and invalidates any chain
// still in flight.
type SelectImage struct {
	Name string
}

type SetPrompt struct {
	Text string
}

type Submit struct{}

type ChainSucceeded struct {
	Generation uint64
	VideoURL   string
}

type ChainFailed struct {
	Generation uint64
	Message    string
}

func (SelectImage) isGenerationEvent()    {}
func (SetPrompt) isGenerationEvent()      {}
func (Submit) isGenerationEvent()         {}
func (ChainSucceeded) isGenerationEvent() {}
func (ChainFailed) isGenerationEvent()    {}

// ApplyGeneration is the pure transition function of the generation state
// machine.
func ApplyGeneration(s GenerationSnapshot, e GenerationEvent) GenerationSnapshot {
	switch event := e.(type) {
	case SelectImage:
		s.State = StateImageSelected
		s.ImageName = event.Name
		s.VideoURL = ""
		s.ErrMessage = ""
		s.Generation++
	case SetPrompt:
		s.Prompt = event.Text
	case Submit:
		if s.State == StateGenerating || s.ImageName == "" || s.Prompt == "" {
			return s
		}
		s.State = StateGenerating
		s.VideoURL = ""
		s.ErrMessage = ""
		s.Generation++
	case ChainSucceeded:
		if s.State != StateGenerating || event.Generation != s.Generation {
			return s
		}
		s.State = StateReady
		s.VideoURL = event.VideoURL
	case ChainFailed:
		if s.State != StateGenerating || event.Generation != s.Generation {
			return s
		}
		s.State = StateFailed
		s.ErrMessage = event.Message
	}
	return s
}

// GenerationSession drives the upload, voice and animation calls for one
// user against the gateway.
type GenerationSession struct {
	mu       sync.Mutex
	snapshot GenerationSnapshot
	client   *Client
}

func NewGenerationSession(client *Client) *GenerationSession {
	return &GenerationSession{
		client: client,
	}
}

func (s *GenerationSession) Snapshot() GenerationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *GenerationSession) Dispatch(e GenerationEvent) GenerationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = ApplyGeneration(s.snapshot, e)
	return s.snapshot
}

// Generate runs upload -> generate-voice -> animate sequentially,
// short-circuiting on the first failure. The chain's completion is dropped
// if a new image was selected while it ran.
func (s *GenerationSession) Generate(ctx context.Context, imageContent []byte) error {
	s.mu.Lock()
	s.snapshot = ApplyGeneration(s.snapshot, Submit{})
	if s.snapshot.State != StateGenerating {
		state := s.snapshot.State
		s.mu.Unlock()
		return fmt.Errorf("cannot generate from state %s: an image and a prompt are required", state)
	}
	generation := s.snapshot.Generation
	imageName := s.snapshot.ImageName
	prompt := s.snapshot.Prompt
	s.mu.Unlock()

	videoURL, err := s.runChain(ctx, imageContent, imageName, prompt)
	if err != nil {
		s.Dispatch(ChainFailed{Generation: generation, Message: err.Error()})
		return err
	}

	s.Dispatch(ChainSucceeded{Generation: generation, VideoURL: videoURL})
	return nil
}

func (s *GenerationSession) runChain(ctx context.Context, imageContent []byte, imageName, prompt string) (string, error) {
	imageURL, err := s.client.Upload(ctx, imageContent, imageName)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	audioURL, err := s.client.GenerateVoice(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("voice generation failed: %w", err)
	}

	videoURL, err := s.client.Animate(ctx, imageURL, audioURL)
	if err != nil {
		return "", fmt.Errorf("animation failed: %w", err)
	}

	return videoURL, nil
}
