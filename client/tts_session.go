package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/rajesharyain/magination/domain"
	"github.com/rajesharyain/magination/infrastructure/gin_interface/dto"
)

// TtsSession tracks the standalone text-to-speech panel: option catalogs,
// the current parameters and the last result. Independent from the
// generation session.
type TtsSession struct {
	mu     sync.Mutex
	client *Client

	languages map[string]string
	emotions  map[string]domain.EmotionProfile

	text     string
	language string
	emotion  string
	speed    float64

	audioURL   string
	errMessage string
	loading    bool
}

func NewTtsSession(client *Client) *TtsSession {
	return &TtsSession{
		client:   client,
		language: domain.DefaultLanguageCode,
		emotion:  domain.DefaultEmotion,
		speed:    1.0,
	}
}

// LoadOptions fetches the language and emotion catalogs. A failure leaves
// the session usable; it only sets the visible error message.
func (t *TtsSession) LoadOptions(ctx context.Context) {
	languages, err := t.client.Languages(ctx)
	if err != nil {
		t.setError("Failed to load options")
		return
	}

	emotions, err := t.client.Emotions(ctx)
	if err != nil {
		t.setError("Failed to load options")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.languages = languages
	t.emotions = emotions
	t.errMessage = ""
}

func (t *TtsSession) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = text
}

func (t *TtsSession) SetLanguage(code string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.language = code
}

func (t *TtsSession) SetEmotion(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.emotion = label
}

// SetSpeed clamps at the producer boundary; out-of-range values never leave
// the session.
func (t *TtsSession) SetSpeed(speed float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.speed = domain.ClampSpeed(speed)
}

// GenerateAudio sends the current parameters to the gateway. At most one
// generation runs at a time.
func (t *TtsSession) GenerateAudio(ctx context.Context) error {
	t.mu.Lock()
	if t.loading {
		t.mu.Unlock()
		return fmt.Errorf("a generation is already in flight")
	}
	if t.text == "" {
		t.mu.Unlock()
		return domain.ErrEmptyText
	}
	t.loading = true
	t.errMessage = ""
	req := dto.GenerateAudioRequest{
		Text:     t.text,
		Language: t.language,
		Emotion:  t.emotion,
		Speed:    domain.ClampSpeed(t.speed),
	}
	t.mu.Unlock()

	audioURL, err := t.client.GenerateAudio(ctx, req)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	if err != nil {
		t.errMessage = "Error generating audio"
		return err
	}
	t.audioURL = audioURL
	return nil
}

func (t *TtsSession) Languages() map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.languages
}

func (t *TtsSession) Emotions() map[string]domain.EmotionProfile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.emotions
}

func (t *TtsSession) AudioURL() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.audioURL
}

func (t *TtsSession) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMessage
}

func (t *TtsSession) IsLoading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

func (t *TtsSession) setError(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errMessage = msg
}
