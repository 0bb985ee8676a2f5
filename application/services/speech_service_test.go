package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/panjf2000/ants/v2"

	"github.com/rajesharyain/magination/application/ports/inbound"
	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/domain"
	"github.com/rajesharyain/magination/infrastructure/adapters"
)

type recordingSynthesizer struct {
	mu       sync.Mutex
	requests []outbound.SynthesizeSpeechParams
	failOn   string
}

func (r *recordingSynthesizer) Synthesize(_ context.Context, params outbound.SynthesizeSpeechParams) ([]byte, error) {
	r.mu.Lock()
	r.requests = append(r.requests, params)
	r.mu.Unlock()
	if r.failOn != "" && params.Text == r.failOn {
		return nil, errors.New("engine refused")
	}
	return []byte("audio:" + params.Text), nil
}

func newTestSpeech(t *testing.T, synth outbound.SpeechSynthesizerPort) inbound.SpeechPort {
	t.Helper()

	workerPool, err := ants.NewPool(8)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(workerPool.Release)

	return NewSpeechService(synth, &fakeAssetStore{}, workerPool, adapters.NewZerologWrapper())
}

func TestSpeechService_GenerateAudio(t *testing.T) {
	synth := &recordingSynthesizer{}
	speech := newTestSpeech(t, synth)

	audioURL, err := speech.GenerateAudio(context.Background(), inbound.GenerateAudioParams{
		Text:    "hello",
		Emotion: "happy",
		Speed:   1.0,
	})
	if err != nil {
		t.Fatal("Failed to generate audio:", err)
	}
	if !strings.HasPrefix(audioURL, "/uploads/") {
		t.Fatalf("audio URL %q does not start with /uploads/", audioURL)
	}
	if !strings.HasSuffix(audioURL, ".mp3") {
		t.Fatalf("audio URL %q is not an mp3", audioURL)
	}

	if len(synth.requests) != 1 {
		t.Fatalf("synthesizer called %d times, want 1", len(synth.requests))
	}
	req := synth.requests[0]
	if req.LanguageCode != domain.DefaultLanguageCode {
		t.Fatalf("language = %q, want default", req.LanguageCode)
	}
	if req.Speed != 1.2 {
		t.Fatalf("speed = %v, want happy bias 1.2", req.Speed)
	}
}

func TestSpeechService_GenerateAudio_EmptyText(t *testing.T) {
	speech := newTestSpeech(t, &recordingSynthesizer{})

	_, err := speech.GenerateAudio(context.Background(), inbound.GenerateAudioParams{})
	if !errors.Is(err, domain.ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
}

func TestSpeechService_ProcessScript_KeepsSceneOrder(t *testing.T) {
	speech := newTestSpeech(t, &recordingSynthesizer{})

	script := `[
		{"text": "scene one"},
		{"text": "scene two", "language": "French"},
		{"text": "scene three", "language": "Japanese"}
	]`

	audioFiles, err := speech.ProcessScript(context.Background(), []byte(script))
	if err != nil {
		t.Fatal("Failed to process script:", err)
	}

	if len(audioFiles) != 3 {
		t.Fatalf("got %d audio files, want 3", len(audioFiles))
	}
	for i, want := range []string{"scene one", "scene two", "scene three"} {
		if audioFiles[i].Scene.Text != want {
			t.Fatalf("scene %d is %q, want %q", i, audioFiles[i].Scene.Text, want)
		}
		if !strings.HasPrefix(audioFiles[i].AudioURL, "/uploads/") {
			t.Fatalf("scene %d URL %q does not start with /uploads/", i, audioFiles[i].AudioURL)
		}
	}
}

func TestSpeechService_ProcessScript_BadJSON(t *testing.T) {
	speech := newTestSpeech(t, &recordingSynthesizer{})

	_, err := speech.ProcessScript(context.Background(), []byte("not json"))
	if !errors.Is(err, domain.ErrBadScript) {
		t.Fatalf("err = %v, want ErrBadScript", err)
	}
}

func TestSpeechService_ProcessScript_SceneFailureFailsBatch(t *testing.T) {
	speech := newTestSpeech(t, &recordingSynthesizer{failOn: "bad scene"})

	script := `[
		{"text": "fine"},
		{"text": "bad scene"},
		{"text": "also fine"}
	]`

	if _, err := speech.ProcessScript(context.Background(), []byte(script)); err == nil {
		t.Fatal("expected the batch to fail")
	}
}

func TestSpeechService_ProcessScript_EmptySceneText(t *testing.T) {
	speech := newTestSpeech(t, &recordingSynthesizer{})

	_, err := speech.ProcessScript(context.Background(), []byte(`[{"text": ""}]`))
	if !errors.Is(err, domain.ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
}

func TestSpeechService_ProcessScript_EmptyScript(t *testing.T) {
	speech := newTestSpeech(t, &recordingSynthesizer{})

	audioFiles, err := speech.ProcessScript(context.Background(), []byte(`[]`))
	if err != nil {
		t.Fatal("empty script must succeed:", err)
	}
	if len(audioFiles) != 0 {
		t.Fatalf("got %d audio files, want 0", len(audioFiles))
	}
}
