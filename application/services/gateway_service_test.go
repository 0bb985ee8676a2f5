package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/panjf2000/ants/v2"

	"github.com/rajesharyain/magination/application/ports/inbound"
	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/domain"
	"github.com/rajesharyain/magination/infrastructure/adapters"
)

type fakeAssetStore struct {
	mu     sync.Mutex
	stored []outbound.StoreAssetParams
}

func (f *fakeAssetStore) Store(_ context.Context, params outbound.StoreAssetParams) (*domain.UploadedAsset, error) {
	f.mu.Lock()
	f.stored = append(f.stored, params)
	f.mu.Unlock()
	return &domain.UploadedAsset{
		StoredName: "1700000000000-" + params.OriginalName,
		URL:        "/uploads/1700000000000-" + params.OriginalName,
		SizeBytes:  int64(len(params.Content)),
	}, nil
}

type failingVoiceProvider struct{}

func (f *failingVoiceProvider) Synthesize(_ context.Context, _ string) (string, error) {
	return "", errors.New("provider down")
}

func newTestGateway(t *testing.T, voice outbound.VoiceProviderPort) inbound.PipelineGatewayPort {
	t.Helper()

	workerPool, err := ants.NewPool(4)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(workerPool.Release)

	return NewGatewayService(
		&fakeAssetStore{},
		adapters.NewNoopAssetMirror(),
		adapters.NewNoopAssetCatalog(),
		voice,
		adapters.NewMockAnimationProvider(),
		workerPool,
		adapters.NewZerologWrapper(),
	)
}

func TestGatewayService_UploadImage(t *testing.T) {
	gateway := newTestGateway(t, adapters.NewMockVoiceProvider())

	asset, err := gateway.UploadImage(context.Background(), inbound.UploadImageParams{
		Content:      []byte("png"),
		OriginalName: "cat.png",
	})
	if err != nil {
		t.Fatal("Failed to upload image:", err)
	}
	if asset.URL == "" {
		t.Fatal("uploaded asset has no URL")
	}
}

func TestGatewayService_UploadImage_NoFile(t *testing.T) {
	gateway := newTestGateway(t, adapters.NewMockVoiceProvider())

	_, err := gateway.UploadImage(context.Background(), inbound.UploadImageParams{OriginalName: "cat.png"})
	if !errors.Is(err, domain.ErrNoFile) {
		t.Fatalf("err = %v, want ErrNoFile", err)
	}
}

func TestGatewayService_SynthesizeVoice(t *testing.T) {
	gateway := newTestGateway(t, adapters.NewMockVoiceProvider())

	res, err := gateway.SynthesizeVoice(context.Background(), "hello")
	if err != nil {
		t.Fatal("Failed to synthesize voice:", err)
	}
	if res.AudioURL != adapters.MockAudioURL {
		t.Fatalf("audio URL = %q, want %q", res.AudioURL, adapters.MockAudioURL)
	}
}

func TestGatewayService_SynthesizeVoice_EmptyPrompt(t *testing.T) {
	gateway := newTestGateway(t, adapters.NewMockVoiceProvider())

	_, err := gateway.SynthesizeVoice(context.Background(), "")
	if !errors.Is(err, domain.ErrEmptyPrompt) {
		t.Fatalf("err = %v, want ErrEmptyPrompt", err)
	}
}

func TestGatewayService_SynthesizeVoice_ProviderError(t *testing.T) {
	gateway := newTestGateway(t, &failingVoiceProvider{})

	_, err := gateway.SynthesizeVoice(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected provider error")
	}
	if errors.Is(err, domain.ErrEmptyPrompt) {
		t.Fatal("provider failure must not look like a validation error")
	}
}

func TestGatewayService_AnimateImage(t *testing.T) {
	gateway := newTestGateway(t, adapters.NewMockVoiceProvider())

	res, err := gateway.AnimateImage(context.Background(), "/uploads/cat.png", adapters.MockAudioURL)
	if err != nil {
		t.Fatal("Failed to animate image:", err)
	}
	if res.VideoURL != adapters.MockVideoURL {
		t.Fatalf("video URL = %q, want %q", res.VideoURL, adapters.MockVideoURL)
	}
}

func TestGatewayService_AnimateImage_MissingParams(t *testing.T) {
	gateway := newTestGateway(t, adapters.NewMockVoiceProvider())

	for _, pair := range [][2]string{
		{"", adapters.MockAudioURL},
		{"/uploads/cat.png", ""},
		{"", ""},
	} {
		if _, err := gateway.AnimateImage(context.Background(), pair[0], pair[1]); !errors.Is(err, domain.ErrMissingParams) {
			t.Fatalf("AnimateImage(%q, %q) err = %v, want ErrMissingParams", pair[0], pair[1], err)
		}
	}
}
