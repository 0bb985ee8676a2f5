package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rajesharyain/magination/application/ports/inbound"
	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/channel_utils"
	"github.com/rajesharyain/magination/domain"
)

type speechService struct {
	synthesizer outbound.SpeechSynthesizerPort
	assetStore  outbound.AssetStorePort
	workerPool  outbound.TaskDispatcher
	logger      outbound.LoggerPort
}

func NewSpeechService(
	synthesizer outbound.SpeechSynthesizerPort,
	assetStore outbound.AssetStorePort,
	workerPool outbound.TaskDispatcher,
	logger outbound.LoggerPort) inbound.SpeechPort {
	return &speechService{
		synthesizer: synthesizer,
		assetStore:  assetStore,
		workerPool:  workerPool,
		logger:      logger,
	}
}

func (s *speechService) Languages() map[string]string {
	return domain.Languages
}

func (s *speechService) Emotions() map[string]domain.EmotionProfile {
	return domain.Emotions
}

func (s *speechService) GenerateAudio(ctx context.Context, params inbound.GenerateAudioParams) (string, error) {
	if params.Text == "" {
		return "", domain.ErrEmptyText
	}

	languageCode := params.LanguageCode
	if languageCode == "" {
		languageCode = domain.DefaultLanguageCode
	}

	audio, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechParams{
		Text:         params.Text,
		LanguageCode: languageCode,
		Speed:        domain.EffectiveSpeed(params.Emotion, params.Speed),
	})
	if err != nil {
		s.logger.Error(err, "speech synthesis failed")
		return "", err
	}

	asset, err := s.assetStore.Store(ctx, outbound.StoreAssetParams{
		Content:      audio,
		OriginalName: uuid.NewString() + ".mp3",
	})
	if err != nil {
		s.logger.Error(err, "failed to store generated audio")
		return "", err
	}

	return asset.URL, nil
}

// ProcessScript synthesizes every scene of an uploaded script concurrently
// and returns the clips in scene order. The first failure cancels the rest
// of the batch.
func (s *speechService) ProcessScript(ctx context.Context, scriptJSON []byte) ([]domain.SceneAudio, error) {
	var scenes []domain.Scene
	if err := json.Unmarshal(scriptJSON, &scenes); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadScript, err)
	}

	if len(scenes) == 0 {
		return []domain.SceneAudio{}, nil
	}

	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]domain.SceneAudio, len(scenes))
	errChs := make([]<-chan error, 0, len(scenes))

	for i, scene := range scenes {
		i, scene := i, scene
		errCh := make(chan error, 1)
		errChs = append(errChs, errCh)

		if err := s.workerPool.Submit(func() {
			defer close(errCh)
			audioURL, sceneErr := s.synthesizeScene(newCtx, scene)
			if sceneErr != nil {
				s.logger.ErrorWithFields(sceneErr, "failed to synthesize scene", map[string]interface{}{
					"ordinal": i,
				})
				cancel()
				errCh <- sceneErr
				return
			}
			results[i] = domain.SceneAudio{Scene: scene, AudioURL: audioURL}
		}); err != nil {
			close(errCh)
			cancel()
			return nil, err
		}
	}

	mergedErrCh, err := channel_utils.MergeChannels(s.workerPool, errChs...)
	if err != nil {
		s.logger.Error(err, "failed to merge scene error channels")
		return nil, err
	}

	var firstErr error
	for sceneErr := range mergedErrCh {
		if firstErr == nil {
			firstErr = sceneErr
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

func (s *speechService) synthesizeScene(ctx context.Context, scene domain.Scene) (string, error) {
	if scene.Text == "" {
		return "", domain.ErrEmptyText
	}

	audio, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechParams{
		Text:         scene.Text,
		LanguageCode: domain.LanguageCode(scene.Language),
		Speed:        domain.Emotions[domain.DefaultEmotion].Speed,
	})
	if err != nil {
		return "", err
	}

	asset, err := s.assetStore.Store(ctx, outbound.StoreAssetParams{
		Content:      audio,
		OriginalName: uuid.NewString() + ".mp3",
	})
	if err != nil {
		return "", err
	}

	return asset.URL, nil
}
