package services

import (
	"context"

	"github.com/rajesharyain/magination/application/ports/inbound"
	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/domain"
)

type gatewayService struct {
	assetStore        outbound.AssetStorePort
	assetMirror       outbound.AssetMirrorPort
	assetCatalog      outbound.AssetCatalogPort
	voiceProvider     outbound.VoiceProviderPort
	animationProvider outbound.AnimationProviderPort
	workerPool        outbound.TaskDispatcher
	logger            outbound.LoggerPort
}

func NewGatewayService(
	assetStore outbound.AssetStorePort,
	assetMirror outbound.AssetMirrorPort,
	assetCatalog outbound.AssetCatalogPort,
	voiceProvider outbound.VoiceProviderPort,
	animationProvider outbound.AnimationProviderPort,
	workerPool outbound.TaskDispatcher,
	logger outbound.LoggerPort) inbound.PipelineGatewayPort {
	return &gatewayService{
		assetStore:        assetStore,
		assetMirror:       assetMirror,
		assetCatalog:      assetCatalog,
		voiceProvider:     voiceProvider,
		animationProvider: animationProvider,
		workerPool:        workerPool,
		logger:            logger,
	}
}

func (s *gatewayService) UploadImage(ctx context.Context, params inbound.UploadImageParams) (*domain.UploadedAsset, error) {
	if len(params.Content) == 0 {
		return nil, domain.ErrNoFile
	}

	asset, err := s.assetStore.Store(ctx, outbound.StoreAssetParams{
		Content:      params.Content,
		OriginalName: params.OriginalName,
	})
	if err != nil {
		s.logger.Error(err, "failed to store uploaded image")
		return nil, err
	}

	// Mirroring and cataloging are best-effort and must not delay or fail
	// the upload response, so they run detached from the request context.
	content := params.Content
	if err := s.workerPool.Submit(func() {
		if mirrorErr := s.assetMirror.Mirror(context.Background(), *asset, content); mirrorErr != nil {
			s.logger.Error(mirrorErr, "failed to mirror uploaded image")
		}
		if catalogErr := s.assetCatalog.Record(context.Background(), *asset); catalogErr != nil {
			s.logger.Error(catalogErr, "failed to record uploaded image")
		}
	}); err != nil {
		s.logger.Error(err, "failed to submit mirror task")
	}

	return asset, nil
}

func (s *gatewayService) SynthesizeVoice(ctx context.Context, prompt string) (*domain.VoiceSynthesisResult, error) {
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}

	audioURL, err := s.voiceProvider.Synthesize(ctx, prompt)
	if err != nil {
		s.logger.ErrorWithFields(err, "voice provider failed", map[string]interface{}{
			"prompt": prompt,
		})
		return nil, err
	}

	return &domain.VoiceSynthesisResult{AudioURL: audioURL}, nil
}

func (s *gatewayService) AnimateImage(ctx context.Context, imageURL, audioURL string) (*domain.AnimationResult, error) {
	if imageURL == "" || audioURL == "" {
		return nil, domain.ErrMissingParams
	}

	videoURL, err := s.animationProvider.Animate(ctx, outbound.AnimateParams{
		ImageURL: imageURL,
		AudioURL: audioURL,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "animation provider failed", map[string]interface{}{
			"imageUrl": imageURL,
			"audioUrl": audioURL,
		})
		return nil, err
	}

	return &domain.AnimationResult{VideoURL: videoURL}, nil
}
