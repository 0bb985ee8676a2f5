package inbound

import (
	"context"

	"github.com/rajesharyain/magination/domain"
)

type UploadImageParams struct {
	Content      []byte
	OriginalName string
}

// PipelineGatewayPort is the stateless façade over the generation
// providers. Each operation validates its inputs and delegates; no state is
// shared between calls.
type PipelineGatewayPort interface {
	UploadImage(ctx context.Context, params UploadImageParams) (*domain.UploadedAsset, error)
	SynthesizeVoice(ctx context.Context, prompt string) (*domain.VoiceSynthesisResult, error)
	AnimateImage(ctx context.Context, imageURL, audioURL string) (*domain.AnimationResult, error)
}
