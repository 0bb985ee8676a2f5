package outbound

import "context"

type AnimateParams struct {
	ImageURL string
	AudioURL string
}

// AnimationProviderPort binds an image and an audio track into a talking
// head video and returns its URL.
type AnimationProviderPort interface {
	Animate(ctx context.Context, params AnimateParams) (string, error)
}
