package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/config"
)

type animationApiRequest struct {
	ImageUrl string `json:"image_url"`
	AudioUrl string `json:"audio_url"`
}

type animationApiResponse struct {
	VideoUrl string `json:"video_url"`
}

type httpAnimationProvider struct {
	ContentFetcher
	animationConfig *config.AnimationConfig
	logger          outbound.LoggerPort
}

// NewHTTPAnimationProvider calls a remote talking-head animation API.
func NewHTTPAnimationProvider(contentFetcher ContentFetcher, animationConfig *config.AnimationConfig, logger outbound.LoggerPort) outbound.AnimationProviderPort {
	return &httpAnimationProvider{
		ContentFetcher:  contentFetcher,
		animationConfig: animationConfig,
		logger:          logger,
	}
}

func (p *httpAnimationProvider) Animate(ctx context.Context, params outbound.AnimateParams) (string, error) {
	req, err := p.getRequest(ctx, params)
	if err != nil {
		p.logger.Error(err, "Failed to construct the animation request")
		return "", err
	}

	rawRes, err := p.FetchContent(req)
	if err != nil {
		p.logger.Error(err, "Failed to fetch animation result")
		return "", err
	}

	var apiRes animationApiResponse
	if err := json.Unmarshal(rawRes, &apiRes); err != nil {
		p.logger.Error(err, "Failed to unmarshal the animation response")
		return "", err
	}

	return apiRes.VideoUrl, nil
}

func (p *httpAnimationProvider) getRequest(ctx context.Context, params outbound.AnimateParams) (*http.Request, error) {
	jsonPayload, err := json.Marshal(animationApiRequest{
		ImageUrl: params.ImageURL,
		AudioUrl: params.AudioURL,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.animationConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	if p.animationConfig.ApiKey != "" {
		req.Header.Add("Authorization", "Bearer "+p.animationConfig.ApiKey)
	}

	return req, nil
}
