package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/config"
)

type voiceApiRequest struct {
	Prompt string `json:"prompt"`
}

type voiceApiResponse struct {
	AudioUrl string `json:"audio_url"`
}

type httpVoiceProvider struct {
	ContentFetcher
	voiceConfig *config.VoiceConfig
	logger      outbound.LoggerPort
}

// NewHTTPVoiceProvider calls a remote voice-synthesis API and returns the
// URL of the generated clip.
func NewHTTPVoiceProvider(contentFetcher ContentFetcher, voiceConfig *config.VoiceConfig, logger outbound.LoggerPort) outbound.VoiceProviderPort {
	return &httpVoiceProvider{
		ContentFetcher: contentFetcher,
		voiceConfig:    voiceConfig,
		logger:         logger,
	}
}

func (p *httpVoiceProvider) Synthesize(ctx context.Context, prompt string) (string, error) {
	req, err := p.getRequest(ctx, prompt)
	if err != nil {
		p.logger.Error(err, "Failed to construct the voice synthesis request")
		return "", err
	}

	rawRes, err := p.FetchContent(req)
	if err != nil {
		p.logger.Error(err, "Failed to fetch voice synthesis result")
		return "", err
	}

	var apiRes voiceApiResponse
	if err := json.Unmarshal(rawRes, &apiRes); err != nil {
		p.logger.Error(err, "Failed to unmarshal the voice synthesis response")
		return "", err
	}

	return apiRes.AudioUrl, nil
}

func (p *httpVoiceProvider) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	jsonPayload, err := json.Marshal(voiceApiRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.voiceConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	if p.voiceConfig.ApiKey != "" {
		req.Header.Add("Authorization", "Bearer "+p.voiceConfig.ApiKey)
	}

	return req, nil
}
