package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/config"
)

type speechApiRequest struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Speed    float64 `json:"speed"`
}

type httpSpeechSynthesizer struct {
	ContentFetcher
	speechConfig *config.SpeechConfig
	logger       outbound.LoggerPort
}

// NewHTTPSpeechSynthesizer calls a remote TTS engine that answers with raw
// audio bytes.
func NewHTTPSpeechSynthesizer(contentFetcher ContentFetcher, speechConfig *config.SpeechConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &httpSpeechSynthesizer{
		ContentFetcher: contentFetcher,
		speechConfig:   speechConfig,
		logger:         logger,
	}
}

func (s *httpSpeechSynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeSpeechParams) ([]byte, error) {
	jsonPayload, err := json.Marshal(speechApiRequest{
		Text:     params.Text,
		Language: params.LanguageCode,
		Speed:    params.Speed,
	})
	if err != nil {
		s.logger.Error(err, "Failed to marshal the speech request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.speechConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		s.logger.Error(err, "Failed to create the speech HTTP request")
		return nil, err
	}

	req.Header.Add("Accept", "audio/mpeg")
	req.Header.Add("Content-Type", "application/json")

	return s.FetchContent(req)
}

// mockSpeechSynthesizer fabricates a tiny payload so the whole speech path,
// storage included, works without a real engine.
type mockSpeechSynthesizer struct{}

func NewMockSpeechSynthesizer() outbound.SpeechSynthesizerPort {
	return &mockSpeechSynthesizer{}
}

func (m *mockSpeechSynthesizer) Synthesize(_ context.Context, params outbound.SynthesizeSpeechParams) ([]byte, error) {
	payload := append([]byte("ID3"), []byte(params.LanguageCode+":"+params.Text)...)
	return payload, nil
}
