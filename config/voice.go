package config

import (
	"fmt"
	"os"
)

const (
	ProviderMock = "mock"
	ProviderHTTP = "http"
)

type VoiceConfig struct {
	Provider string
	ApiUrl   string
	ApiKey   string
}

func GetVoiceConfig() (*VoiceConfig, error) {
	provider := os.Getenv("VOICE_PROVIDER")
	if provider == "" {
		provider = ProviderMock
	}
	if provider != ProviderMock && provider != ProviderHTTP {
		return nil, fmt.Errorf("unknown VOICE_PROVIDER %q", provider)
	}

	apiUrl := os.Getenv("VOICE_API_URL")
	if provider == ProviderHTTP && apiUrl == "" {
		return nil, fmt.Errorf("VOICE_API_URL must be set")
	}

	return &VoiceConfig{
		Provider: provider,
		ApiUrl:   apiUrl,
		ApiKey:   os.Getenv("VOICE_API_KEY"),
	}, nil
}
