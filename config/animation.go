package config

import (
	"fmt"
	"os"
)

type AnimationConfig struct {
	Provider string
	ApiUrl   string
	ApiKey   string
}

func GetAnimationConfig() (*AnimationConfig, error) {
	provider := os.Getenv("ANIMATION_PROVIDER")
	if provider == "" {
		provider = ProviderMock
	}
	if provider != ProviderMock && provider != ProviderHTTP {
		return nil, fmt.Errorf("unknown ANIMATION_PROVIDER %q", provider)
	}

	apiUrl := os.Getenv("ANIMATION_API_URL")
	if provider == ProviderHTTP && apiUrl == "" {
		return nil, fmt.Errorf("ANIMATION_API_URL must be set")
	}

	return &AnimationConfig{
		Provider: provider,
		ApiUrl:   apiUrl,
		ApiKey:   os.Getenv("ANIMATION_API_KEY"),
	}, nil
}
