package config

import (
	"fmt"
	"os"
)

type SpeechConfig struct {
	Engine string
	ApiUrl string
}

func GetSpeechConfig() (*SpeechConfig, error) {
	engine := os.Getenv("SPEECH_ENGINE")
	if engine == "" {
		engine = ProviderMock
	}
	if engine != ProviderMock && engine != ProviderHTTP {
		return nil, fmt.Errorf("unknown SPEECH_ENGINE %q", engine)
	}

	apiUrl := os.Getenv("SPEECH_API_URL")
	if engine == ProviderHTTP && apiUrl == "" {
		return nil, fmt.Errorf("SPEECH_API_URL must be set")
	}

	return &SpeechConfig{
		Engine: engine,
		ApiUrl: apiUrl,
	}, nil
}
