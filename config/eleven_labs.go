package config

import (
	"fmt"
	"os"
)

type ElevenLabsConfig struct {
	ApiUrl         string
	ApiKey         string
	DefaultModelId string
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.elevenlabs.io"
	}
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	modelId := os.Getenv("ELEVEN_LABS_MODEL_ID")
	if modelId == "" {
		modelId = "eleven_multilingual_v2"
	}

	return &ElevenLabsConfig{
		ApiUrl:         apiUrl,
		ApiKey:         apiKey,
		DefaultModelId: modelId,
	}, nil
}
