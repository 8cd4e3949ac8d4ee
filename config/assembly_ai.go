package config

import (
	"fmt"
	"os"
)

type AssemblyAIConfig struct {
	ApiUrl string
	ApiKey string
}

func GetAssemblyAIConfig() (*AssemblyAIConfig, error) {
	apiUrl := os.Getenv("ASSEMBLY_AI_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.assemblyai.com"
	}
	apiKey := os.Getenv("ASSEMBLY_AI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ASSEMBLY_AI_API_KEY must be set")
	}

	return &AssemblyAIConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
	}, nil
}
