package config

import (
	"fmt"
	"os"
)

type RemotionConfig struct {
	Region        string
	FunctionName  string
	ServeUrl      string
	CompositionId string
	WebhookUrl    string
	WebhookSecret string
}

func GetRemotionConfig() (*RemotionConfig, error) {
	region := os.Getenv("REMOTION_AWS_REGION")
	if region == "" {
		return nil, fmt.Errorf("REMOTION_AWS_REGION must be set")
	}
	functionName := os.Getenv("REMOTION_FUNCTION_NAME")
	if functionName == "" {
		return nil, fmt.Errorf("REMOTION_FUNCTION_NAME must be set")
	}
	serveUrl := os.Getenv("REMOTION_SERVE_URL")
	if serveUrl == "" {
		return nil, fmt.Errorf("REMOTION_SERVE_URL must be set")
	}
	compositionId := os.Getenv("REMOTION_COMPOSITION_ID")
	if compositionId == "" {
		compositionId = "Main"
	}
	webhookUrl := os.Getenv("WEBHOOK_URL")
	if webhookUrl == "" {
		return nil, fmt.Errorf("WEBHOOK_URL must be set")
	}
	webhookSecret := os.Getenv("WEBHOOK_SECRET")
	if webhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET must be set")
	}

	return &RemotionConfig{
		Region:        region,
		FunctionName:  functionName,
		ServeUrl:      serveUrl,
		CompositionId: compositionId,
		WebhookUrl:    webhookUrl,
		WebhookSecret: webhookSecret,
	}, nil
}
