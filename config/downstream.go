package config

import (
	"fmt"
	"os"
)

type DownstreamConfig struct {
	NotificationUrl string
}

func GetDownstreamConfig() (*DownstreamConfig, error) {
	notificationUrl := os.Getenv("COMPLETION_NOTIFICATION_URL")
	if notificationUrl == "" {
		return nil, fmt.Errorf("COMPLETION_NOTIFICATION_URL must be set")
	}

	return &DownstreamConfig{
		NotificationUrl: notificationUrl,
	}, nil
}
