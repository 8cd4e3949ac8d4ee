package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/domain"
)

type httpNotificationForwarder struct {
	ContentFetcher
	logger           outbound.LoggerPort
	downstreamConfig *config.DownstreamConfig
}

// NewHTTPNotificationForwarder posts completion notifications to the
// configured downstream consumer.
func NewHTTPNotificationForwarder(contentFetcher ContentFetcher, downstreamConfig *config.DownstreamConfig, logger outbound.LoggerPort) outbound.NotificationForwarderPort {
	return &httpNotificationForwarder{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		downstreamConfig: downstreamConfig,
	}
}

func (f *httpNotificationForwarder) Forward(ctx context.Context, notification domain.WebhookNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		f.logger.Error(err, "Failed to marshal the downstream notification")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.downstreamConfig.NotificationUrl, bytes.NewReader(payload))
	if err != nil {
		f.logger.Error(err, "Failed to create the downstream notification request")
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	if _, err := f.FetchContent(req); err != nil {
		return fmt.Errorf("downstream notification failed: %w", err)
	}

	return nil
}
