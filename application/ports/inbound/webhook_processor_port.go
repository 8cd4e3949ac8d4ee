package inbound

import (
	"context"

	"github.com/ammar-bay/remotion-othman-backend/domain"
)

// WebhookProcessorPort handles one asynchronous completion notification from
// the render backend. Failures are redirected into the downstream channel as
// synthesized error notifications, never surfaced to the backend itself.
type WebhookProcessorPort interface {
	Process(ctx context.Context, notification domain.WebhookNotification) error
}
