package outbound

import (
	"context"

	"github.com/ammar-bay/remotion-othman-backend/domain"
)

// NotificationForwarderPort delivers a completion (or error) notification to
// the configured downstream consumer.
type NotificationForwarderPort interface {
	Forward(ctx context.Context, notification domain.WebhookNotification) error
}
