package outbound

import (
	"context"

	"github.com/ammar-bay/remotion-othman-backend/domain"
)

// RenderDispatcherPort submits a fully resolved request to the remote render
// backend together with a completion webhook registration. Dispatch is
// fire-and-forget: it returns once the backend acknowledges the submission
// and never waits for the render to finish.
type RenderDispatcherPort interface {
	Dispatch(ctx context.Context, request *domain.VideoJobRequest) error
}
