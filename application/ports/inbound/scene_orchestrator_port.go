package inbound

import (
	"context"

	"github.com/ammar-bay/remotion-othman-backend/domain"
)

// SceneOrchestratorPort runs the per-request pipeline: validate, resolve
// narration for every scene (or once for the whole video), and hand the
// assembled request to the render dispatcher.
type SceneOrchestratorPort interface {
	Orchestrate(ctx context.Context, request *domain.VideoJobRequest) error
}
