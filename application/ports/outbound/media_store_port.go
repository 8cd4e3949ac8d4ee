package outbound

import "context"

type MediaKind string

const (
	AudioMediaKind MediaKind = "audio"
	VideoMediaKind MediaKind = "video"
)

// MediaStorePort persists a media buffer to durable storage and returns a
// publicly resolvable URL. Every call creates a new object, even for the
// same correlation id.
type MediaStorePort interface {
	Upload(ctx context.Context, content []byte, correlationID string, kind MediaKind) (string, error)
}
