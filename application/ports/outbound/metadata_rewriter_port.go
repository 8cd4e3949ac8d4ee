package outbound

import "context"

// MetadataRewriterPort rewrites the container metadata tags of a rendered
// video buffer before it is republished.
type MetadataRewriterPort interface {
	Rewrite(ctx context.Context, video []byte) ([]byte, error)
}
