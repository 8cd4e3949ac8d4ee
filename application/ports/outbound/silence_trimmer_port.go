package outbound

import "context"

// SilenceTrimmerPort removes leading and trailing silence from an audio
// buffer. Trimming never fails the caller: on any internal failure the
// original buffer is returned unchanged.
type SilenceTrimmerPort interface {
	Trim(ctx context.Context, audio []byte) []byte
}
