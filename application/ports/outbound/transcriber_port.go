package outbound

import (
	"context"

	"github.com/ammar-bay/remotion-othman-backend/domain"
)

// TranscriberPort produces word-level timings for an uploaded audio URL.
// A transcript with no word data yields a nil CaptionSet and no error.
type TranscriberPort interface {
	Transcribe(ctx context.Context, audioURL string, languageCode string) (domain.CaptionSet, error)
}
