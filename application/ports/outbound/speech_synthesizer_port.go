package outbound

import "context"

type SynthesizeParams struct {
	Text         string
	VoiceID      string
	LanguageCode string
	ModelID      string
	Stability    float64
	Similarity   float64
	Speed        float64
	Style        float64
	SpeakerBoost bool
}

// SpeechSynthesizerPort produces narration audio for a text string.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeParams) ([]byte, error)
}
