package adapters

import (
	"context"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
)

// hebrewLanguageCode routes narration to the secondary backend, which has
// better Hebrew pronunciation than the primary one.
const hebrewLanguageCode = "he"

type speechSynthesizer struct {
	primary   outbound.SpeechSynthesizerPort
	secondary outbound.SpeechSynthesizerPort
	trimmer   outbound.SilenceTrimmerPort
}

// NewSpeechSynthesizer selects a synthesis backend by language code and runs
// every result through the silence trimmer. Trimming degrades to the
// untrimmed buffer on failure, so only backend errors surface here.
func NewSpeechSynthesizer(primary outbound.SpeechSynthesizerPort, secondary outbound.SpeechSynthesizerPort,
	trimmer outbound.SilenceTrimmerPort) outbound.SpeechSynthesizerPort {
	return &speechSynthesizer{
		primary:   primary,
		secondary: secondary,
		trimmer:   trimmer,
	}
}

func (s *speechSynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	backend := s.primary
	if params.LanguageCode == hebrewLanguageCode {
		backend = s.secondary
	}

	audio, err := backend.Synthesize(ctx, params)
	if err != nil {
		return nil, err
	}

	return s.trimmer.Trim(ctx, audio), nil
}
