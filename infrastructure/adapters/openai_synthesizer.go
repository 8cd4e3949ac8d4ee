package adapters

import (
	"context"
	"fmt"
	"io"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Fixed persona for the secondary backend. Hebrew narration goes through
// OpenAI because ElevenLabs voice tuning does not carry over; the voice and
// tone are pinned and the request's stability/similarity settings ignored.
const (
	openAIVoiceInstructions = "Speak in a clear, engaging, narrator tone suitable for a short video."
)

type openAISynthesizer struct {
	logger outbound.LoggerPort
	client openai.Client
}

func NewOpenAISynthesizer(openAIConfig *config.OpenAIConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &openAISynthesizer{
		logger: logger,
		client: openai.NewClient(option.WithAPIKey(openAIConfig.ApiKey)),
	}
}

func (a *openAISynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	res, err := a.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModelGPT4oMiniTTS,
		Voice:          openai.AudioSpeechNewParamsVoiceAlloy,
		Input:          params.Text,
		Instructions:   openai.String(openAIVoiceInstructions),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		a.logger.Error(err, "OpenAI speech synthesis request failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrSynthesis, err)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			a.logger.Error(err, "Failed to close the OpenAI speech response body")
		}
	}(res.Body)

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		a.logger.Error(err, "Failed to read the OpenAI speech response body")
		return nil, fmt.Errorf("%w: %w", domain.ErrSynthesis, err)
	}

	return audio, nil
}
