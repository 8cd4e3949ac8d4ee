package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/domain"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	LanguageCode  string        `json:"language_code,omitempty"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style,omitempty"`
	Speed           float64 `json:"speed,omitempty"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

type elevenLabsSynthesizer struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

// NewElevenLabsSynthesizer is the primary narration backend, carrying the
// full voice tuning parameter set from the request.
func NewElevenLabsSynthesizer(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (a *elevenLabsSynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	req, err := a.getRequest(ctx, params)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to construct the HTTP request for audio synthesis", map[string]interface{}{
			"voiceId": params.VoiceID,
		})
		return nil, fmt.Errorf("%w: %w", domain.ErrSynthesis, err)
	}

	audio, err := a.FetchContent(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSynthesis, err)
	}

	return audio, nil
}

func (a *elevenLabsSynthesizer) getRequest(ctx context.Context, params outbound.SynthesizeParams) (*http.Request, error) {
	modelId := params.ModelID
	if modelId == "" {
		modelId = a.elevenLabsConfig.DefaultModelId
	}

	reqBody := ElevenLabsRequest{
		Text:         params.Text,
		ModelId:      modelId,
		LanguageCode: params.LanguageCode,
		VoiceSettings: VoiceSettings{
			Stability:       params.Stability,
			SimilarityBoost: params.Similarity,
			Style:           params.Style,
			Speed:           params.Speed,
			UseSpeakerBoost: params.SpeakerBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := a.elevenLabsConfig.ApiUrl + "/v1/text-to-speech/" + params.VoiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "audio/mpeg")
	req.Header.Add("xi-api-key", a.elevenLabsConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return req, nil
}
