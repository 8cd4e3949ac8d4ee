package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/domain"
)

// Languages the "best" speech model supports; everything else falls back to
// the lighter "nano" tier.
var bestTierLanguages = map[string]struct{}{
	"en": {}, "en_au": {}, "en_uk": {}, "en_us": {},
	"es": {}, "fr": {}, "de": {}, "it": {}, "pt": {}, "nl": {},
	"hi": {}, "ja": {}, "zh": {}, "fi": {}, "ko": {}, "pl": {},
	"ru": {}, "tr": {}, "uk": {}, "vi": {},
}

const (
	bestSpeechModel = "best"
	nanoSpeechModel = "nano"
)

type transcriptRequest struct {
	AudioUrl          string `json:"audio_url"`
	SpeechModel       string `json:"speech_model"`
	LanguageCode      string `json:"language_code,omitempty"`
	LanguageDetection bool   `json:"language_detection,omitempty"`
}

type transcriptResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Words  []struct {
		Text  string `json:"text"`
		Start int64  `json:"start"`
		End   int64  `json:"end"`
	} `json:"words"`
}

type assemblyAITranscriber struct {
	ContentFetcher
	logger           outbound.LoggerPort
	assemblyAIConfig *config.AssemblyAIConfig
	pollInterval     time.Duration
}

// NewAssemblyAITranscriber submits an audio URL for word-level transcription
// and polls until the backend settles. A completed transcript with no words
// yields nil captions, not an error.
func NewAssemblyAITranscriber(contentFetcher ContentFetcher, assemblyAIConfig *config.AssemblyAIConfig, logger outbound.LoggerPort) outbound.TranscriberPort {
	return &assemblyAITranscriber{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		assemblyAIConfig: assemblyAIConfig,
		pollInterval:     3 * time.Second,
	}
}

func (a *assemblyAITranscriber) Transcribe(ctx context.Context, audioURL string, languageCode string) (domain.CaptionSet, error) {
	submitted, err := a.submit(ctx, audioURL, languageCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTranscription, err)
	}

	completed, err := a.waitForCompletion(ctx, submitted.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTranscription, err)
	}

	return captionsFromWords(completed), nil
}

func (a *assemblyAITranscriber) submit(ctx context.Context, audioURL string, languageCode string) (*transcriptResponse, error) {
	reqBody := transcriptRequest{
		AudioUrl: audioURL,
	}
	if languageCode == "" {
		reqBody.SpeechModel = bestSpeechModel
		reqBody.LanguageDetection = true
	} else {
		reqBody.SpeechModel = speechModelFor(languageCode)
		reqBody.LanguageCode = languageCode
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.assemblyAIConfig.ApiUrl+"/v2/transcript", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	a.setHeaders(req)

	return a.fetchTranscript(req)
}

func (a *assemblyAITranscriber) waitForCompletion(ctx context.Context, transcriptID string) (*transcriptResponse, error) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.assemblyAIConfig.ApiUrl+"/v2/transcript/"+transcriptID, nil)
		if err != nil {
			return nil, err
		}
		a.setHeaders(req)

		transcript, err := a.fetchTranscript(req)
		if err != nil {
			return nil, err
		}

		switch transcript.Status {
		case "completed":
			return transcript, nil
		case "error":
			return nil, fmt.Errorf("transcription backend reported: %s", transcript.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(a.pollInterval):
		}
	}
}

func (a *assemblyAITranscriber) fetchTranscript(req *http.Request) (*transcriptResponse, error) {
	rawRes, err := a.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var transcript transcriptResponse
	if err := json.Unmarshal(rawRes, &transcript); err != nil {
		a.logger.Error(err, "Failed to unmarshal the transcription response")
		return nil, err
	}

	return &transcript, nil
}

func (a *assemblyAITranscriber) setHeaders(req *http.Request) {
	req.Header.Add("Authorization", a.assemblyAIConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")
}

func speechModelFor(languageCode string) string {
	if _, ok := bestTierLanguages[languageCode]; ok {
		return bestSpeechModel
	}
	return nanoSpeechModel
}

// captionsFromWords converts millisecond word timings into seconds, skipping
// entries that violate end > start >= 0.
func captionsFromWords(transcript *transcriptResponse) domain.CaptionSet {
	if len(transcript.Words) == 0 {
		return nil
	}

	captions := make(domain.CaptionSet, 0, len(transcript.Words))
	for _, word := range transcript.Words {
		if word.Start < 0 || word.End <= word.Start {
			continue
		}
		captions = append(captions, domain.Caption{
			Text:  word.Text,
			Start: float64(word.Start) / 1000,
			End:   float64(word.End) / 1000,
		})
	}
	if len(captions) == 0 {
		return nil
	}

	return captions
}
