package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevenLabsSynthesizer_SendsVoiceTuningParameters(t *testing.T) {
	var gotPath, gotKey string
	var gotBody ElevenLabsRequest
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer backend.Close()

	logger := NewZerologWrapper()
	synthesizer := NewElevenLabsSynthesizer(NewContentFetcher(logger), &config.ElevenLabsConfig{
		ApiUrl:         backend.URL,
		ApiKey:         "xi-secret",
		DefaultModelId: "eleven_multilingual_v2",
	}, logger)

	audio, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeParams{
		Text:         "hello there",
		VoiceID:      "voice-1",
		LanguageCode: "en",
		Stability:    0.4,
		Similarity:   0.8,
		Speed:        1.1,
		Style:        0.2,
		SpeakerBoost: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)

	assert.Equal(t, "/v1/text-to-speech/voice-1", gotPath)
	assert.Equal(t, "xi-secret", gotKey)
	assert.Equal(t, "hello there", gotBody.Text)
	assert.Equal(t, "eleven_multilingual_v2", gotBody.ModelId)
	assert.Equal(t, "en", gotBody.LanguageCode)
	assert.Equal(t, 0.4, gotBody.VoiceSettings.Stability)
	assert.Equal(t, 0.8, gotBody.VoiceSettings.SimilarityBoost)
	assert.Equal(t, 1.1, gotBody.VoiceSettings.Speed)
	assert.Equal(t, 0.2, gotBody.VoiceSettings.Style)
	assert.True(t, gotBody.VoiceSettings.UseSpeakerBoost)
}

func TestElevenLabsSynthesizer_RequestModelOverridesDefault(t *testing.T) {
	var gotBody ElevenLabsRequest
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte("ok"))
	}))
	defer backend.Close()

	logger := NewZerologWrapper()
	synthesizer := NewElevenLabsSynthesizer(NewContentFetcher(logger), &config.ElevenLabsConfig{
		ApiUrl:         backend.URL,
		ApiKey:         "xi-secret",
		DefaultModelId: "eleven_multilingual_v2",
	}, logger)

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeParams{
		Text:    "hi",
		VoiceID: "voice-1",
		ModelID: "eleven_turbo_v2_5",
	})
	require.NoError(t, err)
	assert.Equal(t, "eleven_turbo_v2_5", gotBody.ModelId)
}

func TestElevenLabsSynthesizer_BackendFailureIsASynthesisError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"quota exceeded"}`, http.StatusUnauthorized)
	}))
	defer backend.Close()

	logger := NewZerologWrapper()
	synthesizer := NewElevenLabsSynthesizer(NewContentFetcher(logger), &config.ElevenLabsConfig{
		ApiUrl: backend.URL,
		ApiKey: "xi-secret",
	}, logger)

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeParams{
		Text:    "hi",
		VoiceID: "voice-1",
	})
	require.ErrorIs(t, err, domain.ErrSynthesis)
}
