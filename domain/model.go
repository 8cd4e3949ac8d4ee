package domain

import (
	"encoding/json"
	"reflect"
	"strings"
)

// VideoJobRequest is the inbound video specification. Unrecognized fields are
// captured in Extra at unmarshal time and forwarded verbatim to the render
// backend.
type VideoJobRequest struct {
	ID           string  `json:"id"`
	VoiceID      string  `json:"elevenlabs_voice_id"`
	LanguageCode string  `json:"language_code,omitempty"`
	ModelID      string  `json:"elevenlabs_model_id,omitempty"`
	Stability    float64 `json:"stability,omitempty"`
	Similarity   float64 `json:"similarity_boost,omitempty"`
	Speed        float64 `json:"speed,omitempty"`
	Style        float64 `json:"style,omitempty"`
	SpeakerBoost bool    `json:"speaker_boost,omitempty"`

	// AudioText switches the orchestrator into whole-video narration mode.
	AudioText string     `json:"audio_text,omitempty"`
	AudioURL  string     `json:"audioUrl,omitempty"`
	Captions  CaptionSet `json:"captions,omitempty"`

	MusicURL    string  `json:"music_url,omitempty"`
	MusicVolume float64 `json:"music_volume,omitempty"`

	Clips []SceneSpec `json:"clips"`

	Scale   float64 `json:"scale,omitempty"`
	FPS     int     `json:"fps,omitempty"`
	Quality int     `json:"quality,omitempty"`
	Codec   string  `json:"codec,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// SceneSpec is one visual segment. AudioText is consumed by the orchestrator
// and replaced with AudioURL and Captions once narration is resolved.
type SceneSpec struct {
	MediaURL          string     `json:"media_url"`
	MediaType         string     `json:"type,omitempty"`
	AudioText         string     `json:"audio_text,omitempty"`
	SoundEffectURL    string     `json:"sound_effect_url,omitempty"`
	SoundEffectVolume float64    `json:"sound_effect_volume,omitempty"`
	Duration          float64    `json:"duration,omitempty"`
	TTSEnabled        *bool      `json:"ttsEnabled,omitempty"`
	RandomSequence    *bool      `json:"randomSequence,omitempty"`
	Zoom              float64    `json:"zoom,omitempty"`
	AudioURL          string     `json:"audioUrl,omitempty"`
	Captions          CaptionSet `json:"captions,omitempty"`
}

// Caption is one word-level timing entry, in seconds.
type Caption struct {
	Text  string  `json:"text"`
	Start float64 `json:"startSeconds"`
	End   float64 `json:"endSeconds"`
}

type CaptionSet []Caption

type videoJobRequestAlias VideoJobRequest

// UnmarshalJSON decodes the typed fields and keeps every unknown key in Extra
// so the request can be forwarded to the render backend without losing shape.
func (r *VideoJobRequest) UnmarshalJSON(data []byte) error {
	var alias videoJobRequestAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range knownRequestFields {
		delete(raw, key)
	}

	*r = VideoJobRequest(alias)
	if len(raw) > 0 {
		r.Extra = raw
	}
	return nil
}

var knownRequestFields = jsonFieldNames(reflect.TypeOf(VideoJobRequest{}))

func jsonFieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		names = append(names, strings.Split(tag, ",")[0])
	}
	return names
}

// InputProps flattens the resolved request plus its passthrough fields into
// the property map handed to the render backend. Typed fields win on key
// collisions.
func (r *VideoJobRequest) InputProps() (map[string]json.RawMessage, error) {
	typed, err := json.Marshal((*videoJobRequestAlias)(r))
	if err != nil {
		return nil, err
	}

	props := make(map[string]json.RawMessage, len(r.Extra)+8)
	for key, value := range r.Extra {
		props[key] = value
	}

	var typedMap map[string]json.RawMessage
	if err := json.Unmarshal(typed, &typedMap); err != nil {
		return nil, err
	}
	for key, value := range typedMap {
		props[key] = value
	}

	return props, nil
}
