package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoJobRequest_CapturesUnknownFields(t *testing.T) {
	body := `{
		"id": "v1",
		"elevenlabs_voice_id": "abc",
		"clips": [{"media_url": "https://x/a.mp4", "audio_text": "hello"}],
		"caption_color": "#ffffff",
		"theme": {"font": "Inter"}
	}`

	var request VideoJobRequest
	require.NoError(t, json.Unmarshal([]byte(body), &request))

	assert.Equal(t, "v1", request.ID)
	assert.Equal(t, "abc", request.VoiceID)
	require.Len(t, request.Clips, 1)
	assert.Equal(t, "hello", request.Clips[0].AudioText)

	require.Len(t, request.Extra, 2)
	assert.JSONEq(t, `"#ffffff"`, string(request.Extra["caption_color"]))
	assert.JSONEq(t, `{"font":"Inter"}`, string(request.Extra["theme"]))
}

func TestVideoJobRequest_NoExtraWhenAllFieldsKnown(t *testing.T) {
	var request VideoJobRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":"v1","clips":[]}`), &request))
	assert.Nil(t, request.Extra)
}

func TestInputProps_TypedFieldsWinOverPassthrough(t *testing.T) {
	request := VideoJobRequest{
		ID:    "v1",
		Clips: []SceneSpec{{MediaURL: "https://x/a.mp4"}},
		Extra: map[string]json.RawMessage{
			"id":            json.RawMessage(`"spoofed"`),
			"caption_color": json.RawMessage(`"#ffffff"`),
		},
	}

	props, err := request.InputProps()
	require.NoError(t, err)

	assert.JSONEq(t, `"v1"`, string(props["id"]))
	assert.JSONEq(t, `"#ffffff"`, string(props["caption_color"]))

	var clips []SceneSpec
	require.NoError(t, json.Unmarshal(props["clips"], &clips))
	require.Len(t, clips, 1)
	assert.Equal(t, "https://x/a.mp4", clips[0].MediaURL)
}

func TestWebhookNotification_Accessors(t *testing.T) {
	var notification WebhookNotification
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "success",
		"renderId": "r1",
		"outputUrl": "https://renders/out.mp4",
		"customData": {"video_id": "v1"}
	}`), &notification))

	assert.False(t, notification.IsError())
	assert.Equal(t, "https://renders/out.mp4", notification.OutputURL())
	assert.Equal(t, "v1", notification.VideoID())

	rehosted := notification.WithOutputURL("https://bucket.s3.amazonaws.com/v1_1.mp4")
	assert.Equal(t, "https://bucket.s3.amazonaws.com/v1_1.mp4", rehosted.OutputURL())
	// the original is untouched
	assert.Equal(t, "https://renders/out.mp4", notification.OutputURL())
	assert.JSONEq(t, `"r1"`, string(rehosted["renderId"]))
}

func TestWebhookNotification_ErrorType(t *testing.T) {
	var notification WebhookNotification
	require.NoError(t, json.Unmarshal([]byte(`{"type":"error","errors":[{"message":"boom"}]}`), &notification))
	assert.True(t, notification.IsError())
	assert.Empty(t, notification.OutputURL())
	assert.Empty(t, notification.VideoID())
}
