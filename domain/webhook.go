package domain

import "encoding/json"

// WebhookNotification is one completion event from the render backend.
// The payload shape is owned by the backend, so every field is kept raw and
// forwarded verbatim; only the keys the handler acts on are interpreted.
type WebhookNotification map[string]json.RawMessage

// IsError reports whether the backend delivered an error payload.
func (n WebhookNotification) IsError() bool {
	raw, ok := n["type"]
	if !ok {
		return false
	}
	var kind string
	if err := json.Unmarshal(raw, &kind); err != nil {
		return false
	}
	return kind == "error"
}

// OutputURL returns the rendered artifact location, or "" when absent.
func (n WebhookNotification) OutputURL() string {
	return n.stringField("outputUrl")
}

// VideoID returns the correlation id carried inside customData, or "" when
// the backend did not echo one back.
func (n WebhookNotification) VideoID() string {
	raw, ok := n["customData"]
	if !ok {
		return ""
	}
	var custom struct {
		VideoID string `json:"video_id"`
	}
	if err := json.Unmarshal(raw, &custom); err != nil {
		return ""
	}
	return custom.VideoID
}

// WithOutputURL returns a copy of the notification with outputUrl replaced
// and every other field preserved as delivered.
func (n WebhookNotification) WithOutputURL(url string) WebhookNotification {
	out := make(WebhookNotification, len(n)+1)
	for key, value := range n {
		out[key] = value
	}
	encoded, _ := json.Marshal(url)
	out["outputUrl"] = encoded
	return out
}

func (n WebhookNotification) stringField(key string) string {
	raw, ok := n[key]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
