package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ammar-bay/remotion-othman-backend/domain"
	"github.com/ammar-bay/remotion-othman-backend/infrastructure/adapters"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrchestrator struct {
	err      error
	received *domain.VideoJobRequest
}

func (f *fakeOrchestrator) Orchestrate(_ context.Context, request *domain.VideoJobRequest) error {
	f.received = request
	return f.err
}

type fakeWebhookProcessor struct {
	err      error
	received domain.WebhookNotification
}

func (f *fakeWebhookProcessor) Process(_ context.Context, notification domain.WebhookNotification) error {
	f.received = notification
	return f.err
}

func newTestRouter(orchestrator *fakeOrchestrator, processor *fakeWebhookProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewVideoController(adapters.NewZerologWrapper(), orchestrator, processor)
	controller.RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLivenessEndpoint(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{}, &fakeWebhookProcessor{})

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"All Ok!"}`, recorder.Body.String())
}

func TestGenerateVideo_SuccessfulTrigger(t *testing.T) {
	orchestrator := &fakeOrchestrator{}
	router := newTestRouter(orchestrator, &fakeWebhookProcessor{})

	recorder := postJSON(t, router, "/generate-video",
		`{"id":"v1","elevenlabs_voice_id":"abc","clips":[{"media_url":"https://x/a.mp4"}]}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Video Triggered Successfully"}`, recorder.Body.String())
	require.NotNil(t, orchestrator.received)
	assert.Equal(t, "v1", orchestrator.received.ID)
}

func TestGenerateVideo_MalformedBody(t *testing.T) {
	orchestrator := &fakeOrchestrator{}
	router := newTestRouter(orchestrator, &fakeWebhookProcessor{})

	recorder := postJSON(t, router, "/generate-video", `{"id":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Missing required fields in request body."}`, recorder.Body.String())
	assert.Nil(t, orchestrator.received)
}

func TestGenerateVideo_ValidationFailure(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{err: domain.ErrValidation}, &fakeWebhookProcessor{})

	recorder := postJSON(t, router, "/generate-video", `{"id":"v1"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Missing required fields in request body."}`, recorder.Body.String())
}

func TestGenerateVideo_DispatchFailureIsASoftError(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{err: domain.ErrDispatch}, &fakeWebhookProcessor{})

	recorder := postJSON(t, router, "/generate-video",
		`{"id":"v1","elevenlabs_voice_id":"abc","clips":[{"media_url":"https://x/a.mp4"}]}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"There is some error generation video, try again later..."}`, recorder.Body.String())
}

func TestGenerateVideo_PipelineFailure(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{err: domain.ErrPipeline}, &fakeWebhookProcessor{})

	recorder := postJSON(t, router, "/generate-video",
		`{"id":"v1","elevenlabs_voice_id":"abc","clips":[{"media_url":"https://x/a.mp4"}]}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, recorder.Body.String())
}

func TestWebhook_AcknowledgesProcessedNotification(t *testing.T) {
	processor := &fakeWebhookProcessor{}
	router := newTestRouter(&fakeOrchestrator{}, processor)

	recorder := postJSON(t, router, "/webhook",
		`{"type":"success","outputUrl":"https://r/out.mp4","customData":{"video_id":"v1"}}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Webhook processed", recorder.Body.String())
	require.NotNil(t, processor.received)
	assert.Equal(t, "v1", processor.received.VideoID())
}

func TestWebhook_AcknowledgesProcessingFailure(t *testing.T) {
	processor := &fakeWebhookProcessor{err: domain.ErrStorageUpload}
	router := newTestRouter(&fakeOrchestrator{}, processor)

	recorder := postJSON(t, router, "/webhook", `{"type":"success"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Webhook processed", recorder.Body.String())
}

func TestWebhook_MalformedPayloadForwardsSynthesizedError(t *testing.T) {
	processor := &fakeWebhookProcessor{}
	router := newTestRouter(&fakeOrchestrator{}, processor)

	recorder := postJSON(t, router, "/webhook", `not-json`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Webhook received", recorder.Body.String())
	require.NotNil(t, processor.received)
	assert.True(t, processor.received.IsError())
}

func TestWebhookDev_Acknowledges(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{}, &fakeWebhookProcessor{})

	recorder := postJSON(t, router, "/webhook-dev", `{"anything":true}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Webhook received", recorder.Body.String())
}
