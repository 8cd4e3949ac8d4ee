package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/inbound"
	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/domain"
	"github.com/ammar-bay/remotion-othman-backend/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type VideoController interface {
	GenerateVideo(c *gin.Context)
	Webhook(c *gin.Context)
	WebhookDev(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoController struct {
	logger           outbound.LoggerPort
	orchestrator     inbound.SceneOrchestratorPort
	webhookProcessor inbound.WebhookProcessorPort
}

func NewVideoController(logger outbound.LoggerPort, orchestrator inbound.SceneOrchestratorPort,
	webhookProcessor inbound.WebhookProcessorPort) VideoController {
	return &videoController{
		logger:           logger,
		orchestrator:     orchestrator,
		webhookProcessor: webhookProcessor,
	}
}

// GenerateVideo accepts a video specification and triggers the render
// pipeline. A dispatch-stage failure still answers 200 with a soft retry
// message; the status code contract is part of the downstream API surface.
func (v *videoController) GenerateVideo(c *gin.Context) {
	var request domain.VideoJobRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: dto.MissingFieldsMessage})
		return
	}

	err := v.orchestrator.Orchestrate(c.Request.Context(), &request)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.VideoTriggeredMessage})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: dto.MissingFieldsMessage})
	case errors.Is(err, domain.ErrDispatch):
		v.logger.ErrorWithFields(err, "Render dispatch failed", map[string]interface{}{
			"videoId": request.ID,
		})
		c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.VideoDispatchFailMessage})
	default:
		v.logger.ErrorWithFields(err, "Video generation pipeline failed", map[string]interface{}{
			"videoId": request.ID,
		})
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: dto.InternalErrorMessage})
	}
}

// Webhook receives completion callbacks from the render backend. It always
// acknowledges with 200 so the backend never retries; processing failures
// are redirected downstream by the processor itself. Unparseable payloads
// still produce a downstream error notification so no callback is dropped
// silently.
func (v *videoController) Webhook(c *gin.Context) {
	var notification domain.WebhookNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		v.logger.Error(err, "Failed to parse the webhook payload")
		malformed := domain.WebhookNotification{
			"type":    json.RawMessage(`"error"`),
			"message": json.RawMessage(`"received an unparseable render completion webhook payload"`),
		}
		if processErr := v.webhookProcessor.Process(c.Request.Context(), malformed); processErr != nil {
			v.logger.Error(processErr, "Failed to forward the malformed-payload notification downstream")
		}
		c.String(http.StatusOK, "Webhook received")
		return
	}

	if err := v.webhookProcessor.Process(c.Request.Context(), notification); err != nil {
		v.logger.Error(err, "Webhook processing reported a failure")
	}

	c.String(http.StatusOK, "Webhook processed")
}

// WebhookDev logs the raw callback and acknowledges. Diagnostic only.
func (v *videoController) WebhookDev(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		v.logger.Error(err, "Failed to parse the dev webhook payload")
	} else {
		v.logger.InfoWithFields("Dev webhook received", payload)
	}

	c.String(http.StatusOK, "Webhook received")
}

func (v *videoController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.LivenessMessage})
	})
	g.POST("/generate-video", v.GenerateVideo)
	g.POST("/webhook", v.Webhook)
	g.POST("/webhook-dev", v.WebhookDev)
}
