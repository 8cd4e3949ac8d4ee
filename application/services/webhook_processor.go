package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/inbound"
	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/domain"
)

// fallbackVideoID names re-uploaded artifacts whose notification carried no
// correlation id. Upload keys embed epoch millis, so repeats never collide.
const fallbackVideoID = "video"

type webhookProcessor struct {
	logger     outbound.LoggerPort
	downloader outbound.ContentDownloaderPort
	rewriter   outbound.MetadataRewriterPort
	mediaStore outbound.MediaStorePort
	forwarder  outbound.NotificationForwarderPort
}

func NewWebhookProcessor(logger outbound.LoggerPort, downloader outbound.ContentDownloaderPort,
	rewriter outbound.MetadataRewriterPort, mediaStore outbound.MediaStorePort,
	forwarder outbound.NotificationForwarderPort) inbound.WebhookProcessorPort {
	return &webhookProcessor{
		logger:     logger,
		downloader: downloader,
		rewriter:   rewriter,
		mediaStore: mediaStore,
		forwarder:  forwarder,
	}
}

// Process handles one completion notification. Error payloads pass through to
// the downstream consumer untouched. Success payloads have their artifact
// downloaded, rewritten and republished before forwarding; if any of that
// fails, a synthesized error notification goes downstream instead, and the
// render backend still gets its acknowledgment.
func (s *webhookProcessor) Process(ctx context.Context, notification domain.WebhookNotification) error {
	if notification.IsError() {
		if err := s.forwarder.Forward(ctx, notification); err != nil {
			s.logger.Error(err, "Failed to forward the error notification downstream")
			return err
		}
		return nil
	}

	if err := s.republish(ctx, notification); err != nil {
		s.logger.ErrorWithFields(err, "Webhook processing failed, forwarding error downstream", map[string]interface{}{
			"videoId": notification.VideoID(),
		})
		s.forwardFailure(ctx, notification, err)
		return err
	}

	return nil
}

func (s *webhookProcessor) republish(ctx context.Context, notification domain.WebhookNotification) error {
	outputURL := notification.OutputURL()
	if outputURL == "" {
		return fmt.Errorf("notification carries no outputUrl")
	}

	video, err := s.downloader.Download(ctx, outputURL)
	if err != nil {
		return err
	}

	rewritten, err := s.rewriter.Rewrite(ctx, video)
	if err != nil {
		return err
	}

	videoID := notification.VideoID()
	if videoID == "" {
		videoID = fallbackVideoID
	}

	storedURL, err := s.mediaStore.Upload(ctx, rewritten, videoID, outbound.VideoMediaKind)
	if err != nil {
		return err
	}

	return s.forwarder.Forward(ctx, notification.WithOutputURL(storedURL))
}

func (s *webhookProcessor) forwardFailure(ctx context.Context, notification domain.WebhookNotification, cause error) {
	synthesized := domain.WebhookNotification{
		"type":    mustRawJSON("error"),
		"message": mustRawJSON("failed to process the render completion webhook"),
		"detail":  mustRawJSON(cause.Error()),
	}
	if videoID := notification.VideoID(); videoID != "" {
		synthesized["video_id"] = mustRawJSON(videoID)
	}

	if err := s.forwarder.Forward(ctx, synthesized); err != nil {
		s.logger.Error(err, "Failed to forward the synthesized error notification downstream")
	}
}

func mustRawJSON(value string) json.RawMessage {
	encoded, _ := json.Marshal(value)
	return encoded
}
