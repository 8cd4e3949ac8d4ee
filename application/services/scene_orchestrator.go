package services

import (
	"context"
	"fmt"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/inbound"
	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/channel_utils"
	"github.com/ammar-bay/remotion-othman-backend/domain"
)

type sceneOrchestrator struct {
	logger      outbound.LoggerPort
	workerPool  outbound.TaskDispatcher
	synthesizer outbound.SpeechSynthesizerPort
	mediaStore  outbound.MediaStorePort
	transcriber outbound.TranscriberPort
	dispatcher  outbound.RenderDispatcherPort
}

func NewSceneOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	synthesizer outbound.SpeechSynthesizerPort, mediaStore outbound.MediaStorePort,
	transcriber outbound.TranscriberPort, dispatcher outbound.RenderDispatcherPort) inbound.SceneOrchestratorPort {
	return &sceneOrchestrator{
		logger:      logger,
		workerPool:  workerPool,
		synthesizer: synthesizer,
		mediaStore:  mediaStore,
		transcriber: transcriber,
		dispatcher:  dispatcher,
	}
}

// Orchestrate validates the request, resolves narration for every scene (or
// once for the whole video when audio_text is set at the request level) and
// hands the assembled request to the render dispatcher. Scene resolution is
// all-or-nothing: a single failed scene aborts the request before dispatch.
func (s *sceneOrchestrator) Orchestrate(ctx context.Context, request *domain.VideoJobRequest) error {
	if request.ID == "" || len(request.Clips) == 0 || request.VoiceID == "" {
		return fmt.Errorf("%w: id, clips and elevenlabs_voice_id are required", domain.ErrValidation)
	}

	if request.AudioText != "" {
		if err := s.resolveWholeVideo(ctx, request); err != nil {
			return err
		}
	} else {
		if err := s.resolveScenes(ctx, request); err != nil {
			return err
		}
	}

	return s.dispatcher.Dispatch(ctx, request)
}

// resolveWholeVideo narrates the full video with one synthesis pass and
// suppresses per-scene narration entirely.
func (s *sceneOrchestrator) resolveWholeVideo(ctx context.Context, request *domain.VideoJobRequest) error {
	audioURL, captions, err := s.resolveNarration(ctx, request, request.AudioText)
	if err != nil {
		return err
	}

	request.AudioURL = audioURL
	request.Captions = captions
	request.AudioText = ""

	for i := range request.Clips {
		clip := &request.Clips[i]
		clip.TTSEnabled = defaultedFlag(clip.TTSEnabled)
		clip.RandomSequence = defaultedFlag(clip.RandomSequence)
		clip.AudioText = ""
		clip.AudioURL = ""
		clip.Captions = nil
	}

	return nil
}

// resolveScenes fans the per-scene synthesize-upload-transcribe pipeline out
// across the worker pool and joins on every scene before returning. Scenes
// without narration text pass through unchanged.
func (s *sceneOrchestrator) resolveScenes(ctx context.Context, request *domain.VideoJobRequest) error {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChannels := make([]<-chan error, 0, len(request.Clips))
	for i := range request.Clips {
		clip := &request.Clips[i]
		if clip.AudioText == "" {
			continue
		}

		errCh := make(chan error, 1)
		errChannels = append(errChannels, errCh)

		err := s.workerPool.Submit(func() {
			defer close(errCh)
			if err := s.resolveScene(newCtx, request, clip); err != nil {
				errCh <- err
				cancel()
			}
		})
		if err != nil {
			errCh <- err
			close(errCh)
			cancel()
		}
	}

	if len(errChannels) == 0 {
		return nil
	}

	merged, err := channel_utils.MergeChannels(s.workerPool, errChannels...)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to merge scene error channels", map[string]interface{}{
			"videoId": request.ID,
		})
		return fmt.Errorf("%w: %w", domain.ErrPipeline, err)
	}

	var firstErr error
	for sceneErr := range merged {
		if firstErr == nil {
			firstErr = sceneErr
			cancel()
		}
	}
	if firstErr != nil {
		s.logger.ErrorWithFields(firstErr, "Scene narration failed, aborting the request", map[string]interface{}{
			"videoId": request.ID,
		})
		return fmt.Errorf("%w: %w", domain.ErrPipeline, firstErr)
	}

	return nil
}

func (s *sceneOrchestrator) resolveScene(ctx context.Context, request *domain.VideoJobRequest, clip *domain.SceneSpec) error {
	audioURL, captions, err := s.resolveNarration(ctx, request, clip.AudioText)
	if err != nil {
		return err
	}

	clip.AudioURL = audioURL
	clip.Captions = captions
	clip.AudioText = ""
	clip.TTSEnabled = defaultedFlag(clip.TTSEnabled)
	clip.RandomSequence = defaultedFlag(clip.RandomSequence)

	return nil
}

// resolveNarration is the sequential synthesize, upload and transcribe leg
// shared by both narration modes. Transcription needs the uploaded URL, so
// the three calls cannot overlap within one scene.
func (s *sceneOrchestrator) resolveNarration(ctx context.Context, request *domain.VideoJobRequest, text string) (string, domain.CaptionSet, error) {
	audio, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeParams{
		Text:         text,
		VoiceID:      request.VoiceID,
		LanguageCode: request.LanguageCode,
		ModelID:      request.ModelID,
		Stability:    request.Stability,
		Similarity:   request.Similarity,
		Speed:        request.Speed,
		Style:        request.Style,
		SpeakerBoost: request.SpeakerBoost,
	})
	if err != nil {
		return "", nil, err
	}

	audioURL, err := s.mediaStore.Upload(ctx, audio, request.ID, outbound.AudioMediaKind)
	if err != nil {
		return "", nil, err
	}

	captions, err := s.transcriber.Transcribe(ctx, audioURL, request.LanguageCode)
	if err != nil {
		return "", nil, err
	}

	return audioURL, captions, nil
}

func defaultedFlag(flag *bool) *bool {
	if flag != nil {
		return flag
	}
	enabled := true
	return &enabled
}
