package domain

import "errors"

// Sentinel errors for the orchestration pipeline. Callers match with
// errors.Is; adapters wrap the underlying cause with %w.
var (
	// ErrValidation is returned when a request is missing id, clips or a
	// voice id. No external call is made for a rejected request.
	ErrValidation = errors.New("missing required fields in request body")
	// ErrSynthesis is returned when a speech synthesis backend call fails.
	ErrSynthesis = errors.New("speech synthesis failed")
	// ErrTranscription is returned when the transcription backend fails.
	// A transcript with no words is not an error.
	ErrTranscription = errors.New("transcription failed")
	// ErrStorageConfig is returned when no destination bucket is configured.
	ErrStorageConfig = errors.New("storage bucket not configured")
	// ErrStorageUpload is returned on any storage transport failure.
	ErrStorageUpload = errors.New("storage upload failed")
	// ErrDispatch is returned when the render backend rejects a submission.
	ErrDispatch = errors.New("render dispatch failed")
	// ErrPipeline aggregates any per-scene failure during concurrent fan-out.
	ErrPipeline = errors.New("scene pipeline failed")
)
