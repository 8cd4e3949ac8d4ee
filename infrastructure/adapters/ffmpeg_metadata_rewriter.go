package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/google/uuid"
)

const rewrittenEncoderTag = "Lavf"

type ffmpegMetadataRewriter struct {
	logger     outbound.LoggerPort
	ffmpegPath string
}

// NewFFMPEGMetadataRewriter strips the render backend's container tags
// (encoder, software, comment) from an artifact before it is republished.
// Streams are copied, not re-encoded.
func NewFFMPEGMetadataRewriter(logger outbound.LoggerPort) outbound.MetadataRewriterPort {
	return &ffmpegMetadataRewriter{
		logger:     logger,
		ffmpegPath: "ffmpeg",
	}
}

func (r *ffmpegMetadataRewriter) Rewrite(ctx context.Context, video []byte) ([]byte, error) {
	inputFile := "/tmp/" + uuid.NewString() + ".mp4"
	outputFile := "/tmp/" + uuid.NewString() + ".mp4"

	if err := os.WriteFile(inputFile, video, 0o600); err != nil {
		r.logger.Error(err, "Failed to write video to temp file")
		return nil, err
	}
	defer func() {
		if err := os.Remove(inputFile); err != nil {
			r.logger.Error(err, "Failed to remove rewriter input file")
		}
		if err := os.Remove(outputFile); err != nil && !os.IsNotExist(err) {
			r.logger.Error(err, "Failed to remove rewriter output file")
		}
	}()

	cmd := exec.CommandContext(ctx, r.ffmpegPath,
		"-i", inputFile,
		"-c", "copy",
		"-map_metadata", "-1",
		"-metadata", "encoder="+rewrittenEncoderTag,
		"-metadata", "software="+rewrittenEncoderTag,
		"-metadata", "comment=",
		"-hide_banner",
		outputFile)
	if err := cmd.Run(); err != nil {
		r.logger.Error(err, "Failed to rewrite video metadata")
		return nil, err
	}

	return os.ReadFile(outputFile)
}
