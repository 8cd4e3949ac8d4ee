package adapters

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type s3MediaStore struct {
	logger   outbound.LoggerPort
	s3Svc    s3iface.S3API
	s3Config *config.S3Config
}

func NewS3MediaStore(s3Svc s3iface.S3API, s3Config *config.S3Config, logger outbound.LoggerPort) outbound.MediaStorePort {
	return &s3MediaStore{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3MediaStore) Upload(ctx context.Context, content []byte, correlationID string, kind outbound.MediaKind) (string, error) {
	if s.s3Config == nil || s.s3Config.BucketName == "" {
		return "", fmt.Errorf("%w: no bucket name", domain.ErrStorageConfig)
	}

	key := objectKey(correlationID, kind)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(contentType(kind)),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return "", fmt.Errorf("%w: %w", domain.ErrStorageUpload, err)
	}

	s3Url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	s.logger.DebugWithFields("Successfully uploaded object to S3", map[string]interface{}{
		"s3Url": s3Url,
	})

	return s3Url, nil
}

// objectKey embeds the current epoch millis so repeated uploads for the same
// correlation id never collide.
func objectKey(correlationID string, kind outbound.MediaKind) string {
	ext := "mp3"
	if kind == outbound.VideoMediaKind {
		ext = "mp4"
	}
	return fmt.Sprintf("%s_%d.%s", correlationID, time.Now().UnixMilli(), ext)
}

func contentType(kind outbound.MediaKind) string {
	if kind == outbound.VideoMediaKind {
		return "video/mp4"
	}
	return "audio/mpeg"
}
