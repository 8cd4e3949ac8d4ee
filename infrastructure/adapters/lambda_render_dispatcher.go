package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
)

const (
	defaultCodec   = "h264"
	defaultCrf     = 23
	jpegImageFmt   = "jpeg"
	startRenderMsg = "start"
)

type webhookRegistration struct {
	Url        string            `json:"url"`
	Secret     string            `json:"secret"`
	CustomData map[string]string `json:"customData"`
}

type startRenderPayload struct {
	Type        string                     `json:"type"`
	ServeUrl    string                     `json:"serveUrl"`
	Composition string                     `json:"composition"`
	InputProps  map[string]json.RawMessage `json:"inputProps"`
	Codec       string                     `json:"codec"`
	ImageFormat string                     `json:"imageFormat"`
	Crf         int                        `json:"crf"`
	Scale       float64                    `json:"scale,omitempty"`
	FrameRate   int                        `json:"frameRate,omitempty"`
	Webhook     webhookRegistration        `json:"webhook"`
}

type startRenderResponse struct {
	RenderId   string `json:"renderId"`
	BucketName string `json:"bucketName"`
	ErrorType  string `json:"errorType,omitempty"`
}

type lambdaRenderDispatcher struct {
	logger         outbound.LoggerPort
	lambdaSvc      lambdaiface.LambdaAPI
	remotionConfig *config.RemotionConfig
}

// NewLambdaRenderDispatcher submits render jobs by invoking the Remotion
// render function directly. The webhook registration embeds the request id
// as customData so the completion callback needs no server-side state.
func NewLambdaRenderDispatcher(lambdaSvc lambdaiface.LambdaAPI, remotionConfig *config.RemotionConfig, logger outbound.LoggerPort) outbound.RenderDispatcherPort {
	return &lambdaRenderDispatcher{
		logger:         logger,
		lambdaSvc:      lambdaSvc,
		remotionConfig: remotionConfig,
	}
}

func (d *lambdaRenderDispatcher) Dispatch(ctx context.Context, request *domain.VideoJobRequest) error {
	payload, err := d.buildPayload(request)
	if err != nil {
		d.logger.Error(err, "Failed to build the render payload")
		return fmt.Errorf("%w: %w", domain.ErrDispatch, err)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDispatch, err)
	}

	result, err := d.lambdaSvc.InvokeWithContext(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(d.remotionConfig.FunctionName),
		Payload:      encoded,
	})
	if err != nil {
		d.logger.ErrorWithFields(err, "Render function invocation failed", map[string]interface{}{
			"function": d.remotionConfig.FunctionName,
			"videoId":  request.ID,
		})
		return fmt.Errorf("%w: %w", domain.ErrDispatch, err)
	}
	if result.FunctionError != nil {
		d.logger.ErrorWithFields(nil, "Render function returned an error", map[string]interface{}{
			"functionError": aws.StringValue(result.FunctionError),
			"videoId":       request.ID,
		})
		return fmt.Errorf("%w: function error %s", domain.ErrDispatch, aws.StringValue(result.FunctionError))
	}

	var response startRenderResponse
	if err := json.Unmarshal(result.Payload, &response); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDispatch, err)
	}
	if response.RenderId == "" {
		return fmt.Errorf("%w: no render id issued", domain.ErrDispatch)
	}

	d.logger.InfoWithFields("Render job submitted", map[string]interface{}{
		"renderId": response.RenderId,
		"bucket":   response.BucketName,
		"videoId":  request.ID,
	})

	return nil
}

func (d *lambdaRenderDispatcher) buildPayload(request *domain.VideoJobRequest) (*startRenderPayload, error) {
	inputProps, err := request.InputProps()
	if err != nil {
		return nil, err
	}

	codec := request.Codec
	if codec == "" {
		codec = defaultCodec
	}
	crf := request.Quality
	if crf == 0 {
		crf = defaultCrf
	}

	return &startRenderPayload{
		Type:        startRenderMsg,
		ServeUrl:    d.remotionConfig.ServeUrl,
		Composition: d.remotionConfig.CompositionId,
		InputProps:  inputProps,
		Codec:       codec,
		ImageFormat: jpegImageFmt,
		Crf:         crf,
		Scale:       request.Scale,
		FrameRate:   request.FPS,
		Webhook: webhookRegistration{
			Url:    d.remotionConfig.WebhookUrl,
			Secret: d.remotionConfig.WebhookSecret,
			CustomData: map[string]string{
				"video_id": request.ID,
			},
		},
	}, nil
}
