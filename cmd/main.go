package main

import (
	"fmt"
	"os"

	"github.com/ammar-bay/remotion-othman-backend/application/services"
	"github.com/ammar-bay/remotion-othman-backend/config"
	"github.com/ammar-bay/remotion-othman-backend/infrastructure/adapters"
	"github.com/ammar-bay/remotion-othman-backend/infrastructure/gin_interface/controllers"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	openAIConfig, err := config.GetOpenAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get openai config")
	}

	assemblyAIConfig, err := config.GetAssemblyAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get assembly ai config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	remotionConfig, err := config.GetRemotionConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get remotion config")
	}

	downstreamConfig, err := config.GetDownstreamConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get downstream config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	s3Client := s3.New(sess)
	lambdaClient := lambda.New(sess, aws.NewConfig().WithRegion(remotionConfig.Region))

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	silenceTrimmer := adapters.NewFFMPEGSilenceTrimmer(zeroLogger)

	elevenLabs := adapters.NewElevenLabsSynthesizer(contentFetcher, elevenLabsConfig, zeroLogger)
	openAI := adapters.NewOpenAISynthesizer(openAIConfig, zeroLogger)
	synthesizer := adapters.NewSpeechSynthesizer(elevenLabs, openAI, silenceTrimmer)

	mediaStore := adapters.NewS3MediaStore(s3Client, s3Config, zeroLogger)

	transcriber := adapters.NewAssemblyAITranscriber(contentFetcher, assemblyAIConfig, zeroLogger)

	renderDispatcher := adapters.NewLambdaRenderDispatcher(lambdaClient, remotionConfig, zeroLogger)

	downloader := adapters.NewHTTPContentDownloader(contentFetcher, zeroLogger)
	metadataRewriter := adapters.NewFFMPEGMetadataRewriter(zeroLogger)
	notificationForwarder := adapters.NewHTTPNotificationForwarder(contentFetcher, downstreamConfig, zeroLogger)

	orchestrator := services.NewSceneOrchestrator(zeroLogger, workerPool, synthesizer, mediaStore, transcriber, renderDispatcher)

	webhookProcessor := services.NewWebhookProcessor(zeroLogger, downloader, metadataRewriter, mediaStore, notificationForwarder)

	videoController := controllers.NewVideoController(zeroLogger, orchestrator, webhookProcessor)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	videoController.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = router.Run(":" + port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
