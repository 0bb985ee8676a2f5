package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/rajesharyain/magination/application/ports/outbound"
	"github.com/rajesharyain/magination/application/services"
	"github.com/rajesharyain/magination/config"
	"github.com/rajesharyain/magination/infrastructure/adapters"
	"github.com/rajesharyain/magination/infrastructure/gin_interface/controllers"
	"github.com/rajesharyain/magination/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	serverConfig := config.GetServerConfig()
	uploadsConfig := config.GetUploadsConfig()

	voiceConfig, err := config.GetVoiceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get voice config")
	}

	animationConfig, err := config.GetAnimationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get animation config")
	}

	speechConfig, err := config.GetSpeechConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get speech config")
	}

	cloudStoreConfig, err := config.GetCloudStoreConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get cloud store config")
	}

	catalogConfig, err := config.GetCatalogConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get catalog config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(60, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	assetStore := adapters.NewLocalAssetStore(uploadsConfig, zeroLogger)

	assetMirror := adapters.NewNoopAssetMirror()
	assetCatalog := adapters.NewNoopAssetCatalog()
	if cloudStoreConfig.Enabled || catalogConfig.Enabled {
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		if cloudStoreConfig.Enabled {
			assetMirror = adapters.NewS3AssetMirror(s3.New(sess), cloudStoreConfig, zeroLogger)
		}
		if catalogConfig.Enabled {
			assetCatalog = adapters.NewDynamoAssetCatalog(dynamodb.New(sess), catalogConfig, zeroLogger)
		}
	}

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	var voiceProvider outbound.VoiceProviderPort = adapters.NewMockVoiceProvider()
	if voiceConfig.Provider == config.ProviderHTTP {
		voiceProvider = adapters.NewHTTPVoiceProvider(contentFetcher, voiceConfig, zeroLogger)
	}

	var animationProvider outbound.AnimationProviderPort = adapters.NewMockAnimationProvider()
	if animationConfig.Provider == config.ProviderHTTP {
		animationProvider = adapters.NewHTTPAnimationProvider(contentFetcher, animationConfig, zeroLogger)
	}

	var speechSynthesizer outbound.SpeechSynthesizerPort = adapters.NewMockSpeechSynthesizer()
	if speechConfig.Engine == config.ProviderHTTP {
		speechSynthesizer = adapters.NewHTTPSpeechSynthesizer(contentFetcher, speechConfig, zeroLogger)
	}

	gatewayService := services.NewGatewayService(assetStore, assetMirror, assetCatalog, voiceProvider, animationProvider, workerPool, zeroLogger)

	speechService := services.NewSpeechService(speechSynthesizer, assetStore, workerPool, zeroLogger)

	gatewayController := controllers.NewGatewayController(gatewayService, zeroLogger)

	speechController := controllers.NewSpeechController(speechService, zeroLogger)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware())

	router.Static(uploadsConfig.PublicPath, uploadsConfig.Dir)

	gatewayController.RegisterRoutes(router)
	speechController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
