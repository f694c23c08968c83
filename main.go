package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jorotodorovv/art-on-display/awsx"
	"github.com/jorotodorovv/art-on-display/config"
	"github.com/jorotodorovv/art-on-display/controllers"
	"github.com/jorotodorovv/art-on-display/database"
	"github.com/jorotodorovv/art-on-display/kafka"
	"github.com/jorotodorovv/art-on-display/logger"
	"github.com/jorotodorovv/art-on-display/middleware"
	"github.com/jorotodorovv/art-on-display/models"
	"github.com/jorotodorovv/art-on-display/repository"
	"github.com/jorotodorovv/art-on-display/routes"
	"github.com/jorotodorovv/art-on-display/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	db, err := database.ConnectPostgres(cfg, zapLogger,
		&models.ArtworkTag{},
		&models.Artwork{},
		&models.Order{},
		&models.OrderItem{},
		&models.SiteContent{},
	)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer database.Close(db)

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	cartStore := database.NewRedisCartStore(redisClient, time.Duration(cfg.CartTTLHours)*time.Hour, zapLogger)

	artworkRepo := repository.NewGormArtworkRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	contentRepo := repository.NewGormContentRepository(db)

	stripeClient := services.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookKey)

	// Optional event targets. Either may be disabled by leaving its config
	// empty.
	var kafkaProducer *kafka.Producer
	var eventSink services.OrderEventSink
	{
		var producer services.KafkaOrderProducer
		var snsClient awsx.SNSPublisher

		if cfg.KafkaBrokers != "" {
			kafkaProducer = kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaOrderTopic)
			producer = kafkaProducer
		}
		if cfg.OrderSNSTopicARN != "" {
			awsCfg, err := awsx.LoadConfig(context.Background())
			if err != nil {
				zapLogger.Fatal("Failed to load AWS config", zap.Error(err))
			}
			snsClient = awsx.NewSNSClient(awsCfg)
		}
		if producer != nil || snsClient != nil {
			eventSink = services.NewOrderEventPublisher(producer, snsClient, cfg.OrderSNSTopicARN, zapLogger)
		}
	}
	if kafkaProducer != nil {
		defer kafkaProducer.Close()
	}

	var presigner *awsx.S3Presigner
	if cfg.S3Bucket != "" {
		awsCfg, err := awsx.LoadConfig(context.Background())
		if err != nil {
			zapLogger.Fatal("Failed to load AWS config", zap.Error(err))
		}
		presigner = awsx.NewS3Presigner(awsCfg, cfg.S3Bucket)
	}

	checkoutService := services.NewCheckoutService(
		orderRepo, artworkRepo, cartStore, stripeClient, eventSink, cfg.PublicBaseURL, zapLogger,
	)
	finalizerService := services.NewFinalizerService(orderRepo, cartStore, eventSink, zapLogger)
	orderService := services.NewOrderService(orderRepo, zapLogger)

	auth := middleware.NewAuth(cfg.JWTSecret)
	rateLimiter := middleware.NewRateLimiter(rate.Limit(20), 40, 10*time.Minute)
	defer rateLimiter.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zapLogger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(rateLimiter.Middleware())

	routes.Register(r, routes.Controllers{
		Artworks: controllers.NewArtworkController(artworkRepo, zapLogger),
		Cart:     controllers.NewCartController(cartStore, artworkRepo, zapLogger),
		Checkout: controllers.NewCheckoutController(checkoutService, zapLogger),
		Payments: controllers.NewPaymentController(finalizerService, stripeClient, zapLogger),
		Orders:   controllers.NewOrderController(orderService, zapLogger),
		Content:  controllers.NewContentController(contentRepo, zapLogger),
		Uploads:  controllers.NewUploadController(presigner, zapLogger),
	}, auth)

	zapLogger.Info("Gallery backend running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Server failed", zap.Error(err))
	}
}
