package bootstrap

import (
	"context"
	"log"

	"wine-club-be/internal/config"
	"wine-club-be/internal/controller"
	"wine-club-be/internal/pkg/logger"
	"wine-club-be/internal/pkg/serverutils"
	"wine-club-be/internal/repository/cache"
	"wine-club-be/internal/repository/implementation"
	"wine-club-be/internal/repository/memory"
	"wine-club-be/internal/repository/unitofwork"
	"wine-club-be/internal/service"
	"wine-club-be/pkg/events"
	"wine-club-be/pkg/llm/factory"
	pktNats "wine-club-be/pkg/nats"
	"wine-club-be/pkg/session"
	"wine-club-be/pkg/wine"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WineController       controller.IWineController
	CollectionController controller.ICollectionController

	// Middleware
	Auth         fiber.Handler
	OptionalAuth fiber.Handler

	// Background Services (Exposed for main.go to run)
	ScanConsumerService service.IScanConsumerService

	Sessions *session.Registry
	Logger   logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	scanLogger := logger.NewIsolatedLogger(cfg.App.ScanLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)

	// 3. Infrastructure
	var eventPublisher events.Publisher = events.NewNopPublisher()
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
	}

	collectionCache := cache.NewNoopCollectionCache()
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis, collection cache disabled: %v", err)
	} else {
		collectionCache = cache.NewRedisCollectionCache(rdb, cfg.Wine.CollectionCacheTTL)
	}

	// 4. Vision pipeline
	vision, err := factory.NewVisionProvider(context.Background(), factory.VisionConfig{
		Provider: cfg.Ai.VisionProvider,
		Model:    cfg.Ai.VisionModel,
		BaseURL:  cfg.Ai.VisionBaseURL,
		APIKey:   cfg.Ai.APIKey(),
		Timeout:  cfg.Ai.Timeout,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize vision provider: %v", err)
	}
	log.Printf("[INFO] Using Vision Provider: %s (%s)", cfg.Ai.VisionProvider, cfg.Ai.VisionModel)

	pipeline := wine.NewPipeline(
		wine.NewInference(vision, cfg.Ai.MaxTokens),
		wine.NewMatcher(implementation.NewCuratedNoteRepository(db)),
		wine.NewMerger(cfg.Wine.CuratorName),
		sysLogger,
	)

	// 5. Sessions
	sessions := session.NewRegistry()
	sessions.Subscribe(func(c session.Change) {
		details := map[string]interface{}{"state": string(c.State)}
		if c.Reason != "" {
			details["reason"] = c.Reason
		}
		sysLogger.Debug("SESSION", "Auth state changed", details)
	})
	tracker := session.NewTracker(sessions)

	// 6. Services
	scanStore := memory.NewScanStore(cfg.Wine.ScanResultTTL, cfg.Ai.Timeout*2)
	scanPublisher := service.NewScanPublisherService(cfg.Wine.ScanTopic, pubSub)
	scanConsumer := service.NewScanConsumerService(pubSub, cfg.Wine.ScanTopic, uowFactory, eventPublisher, scanLogger)

	wineService := service.NewWineService(pipeline, scanStore, scanPublisher, uowFactory, sysLogger)
	collectionService := service.NewCollectionService(uowFactory, collectionCache, scanStore, eventPublisher, sysLogger)

	closers := []func(){
		func() { _ = pubSub.Close() },
		func() { _ = rdb.Close() },
		func() { _ = sysLogger.Sync() },
		func() { _ = scanLogger.Sync() },
	}
	if natsPub != nil {
		closers = append(closers, natsPub.Close)
	}

	return &Container{
		WineController:       controller.NewWineController(wineService),
		CollectionController: controller.NewCollectionController(collectionService),
		Auth:                 serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret, tracker),
		OptionalAuth:         serverutils.NewOptionalJwtMiddleware(cfg.Auth.JwtSecret, tracker),
		ScanConsumerService:  scanConsumer,
		Sessions:             sessions,
		Logger:               sysLogger,
		closers:              closers,
	}
}

// Close releases broker, cache and logger resources.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
