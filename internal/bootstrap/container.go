package bootstrap

import (
	"context"
	"log"

	"talentflow-be/internal/config"
	"talentflow-be/internal/controller"
	"talentflow-be/internal/handler"
	"talentflow-be/internal/pkg/logger"
	"talentflow-be/internal/pkg/mailer"
	"talentflow-be/internal/repository/memory"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/internal/service"
	"talentflow-be/internal/websocket"
	"talentflow-be/pkg/approval"
	"talentflow-be/pkg/pipeline"
	"talentflow-be/pkg/store"

	pktNats "talentflow-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CandidateController   controller.ICandidateController
	RequisitionController controller.IRequisitionController
	PipelineController    controller.IPipelineController
	OfferController       controller.IOfferController
	OpsController         controller.IOpsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Engines and Services
	pipelineEngine := pipeline.NewEngine()
	approvalEngine := approval.NewEngine(cfg.Approval.StrictSequence)
	boardCache := memory.NewBoardCache()
	snapshots := store.NewCollectionStore(cfg.Snapshot.Dir)

	publisherService := service.NewPublisherService(cfg.Pipeline.EventsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Pipeline.EventsTopic,
		uowFactory,
	)

	candidateService := service.NewCandidateService(uowFactory, cfg.Pipeline.AgingThresholdDays)
	requisitionService := service.NewRequisitionService(uowFactory, approvalEngine, natsPub)
	pipelineService := service.NewPipelineService(
		uowFactory,
		pipelineEngine,
		boardCache,
		publisherService,
		natsPub,
	)
	offerService := service.NewOfferService(uowFactory, approvalEngine, emailService, natsPub)
	opsService := service.NewOpsService(uowFactory, snapshots, sysLogger)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		CandidateController:   controller.NewCandidateController(candidateService),
		RequisitionController: controller.NewRequisitionController(requisitionService),
		PipelineController:    controller.NewPipelineController(pipelineService),
		OfferController:       controller.NewOfferController(offerService),
		OpsController:         controller.NewOpsController(opsService),

		ConsumerService: consumerService,
	}
}
