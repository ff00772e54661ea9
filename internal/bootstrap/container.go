package bootstrap

import (
	"context"
	"log"

	"sports-academy-be/internal/config"
	"sports-academy-be/internal/controller"
	"sports-academy-be/internal/handler"
	"sports-academy-be/internal/pkg/logger"
	"sports-academy-be/internal/pkg/mailer"
	"sports-academy-be/internal/repository/unitofwork"
	"sports-academy-be/internal/service"
	"sports-academy-be/internal/websocket"

	pktNats "sports-academy-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	StudentController      controller.IStudentController
	PlanController         controller.IPlanController
	SubscriptionController controller.ISubscriptionController
	TransactionController  controller.ITransactionController
	AttendanceController   controller.IAttendanceController
	PaymentController      controller.IPaymentController
	ReportController       controller.IReportController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

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

	// 2. In-Process Job Queue
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

	// 3. Services
	billingPublisher := service.NewPublisherService(cfg.App.BillingTopic, pubSub)

	authService := service.NewAuthService(uowFactory)
	oauthService := service.NewOAuthService(uowFactory)

	studentService := service.NewStudentService(uowFactory)
	planService := service.NewPlanService(uowFactory)
	subscriptionService := service.NewSubscriptionService(uowFactory, natsPub, sysLogger)
	transactionService := service.NewTransactionService(
		uowFactory,
		natsPub,
		billingPublisher,
		sysLogger,
		cfg.App.BaseURL,
	)
	attendanceService := service.NewAttendanceService(uowFactory, subscriptionService, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, transactionService, sysLogger)
	reportService := service.NewReportService(uowFactory)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.BillingTopic,
		uowFactory,
		transactionService,
		emailService,
		sysLogger,
	)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, emailService, wsLogger)

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		StudentController:      controller.NewStudentController(studentService, attendanceService),
		PlanController:         controller.NewPlanController(planService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService, transactionService),
		TransactionController:  controller.NewTransactionController(transactionService),
		AttendanceController:   controller.NewAttendanceController(attendanceService),
		PaymentController:      controller.NewPaymentController(paymentService),
		ReportController:       controller.NewReportController(reportService, subscriptionService),

		ConsumerService:     consumerService,
		NotificationService: notifService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
