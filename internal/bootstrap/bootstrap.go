package bootstrap

import (
	"context"
	"fmt"
	"time"

	"loyalty-server/internal/config"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	agentHandler "loyalty-server/internal/agents/handler"
	agentProcessor "loyalty-server/internal/agents/processor"
	authHandler "loyalty-server/internal/auth/handler"
	authProcessor "loyalty-server/internal/auth/processor"
	bonusHandler "loyalty-server/internal/bonus/handler"
	bonusProcessor "loyalty-server/internal/bonus/processor"
	queueHandler "loyalty-server/internal/callqueue/handler"
	queueProcessor "loyalty-server/internal/callqueue/processor"
	kafkaClient "loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/clients/moysklad"
	"loyalty-server/internal/clients/sms"
	"loyalty-server/internal/clients/telegram"
	contactHandler "loyalty-server/internal/contacts/handler"
	contactProcessor "loyalty-server/internal/contacts/processor"
	"loyalty-server/internal/erpsync"
	"loyalty-server/internal/events"
	miniappHandler "loyalty-server/internal/miniapp/handler"
	notificationHandler "loyalty-server/internal/notifications/handler"
	notificationProcessor "loyalty-server/internal/notifications/processor"
	"loyalty-server/internal/ratelimit"
	segmentHandler "loyalty-server/internal/segments/handler"
	segmentProcessor "loyalty-server/internal/segments/processor"
	"loyalty-server/internal/tiers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Metrics *observability.Metrics
	Logger  *observability.Logger

	// Processors shared by the server and the workers
	Bonus         *bonusProcessor.BonusProcessor
	Queues        *queueProcessor.QueueProcessor
	Segments      *segmentProcessor.SegmentProcessor
	Notifications *notificationProcessor.NotificationProcessor
	ERPSync       *erpsync.Syncer

	// Handlers
	AuthHandler         authHandler.Handler
	AgentHandler        agentHandler.Handler
	BonusHandler        bonusHandler.Handler
	QueueHandler        queueHandler.Handler
	ContactHandler      contactHandler.Handler
	NotificationHandler notificationHandler.Handler
	SegmentHandler      segmentHandler.Handler
	MiniAppHandler      miniappHandler.Handler
	MiniAppRateLimit    *ratelimit.Service

	// Kafka producer (for cleanup), nil when publishing is disabled
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	table, err := tiers.NewTable(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to build tier table: %w", err)
	}

	// Event publishing is disabled without brokers
	var producer events.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Warn(ctx, "KAFKA_BROKERS not set, domain events are not published")
	}
	publisher := events.NewPublisher(producer, logger)

	// Initialize clients
	telegramClient := newTelegramSender(ctx, tgbotapi.APIEndpoint, cfg.Services, logger)
	smsClient := sms.NewClient(sms.Config{
		AccountSID:   cfg.Services.TwilioAccountSID,
		AuthToken:    cfg.Services.TwilioAuthToken,
		SMSFrom:      cfg.Services.TwilioSMSFrom,
		WhatsAppFrom: cfg.Services.TwilioWhatsAppFrom,
	}, logger)
	erpClient := moysklad.NewClient(moysklad.Config{
		BaseURL:  cfg.Services.MoySkladBaseURL,
		Token:    cfg.Services.MoySkladToken,
		Timeout:  cfg.Services.UpstreamTimeout,
		CacheTTL: time.Hour,
	}, deps.Metrics, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.JWTSecret, cfg.Services.TelegramBotToken, cfg.Auth.MiniAppMaxAge, logger)
	deps.AuthHandler = authHandler.New(&authProc, logger)

	// Initialize tier service
	tierSvc := tiers.New(&deps.Store, table, logger)

	// Initialize agent processor and handler
	agentProc := agentProcessor.New(&deps.Store, logger)
	deps.AgentHandler = agentHandler.New(&agentProc, logger)

	// Initialize bonus ledger processor and handler
	bonusProc := bonusProcessor.New(&deps.Store, table, publisher, deps.Metrics, logger)
	deps.Bonus = &bonusProc
	deps.BonusHandler = bonusHandler.New(deps.Bonus, tierSvc, logger)

	// Initialize call queue processor and handler
	queueProc := queueProcessor.New(&deps.Store, cfg.Rules, publisher, deps.Metrics, logger)
	deps.Queues = &queueProc
	deps.QueueHandler = queueHandler.New(deps.Queues, logger)

	// Initialize contact history processor and handler
	contactProc := contactProcessor.New(&deps.Store, publisher, logger)
	deps.ContactHandler = contactHandler.New(&contactProc, logger)

	// Initialize notification processor and handler
	notificationProc := notificationProcessor.New(&deps.Store, telegramClient, smsClient, notificationProcessor.Config{
		Concurrency:   cfg.Notify.Concurrency,
		RatePerSecond: cfg.Notify.RatePerSecond,
		Burst:         cfg.Notify.Burst,
	}, deps.Metrics, logger)
	deps.Notifications = &notificationProc
	deps.NotificationHandler = notificationHandler.New(deps.Notifications, logger)

	// Initialize segment processor and handler
	segmentProc := segmentProcessor.New(&deps.Store, cfg.Rules.RFM, logger)
	deps.Segments = &segmentProc
	deps.SegmentHandler = segmentHandler.New(deps.Segments, logger)

	// Initialize Mini App handler
	deps.MiniAppHandler = miniappHandler.New(&agentProc, deps.Bonus, tierSvc, deps.Segments, logger)
	deps.MiniAppRateLimit = ratelimit.NewService(cfg.Server.MiniAppRateLimit)

	// Initialize ERP sync
	deps.ERPSync = erpsync.New(erpClient, &deps.Store, deps.Bonus, cfg.Jobs.ERPSyncLookback, logger)

	return deps, nil
}

// newTelegramSender returns nil when the bot is not configured or the Bot API
// rejects the token; Telegram deliveries then report no_target.
func newTelegramSender(ctx context.Context, endpoint string, cfg config.ServicesConfig, logger *observability.Logger) notificationProcessor.TelegramSender {
	if cfg.TelegramBotToken == "" {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, telegram notifications are disabled")
		return nil
	}
	client, err := telegram.NewClientWithEndpoint(cfg.TelegramBotToken, endpoint, cfg.WebAppURI, cfg.UpstreamTimeout, logger)
	if err != nil {
		logger.WarnWithError(ctx, "telegram bot unavailable, telegram notifications are disabled", err)
		return nil
	}
	return client
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close kafka producer", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
