package bootstrap

import (
	"log"

	"therapy-insights-be/internal/config"
	"therapy-insights-be/internal/controller"
	"therapy-insights-be/internal/pkg/logger"
	"therapy-insights-be/internal/pkg/serverutils"
	"therapy-insights-be/internal/repository/implementation"
	"therapy-insights-be/internal/repository/memory"
	"therapy-insights-be/internal/service"
	"therapy-insights-be/pkg/insight/aggregate"
	"therapy-insights-be/pkg/insight/generate"
	"therapy-insights-be/pkg/insight/prompt"
	"therapy-insights-be/pkg/llm"
	"therapy-insights-be/pkg/llm/openai"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InsightController controller.IInsightController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	sessionRepo := implementation.NewSessionRepository(db)
	insightRepo := implementation.NewPatientInsightRepository(db)
	auditLogRepo := implementation.NewAuditLogRepository(db)
	previewRepo := memory.NewInsightPreviewRepository()

	// 4. Generation pipeline
	// A live provider exists only when credentials do. The dispatcher falls
	// back to the deterministic generator when provider is nil.
	var llmProvider llm.LLMProvider
	if cfg.Ai.OpenAIAPIKey != "" {
		llmProvider = openai.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.OpenAIBaseURL, cfg.Ai.Model)
		log.Printf("[INFO] Insight generation mode: LIVE (%s)", cfg.Ai.Model)
	} else {
		log.Printf("[INFO] Insight generation mode: MOCK (no API key configured)")
	}

	dispatcher := generate.NewDispatcher(generate.Config{
		APIKey:    cfg.Ai.OpenAIAPIKey,
		Model:     cfg.Ai.Model,
		MaxTokens: cfg.Ai.MaxTokens,
	}, llmProvider, sysLogger)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AuditTopic,
		auditLogRepo,
		sysLogger,
	)

	insightService := service.NewInsightService(
		aggregate.NewAggregator(sessionRepo, sysLogger),
		aggregate.NewFormatter(),
		prompt.NewBuilder(),
		dispatcher,
		generate.NewMapper(),
		insightRepo,
		auditLogRepo,
		previewRepo,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		InsightController: controller.NewInsightController(
			insightService,
			serverutils.NewJwtMiddleware(cfg.App.JwtSecret),
		),

		ConsumerService: consumerService,
	}
}
