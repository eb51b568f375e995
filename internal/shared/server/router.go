package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diagnostics-backend/internal/delivery"
	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/gamification"
	"diagnostics-backend/internal/llm"
	"diagnostics-backend/internal/llm/openai"
	"diagnostics-backend/internal/reports"
	"diagnostics-backend/internal/responses"
	"diagnostics-backend/internal/sessions"
	"diagnostics-backend/internal/shared/config"
	"diagnostics-backend/internal/shared/metrics"
	"diagnostics-backend/internal/shared/server/middleware"
	"diagnostics-backend/internal/shared/server/respond"
	"diagnostics-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 30},
				"REPORTS": {Rate: 0.5, Burst: 5},
			},
		}),
	)

	// Dependencies
	library, err := diagnostic.LoadLibrary(cfg.RulesFile)
	if err != nil {
		log.Printf("failed to load rules file %q, using built-in rules: %v", cfg.RulesFile, err)
		library = diagnostic.DefaultLibrary()
	}

	var llmClient llm.Client = llm.UnconfiguredClient{}
	if cfg.OpenAIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
		if err != nil {
			log.Printf("failed to build OpenAI client, reports will use fallback: %v", err)
		} else {
			llmClient = client
		}
	}

	var sender delivery.Sender
	if cfg.SendGridKey != "" {
		sg, err := delivery.NewSendGridSender(cfg.SendGridKey, 0)
		if err != nil {
			log.Printf("failed to build SendGrid sender, email will be simulated: %v", err)
		} else {
			sender = sg
		}
	}

	var sessionStore sessions.Store
	if cfg.RedisURL != "" {
		store, err := sessions.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Printf("failed to connect redis, falling back to memory sessions: %v", err)
			sessionStore = sessions.NewMemoryStore()
		} else {
			sessionStore = store
		}
	} else {
		sessionStore = sessions.NewMemoryStore()
	}

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var responseRepo responses.Repo
	if sqlDB != nil {
		responseRepo = &responses.PGRepo{DB: sqlDB}
	} else {
		responseRepo = responses.NewMemoryRepo()
	}
	responseSvc := responses.NewService(responseRepo)
	responseHandler := responses.NewHandler(responseSvc)

	sessionSvc := sessions.NewService(sessionStore)
	sessionHandler := sessions.NewHandler(sessionSvc, responseSvc)

	calculator := gamification.NewCalculator(sessionStore)
	previewHandler := gamification.NewHandler(library, calculator, sessionStore)

	reportSvc := reports.NewService(llmClient, library)
	reportHandler := reports.NewHandler(reportSvc)

	deliverySvc := delivery.NewService(sender)
	deliveryHandler := delivery.NewHandler(deliverySvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	sessionHandler.RegisterRoutes(api)
	previewHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)
	deliveryHandler.RegisterRoutes(api)
	responseHandler.RegisterRoutes(api)

	return r
}

// rateLimitGroup puts the report endpoints, which fan out to OpenAI and
// SendGrid, under a tighter budget than ordinary traffic.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && strings.HasPrefix(c.FullPath(), "/api/v1/reports/") {
		return "REPORTS"
	}
	return "DEFAULT"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
