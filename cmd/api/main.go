package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/config"
	"career-compass/internal/db"
	apihttp "career-compass/internal/http"
	"career-compass/internal/llm"
	"career-compass/internal/repository"
	"career-compass/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Catalogo y banco de preguntas: errores aqui son de configuracion y
	// tumban el proceso, no son recuperables en runtime.
	careerCatalog, err := catalog.Load()
	if err != nil {
		logger.Fatal("load career catalog", zap.Error(err))
	}
	questionBank, err := catalog.LoadQuestions()
	if err != nil {
		logger.Fatal("load question bank", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("careers", careerCatalog.Len()))

	var results repository.ResultRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Warn("db ping failed", zap.Error(err))
		}
		results = repository.NewPgResultRepository(pool)
	} else {
		logger.Info("no database configured, results will not be persisted")
	}

	var llmClient llm.Client
	switch cfg.LLMProvider {
	case "gemini":
		client, err := llm.NewGeminiClient(ctx, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			logger.Fatal("gemini client init", zap.Error(err))
		}
		llmClient = client
	default:
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	}

	insightCache := service.NewMemoryInsightCache()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, falling back to memory cache", zap.Error(err))
		} else {
			insightCache = service.NewRedisInsightCache(redisClient)
		}
		cancel()
	}

	budget := service.NewTokenBudget(cfg.InsightDailyTokenBudget)
	insightBreaker := service.NewCircuitBreaker("insight",
		cfg.BreakerFailureThreshold,
		time.Duration(cfg.BreakerRecoverySeconds)*time.Second,
		cfg.BreakerHalfOpenRequests,
	)
	persistBreaker := service.NewCircuitBreaker("persistence",
		cfg.BreakerFailureThreshold,
		time.Duration(cfg.BreakerRecoverySeconds)*time.Second,
		cfg.BreakerHalfOpenRequests,
	)

	insightSvc := service.NewInsightService(
		llmClient,
		insightCache,
		budget,
		insightBreaker,
		service.NewTokenCounter(),
		logger,
		service.InsightOptions{
			Timeout:     time.Duration(cfg.InsightTimeoutSeconds) * time.Second,
			MaxAttempts: cfg.InsightMaxAttempts,
			CacheTTL:    time.Duration(cfg.InsightCacheTTLHours) * time.Hour,
		},
	)

	vectorizer := service.NewTraitVectorizer(questionBank)
	recommendationSvc := service.NewRecommendationService(
		vectorizer,
		careerCatalog,
		insightSvc,
		results,
		persistBreaker,
		logger,
	)

	verifier := service.NewAuthVerifier(cfg.JWTSecret)
	recHandler := apihttp.NewRecommendationHandler(logger, recommendationSvc)
	catHandler := apihttp.NewCatalogHandler(careerCatalog, questionBank)
	router := apihttp.NewRouter(logger, verifier, recHandler, catHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
