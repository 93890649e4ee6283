package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bigfive-api/internal/config"
	"bigfive-api/internal/db"
	apihttp "bigfive-api/internal/http"
	"bigfive-api/internal/llm"
	"bigfive-api/internal/questionnaire"
	"bigfive-api/internal/repository"
	"bigfive-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	catalog := questionnaire.DefaultCatalog()
	resultRepo := repository.NewPgResultRepository(pool)

	var interpreter *service.InterpretationService
	if cfg.LLMAPIKey != "" {
		llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
		interpreter = service.NewInterpretationService(llmClient, logger)
	} else {
		logger.Warn("llm api key not configured, interpretations disabled")
	}

	var submitLimiter service.SubmitRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			submitLimiter = service.NewRedisSubmitRateLimiter(
				redisClient,
				time.Duration(cfg.SubmitRateWindow)*time.Minute,
				cfg.SubmitRateMax,
			)
		}
		cancel()
	}

	personalitySvc := service.NewPersonalityService(catalog, resultRepo, interpreter, logger, cfg.DefaultLanguage)
	sessionStore := questionnaire.NewSessionStore(catalog, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	questionnaireHandler := apihttp.NewQuestionnaireHandler(logger, personalitySvc)
	sessionHandler := apihttp.NewSessionHandler(logger, sessionStore, personalitySvc, submitLimiter)
	resultsHandler := apihttp.NewResultsHandler(logger, personalitySvc, submitLimiter)
	router := apihttp.NewRouter(logger, questionnaireHandler, sessionHandler, resultsHandler, cfg.CORSAllowedOrigin, pingFn(pool))

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Shutdown ordenado ante SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func pingFn(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return db.Ping(ctx, pool)
	}
}
