package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"prakriti-api/internal/config"
	"prakriti-api/internal/db"
	apihttp "prakriti-api/internal/http"
	"prakriti-api/internal/repository"
	"prakriti-api/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	prakritiRepo := repository.NewPgPrakritiRepository(pool)
	foodRepo := repository.NewPgFoodRepository(pool)

	limiter := service.NewMemoryRateLimiter(cfg.AssessRateWindow, cfg.AssessRateMax)
	cache := service.NewMemoryPrakritiCache(cfg.ResultCacheTTL)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory limiter and cache", zap.Error(err))
			_ = redisClient.Close()
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, cfg.AssessRateWindow, cfg.AssessRateMax)
			cache = service.NewRedisPrakritiCache(redisClient, cfg.ResultCacheTTL)
			defer redisClient.Close()
		}
		cancel()
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, protected routes will reject every token")
	}
	jwtSvc := service.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)

	tables := service.DefaultDoshaTables()
	if cfg.DoshaTablesPath != "" {
		tables, err = service.LoadDoshaTablesFile(cfg.DoshaTablesPath)
		if err != nil {
			logger.Fatal("load dosha tables", zap.Error(err), zap.String("path", cfg.DoshaTablesPath))
		}
		logger.Info("custom dosha tables loaded", zap.String("path", cfg.DoshaTablesPath))
	}
	classifier := service.NewDoshaClassifier(tables)
	prakritiSvc := service.NewPrakritiService(logger, classifier, prakritiRepo, cache, limiter)
	analyticsSvc := service.NewAnalyticsService(logger, foodRepo)

	router := apihttp.NewRouter(logger, jwtSvc,
		apihttp.NewPrakritiHandler(logger, prakritiSvc),
		apihttp.NewAnalyticsHandler(logger, analyticsSvc),
		apihttp.RouterOptions{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			IPRatePerMin:   cfg.IPRatePerMin,
			IPRateBurst:    cfg.IPRateBurst,
		},
	)

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

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
