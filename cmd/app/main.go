package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/client"
	"courseadmin/internal/config"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"
	"courseadmin/internal/infrastructure/repository"
	"courseadmin/internal/infrastructure/security"
	"courseadmin/internal/infrastructure/storage"
	"courseadmin/internal/logger"
	"courseadmin/internal/middleware"
	grpc_server "courseadmin/internal/transport/grpc"
	handlers "courseadmin/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	log := logger.New(cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.APIBaseURL == "" {
		log.Fatal().Msg("API_BASE_URL is required")
	}
	if cfg.Env != "local" && cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Redis: сессии, кеш запросов, лимит логина
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")

	// 3. Журнал действий (опционально)
	var auditStore usecase.AuditStore
	if cfg.DatabaseEnabled() {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to DB")
		}
		if err := db.AutoMigrate(&domain.AuditEntry{}); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate DB")
		}
		auditStore = repository.NewAuditRepository(db)
		log.Info().Str("host", cfg.DBHost).Msg("Activity log enabled")
	}

	// 4. Загрузка медиа (опционально)
	var presigner usecase.Presigner
	if cfg.MediaEnabled() {
		media, err := storage.NewMediaStorage(ctx, storage.Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to init media storage")
		}
		presigner = media
	}

	tokens, err := security.NewSessionTokens(cfg.SessionSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid SESSION_SECRET")
	}

	// 5. Клиент API и юзкейсы
	api := client.NewAPI(client.New(cfg.APIBaseURL, cfg.APITimeout, log))
	queryCache := cache.NewQueryCache(rdb, cfg.CacheTTL)

	audit := usecase.NewAuditUseCase(auditStore, log)
	authUC := usecase.NewAuthUseCase(api, cache.NewSessionStore(rdb), tokens, cfg.SessionTTL, log)
	catalog := usecase.NewCatalog(api, queryCache, audit, log)

	prober := grpc_server.NewHealthProber([]grpc_server.Check{
		{Name: "redis", Fn: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		{Name: "api", Fn: api.Ping},
	}, cfg.HealthInterval, log)
	go prober.Run(ctx)

	router := handlers.NewRouter(handlers.Deps{
		Auth:        authUC,
		Catalog:     catalog,
		Cascade:     usecase.NewCascadeUseCase(catalog.Courses, catalog.Categories, catalog.SubCategories, catalog.Specialties, catalog.Countries),
		Calendar:    usecase.NewCalendarUseCase(catalog.Events),
		Content:     usecase.NewContentUseCase(api.Pages, queryCache, audit, log),
		Media:       usecase.NewMediaUseCase(presigner),
		Audit:       audit,
		Limiter:     middleware.NewRateLimiter(rdb, log),
		LoginLimit:  cfg.LoginRateLimit,
		LoginWindow: cfg.LoginRateWindow,
		Cookie: middleware.CookieConfig{
			Name:   "admin_session",
			Domain: cfg.CookieDomain,
			Secure: cfg.CookieSecure,
		},
		Origins:   cfg.Origins(),
		StaticDir: cfg.StaticDir,
		Health:    prober,
		Logger:    log,
	})

	// 6. gRPC health
	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to listen")
	}
	grpcServer := grpc_server.NewServer(prober)
	go func() {
		log.Info().Str("port", cfg.GRPCPort).Msg("gRPC health server running")
		if err := grpcServer.Serve(lis); err != nil {
			log.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	// 7. HTTP
	srv := &http.Server{
		Addr:         cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.APITimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("Admin dashboard running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to run server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	grpcServer.GracefulStop()
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Redis")
	}
	log.Info().Msg("Server shut down gracefully")
}
