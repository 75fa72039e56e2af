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

	"go.uber.org/zap"

	"cafe/internal/api/router"
	"cafe/internal/api/util"
	"cafe/internal/cache"
	"cafe/internal/config"
	"cafe/internal/core/repository"
	"cafe/internal/core/service"
	"cafe/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecretGenerated {
		zap.L().Warn("JWT_SECRET not set, using a random secret; issued tokens will not survive a restart")
	}

	// Connect to MongoDB
	db, err := config.ConnectMongoDB(config.NewMongoConfig())
	if err != nil {
		zap.L().Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(ctx)
	}()

	menuCache := cache.New(cfg.RedisURL)
	defer menuCache.Close()

	zap.L().Info("menu cache", zap.Bool("enabled", menuCache.Enabled()))

	uploads, err := storage.NewUploadStore(cfg.UploadDir, cfg.UploadMaxWidth)
	if err != nil {
		zap.L().Fatal("failed to prepare upload dir", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	// Initialize repositories with MongoDB
	userRepo := repository.NewMongoUserRepository(db)
	menuRepo := repository.NewMongoMenuRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	bookingRepo := repository.NewMongoBookingRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := userRepo.EnsureIndexes(startupCtx); err != nil {
		zap.L().Warn("failed to ensure user indexes", zap.Error(err))
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo, uploads, menuCache, cfg.BaseURL)
	orderService := service.NewOrderService(orderRepo)

	if _, err := menuService.Seed(startupCtx, service.DefaultMenu(), service.MinSeededItems); err != nil {
		zap.L().Error("failed to seed menu", zap.Error(err))
	}
	cancelStartup()

	handler := router.NewRouter(router.Deps{
		AuthService:      service.NewAuthService(userRepo, service.NewRolePolicy(cfg.AdminEmails)),
		MenuService:      menuService,
		OrderService:     orderService,
		BookingService:   service.NewBookingService(bookingRepo),
		ReviewService:    service.NewReviewService(reviewRepo),
		AnalyticsService: service.NewAnalyticsService(orderRepo),
		Tokens:           util.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		UploadDir:        uploads.Dir(),
		Ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("server starting", zap.String("addr", server.Addr), zap.String("public_url", cfg.BaseURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
