package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aniview/database"
	"aniview/internal/api/handler"
	"aniview/internal/api/middleware"
	"aniview/internal/api/repository"
	"aniview/internal/api/service"
	"aniview/internal/config"
	"aniview/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	// Stats caching is optional; without Redis every stats read re-aggregates
	var statsCache *service.StatsCache
	if cfg.RedisURL != "" {
		statsCache, err = service.NewStatsCache(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
		if err != nil {
			logger.Warn("stats cache unavailable, continuing without it", zap.Error(err))
			statsCache = nil
		}
	}

	// Repositories
	reviewRepo := repository.NewReviewRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	partyRepo := repository.NewPartyRepository(db)

	// Services
	authService := service.NewAuthService(cfg)
	reviewService := service.NewReviewService(reviewRepo, voteRepo, statsCache)
	userService := service.NewUserService(userRepo)
	historyService := service.NewHistoryService(historyRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	watchlistService := service.NewWatchlistService(watchlistRepo)
	partyService := service.NewPartyService(partyRepo)

	// Handlers
	reviewHandler := handler.NewReviewHandler(reviewService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	historyHandler := handler.NewHistoryHandler(historyService, logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, logger)
	watchlistHandler := handler.NewWatchlistHandler(watchlistService, logger)
	partyHandler := handler.NewPartyHandler(partyService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	api := r.Group("/api", limiter.Middleware())
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Review API is running"})
		})

		reviewHandler.RegisterRoutes(api, authService)
		userHandler.RegisterRoutes(api)
		historyHandler.RegisterRoutes(api, authService)
		favoriteHandler.RegisterRoutes(api, authService)
		watchlistHandler.RegisterRoutes(api, authService)
		partyHandler.RegisterRoutes(api, authService)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
