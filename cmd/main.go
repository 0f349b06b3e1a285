package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/carlosalvarezg/recipe-search/internal/cache"
	"github.com/carlosalvarezg/recipe-search/internal/clicks"
	"github.com/carlosalvarezg/recipe-search/internal/config"
	"github.com/carlosalvarezg/recipe-search/internal/encoder"
	"github.com/carlosalvarezg/recipe-search/internal/handler"
	"github.com/carlosalvarezg/recipe-search/internal/repository"
	"github.com/carlosalvarezg/recipe-search/internal/service"
	"github.com/carlosalvarezg/recipe-search/internal/store"
	pkglog "github.com/carlosalvarezg/recipe-search/pkg/log"
	"github.com/carlosalvarezg/recipe-search/pkg/secrets"
)

func main() {
	// Local development credentials, ignored when absent
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "recipe-search",
	})
	logger := pkglog.L()

	// Redis credentials live in Secrets Manager; fall back to config
	// and environment values when the secret cannot be fetched.
	loadRedisCredentials(cfg)

	// Initialize Redis store
	redisStore, err := store.NewRedisStore(cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisStore.Close()
	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")

	// Initialize embedding encoder
	queryEncoder, err := encoder.NewOpenAIEncoder(cfg.Encoder)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create encoder")
	}
	logger.Info().
		Str("model", cfg.Encoder.Model).
		Int("dimensions", queryEncoder.Dimensions()).
		Msg("encoder initialized")

	// Initialize repository, cache, and click tracker
	searchRepo := repository.NewRedisSearchRepository(redisStore.Client(), cfg.Search.Index)
	queryCache := cache.NewStoreQueryCache(redisStore, cfg.Cache.Prefix)
	clickTracker := clicks.NewStoreTracker(redisStore)

	// Initialize service
	searchService := service.NewSearchService(
		queryEncoder,
		searchRepo,
		queryCache,
		clickTracker,
		cfg.Search.TopK,
		cfg.Cache.TTL,
		cfg.Search.OpTimeout,
	)

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(searchService, cfg.Search.PageSize)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	// Register routes
	httpHandler.RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("recipe-search starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// loadRedisCredentials overrides the Redis config from Secrets Manager
// when the secret is reachable.
func loadRedisCredentials(cfg *config.Config) {
	logger := pkglog.L()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := secrets.NewClient(ctx, cfg.AWS.Region)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create secrets client, using configured redis credentials")
		return
	}

	creds, err := client.GetRedisCredentials(ctx, cfg.AWS.RedisSecret)
	if err != nil {
		logger.Error().Err(err).Str("secret", cfg.AWS.RedisSecret).
			Msg("failed to load redis secret, using configured redis credentials")
		return
	}

	cfg.Redis.Address = net.JoinHostPort(creds.Host, creds.Port)
	cfg.Redis.Username = creds.Username
	cfg.Redis.Password = creds.Password
	logger.Info().Msg("redis credentials loaded from secrets manager")
}
