package server

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutrivo/backend/config"
	"github.com/nutrivo/backend/internal/api"
	"github.com/nutrivo/backend/internal/middleware"
	"github.com/nutrivo/backend/internal/service"
)

// Server wires services and handlers behind a gin router.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds the full server. redisClient may be nil, which disables
// suggestion caching but nothing else.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	var cache service.SuggestionCache
	if cfg.Cache.Enabled && redisClient != nil {
		cache = service.NewRedisSuggestionCache(redisClient)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	suggestions := service.NewSuggestionService(db, cache, rng, logger, service.SuggestionOptions{
		CacheTTL:         cfg.Cache.SuggestionTTL,
		PlaceholderImage: cfg.Suggestions.PlaceholderImage,
	})
	recipes := service.NewRecipeService(db, logger)

	api.NewHealthHandler(db, redisClient).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	api.NewSuggestionHandler(suggestions, logger).RegisterRoutes(v1)
	api.NewRecipeHandler(recipes, logger).RegisterRoutes(v1)

	return &Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
	}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying router for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
