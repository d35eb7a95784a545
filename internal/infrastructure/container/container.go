package container

import (
	"github.com/RomainBraquet/surfai-backend/internal/config"
	"github.com/RomainBraquet/surfai-backend/internal/delivery/http"
	"github.com/RomainBraquet/surfai-backend/internal/delivery/http/handler"
	"github.com/RomainBraquet/surfai-backend/internal/delivery/http/middleware"
	"github.com/RomainBraquet/surfai-backend/internal/infrastructure/database"
	"github.com/RomainBraquet/surfai-backend/internal/infrastructure/server"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
	"github.com/RomainBraquet/surfai-backend/internal/repository/memory"
	"github.com/RomainBraquet/surfai-backend/internal/repository/postgres"
	"github.com/RomainBraquet/surfai-backend/internal/repository/redisstore"
	"github.com/RomainBraquet/surfai-backend/internal/repository/tiered"
	"github.com/RomainBraquet/surfai-backend/internal/usecase/profile"
	"github.com/RomainBraquet/surfai-backend/internal/usecase/recommend"
	"github.com/RomainBraquet/surfai-backend/internal/usecase/stats"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container. A durable
// store that cannot be reached at boot is not fatal: the repository then
// runs fallback-only and every read/write stays available.
func NewContainer(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg}

	// Initialize the durable store backend
	var profileStore repository.ProfileStore
	var sessionRepo repository.SessionRepository

	switch cfg.Storage.Type {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Warn().Err(err).Msg("postgres unavailable, running fallback-only")
			break
		}
		c.DB = db
		profileStore, err = postgres.NewProfileStore(db)
		if err != nil {
			log.Warn().Err(err).Msg("profile store init failed, running fallback-only")
			profileStore = nil
		}
		sessionRepo, err = postgres.NewSessionRepository(db)
		if err != nil {
			log.Warn().Err(err).Msg("session store init failed, using in-memory sessions")
			sessionRepo = nil
		}
	case config.StorageRedis:
		client, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running fallback-only")
			break
		}
		c.Redis = client
		profileStore = redisstore.NewProfileStore(client)
	case config.StorageNone:
		log.Info().Msg("no durable store configured, running fallback-only")
	}

	if sessionRepo == nil {
		sessionRepo = memory.NewSessionRepository()
	}

	// Initialize repositories
	profileRepo := tiered.NewProfileRepository(profileStore, cfg.Cache.ProfileTTL, log)

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(profileRepo, sessionRepo, log)
	recommendUseCase := recommend.NewRecommendUseCase(profileRepo)
	statsUseCase := stats.NewStatsUseCase(profileRepo, sessionRepo)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileUseCase)
	recommendHandler := handler.NewRecommendHandler(recommendUseCase)
	statsHandler := handler.NewStatsHandler(statsUseCase)
	healthHandler := handler.NewHealthHandler(profileStore)

	// Initialize middleware
	identity := middleware.NewIdentityMiddleware()

	// Initialize router
	router := http.NewRouter(
		profileHandler,
		recommendHandler,
		statsHandler,
		healthHandler,
		identity,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	c.Server = server.NewServer(&cfg.Server, ginRouter, log)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			return err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return err
		}
	}
	return nil
}
