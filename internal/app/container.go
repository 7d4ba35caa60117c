package app

import (
	"context"
	"log"
	"time"

	"techshift/internal/config"
	"techshift/internal/database"
	"techshift/internal/database/migration"
	dbpostgres "techshift/internal/database/postgres"
	"techshift/internal/discovery"
	"techshift/internal/infrastructure/cache"
	"techshift/internal/pkg/jwt"
	"techshift/internal/repository"
	"techshift/internal/usecase"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis

	Aggregator *discovery.Aggregator
	JobSearch  usecase.JobSearchUsecase
	Prefs      usecase.PreferencesUsecase
	PrefsRepo  repository.PreferencesRepository
	JWT        jwt.Service

	// LiveConfigured mirrors the credential gate on the matching endpoint:
	// without Adzuna credentials the matching route serves mock data only.
	LiveConfigured bool
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := migration.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger := log.Default()

	redisCache := cache.NewRedis(logger)

	sources := []discovery.Source{
		discovery.NewAdzunaSource(cfg.Discovery.AdzunaAppID, cfg.Discovery.AdzunaAppKey, logger),
		discovery.NewRemoteOKSource(logger),
		discovery.NewRemotiveSource(logger),
		discovery.NewArbeitnowSource(logger),
		discovery.NewJobicySource(logger),
		discovery.NewJoobleSource(cfg.Discovery.JoobleAPIKey, logger),
	}
	aggregator := discovery.NewAggregator(sources, logger)

	prefsRepo := repository.NewPostgresPreferencesRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
	)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,

		Aggregator: aggregator,
		JobSearch:  usecase.NewJobSearchUsecase(aggregator, redisCache, logger),
		Prefs:      usecase.NewPreferencesUsecase(prefsRepo),
		PrefsRepo:  prefsRepo,
		JWT:        jwtSvc,

		LiveConfigured: cfg.Discovery.AdzunaAppID != "" || cfg.Discovery.AdzunaAppKey != "",
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
