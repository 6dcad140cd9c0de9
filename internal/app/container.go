package app

import (
	"context"
	"log"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/database/migration"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/infrastructure/storage"
	"jobmatch/internal/ws"
	"jobmatch/migrations"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Store  *storage.S3Store
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{FS: migrations.FS}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Optional collaborators: the service runs without Redis (cache bypass)
	// and without S3 (uploads disabled).
	rdb := cache.NewRedis(logger)
	store, err := storage.NewS3Store(ctx)
	if err != nil {
		logger.Printf("file storage disabled | err=%v", err)
		store = nil
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  rdb,
		Store:  store,
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
