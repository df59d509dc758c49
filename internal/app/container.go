package app

import (
	"context"
	"database/sql"
	"log"
	"time"

	"campus-placement/internal/config"
	"campus-placement/internal/database"
	dbpostgres "campus-placement/internal/database/postgres"
	"campus-placement/internal/infrastructure/cache"
	"campus-placement/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		Logger: logger,
	}, nil
}

// SQLDB exposes the database/sql view of the pool for tooling that needs it,
// such as the migration runner.
func (c *Container) SQLDB() *sql.DB {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.SQLDB()
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
