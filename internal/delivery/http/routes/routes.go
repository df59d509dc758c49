package routes

import (
	"log"

	"campus-placement/internal/config"
	"campus-placement/internal/database"
	"campus-placement/internal/delivery/http/handler"
	v1 "campus-placement/internal/delivery/http/routes/v1"
	"campus-placement/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	cache    usecase.Cache
	notifier usecase.DashboardNotifier
	logger   *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.Cache, notifier usecase.DashboardNotifier, logger *log.Logger) *Registry {
	return &Registry{
		cfg:      cfg,
		db:       db,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		health:   handler.NewHealthHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.notifier, r.logger)
}
