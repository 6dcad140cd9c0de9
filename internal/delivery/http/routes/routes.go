package routes

import (
	"log"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/delivery/http/handler"
	v1 "jobmatch/internal/delivery/http/routes/v1"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/infrastructure/storage"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps v1.Deps
}

func NewRegistry(cfg config.Config, db database.DB, rdb *cache.Redis, store *storage.S3Store, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{deps: v1.Deps{
		Config: cfg,
		DB:     db,
		Cache:  rdb,
		Store:  store,
		Hub:    hub,
		Logger: logger,
	}}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.deps.DB).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
