package routes

import (
	"techshift/internal/delivery/http/handler"
	"techshift/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	jobs   *handler.JobsHandler
	prefs  *handler.PreferencesHandler
	authMw *middleware.AuthMiddleware
}

func NewRegistry(jobs *handler.JobsHandler, prefs *handler.PreferencesHandler, authMw *middleware.AuthMiddleware) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		jobs:   jobs,
		prefs:  prefs,
		authMw: authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.jobs, r.prefs, r.authMw)
}
