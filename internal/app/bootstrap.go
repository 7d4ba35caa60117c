package app

import (
	"fmt"
	"log"
	"strings"

	"techshift/internal/config"
	"techshift/internal/delivery/http/handler"
	"techshift/internal/delivery/http/middleware"
	"techshift/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f)

	jobsHandler := handler.NewJobsHandler(c.JobSearch, c.Prefs, c.LiveConfigured)
	prefsHandler := handler.NewPreferencesHandler(c.Prefs)
	authMw := middleware.NewAuthMiddleware(c.JWT)

	routes.NewRegistry(jobsHandler, prefsHandler, authMw).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
