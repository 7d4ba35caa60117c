package v1

import (
	"techshift/internal/delivery/http/handler"
	"techshift/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, jobs *handler.JobsHandler, prefs *handler.PreferencesHandler, authMw *middleware.AuthMiddleware) {
	if r == nil || authMw == nil {
		return
	}

	protected := r.Group("", authMw.Middleware())

	if jobs != nil {
		jobs.RegisterRoutes(protected)
	}
	if prefs != nil {
		prefs.RegisterRoutes(protected)
	}
}
