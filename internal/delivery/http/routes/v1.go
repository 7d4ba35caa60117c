package routes

import (
	"techshift/internal/delivery/http/handler"
	"techshift/internal/delivery/http/middleware"
	v1 "techshift/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, jobs *handler.JobsHandler, prefs *handler.PreferencesHandler, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	v1.Register(r, jobs, prefs, authMw)
}
