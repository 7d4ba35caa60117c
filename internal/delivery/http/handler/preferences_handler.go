package handler

import (
	"errors"
	"time"

	"techshift/internal/delivery/http/dto"
	"techshift/internal/delivery/http/middleware"
	"techshift/internal/pkg/response"
	"techshift/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PreferencesHandler struct {
	uc usecase.PreferencesUsecase
}

func NewPreferencesHandler(uc usecase.PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

func (h *PreferencesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs/preferences")
	grp.Get("", h.HandleGet)
	grp.Put("", h.HandleSave)
}

func (h *PreferencesHandler) HandleGet(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	prefs, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrPreferencesNotFound) {
			return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PreferencesResponse{})
		}
		return mapPreferencesUsecaseError(err)
	}

	updated := ""
	if !prefs.UpdatedAt.IsZero() {
		updated = prefs.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PreferencesResponse{
		TargetRoles:      prefs.TargetRoles,
		Locations:        prefs.Locations,
		RemotePreference: prefs.RemotePreference,
		MinSalary:        prefs.MinSalary,
		TechStack:        prefs.TechStack,
		AutoApplyEnabled: prefs.AutoApplyEnabled,
		UpdatedAt:        updated,
	})
}

func (h *PreferencesHandler) HandleSave(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.PreferencesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.Save(c.Context(), userID, usecase.PreferencesInput{
		TargetRoles:      req.TargetRoles,
		Locations:        req.Locations,
		RemotePreference: req.RemotePreference,
		MinSalary:        req.MinSalary,
		TechStack:        req.TechStack,
		AutoApplyEnabled: req.AutoApplyEnabled,
	})
	if err != nil {
		return mapPreferencesUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Preferences saved successfully", nil)
}

func mapPreferencesUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrPreferencesNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Preferences not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
