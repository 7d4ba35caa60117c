package handler

import (
	"strconv"
	"strings"
	"time"

	"techshift/internal/delivery/http/dto"
	"techshift/internal/delivery/http/middleware"
	"techshift/internal/domain/job"
	"techshift/internal/pkg/response"
	"techshift/internal/repository"
	"techshift/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const defaultMatchingKeywords = "AI ML Engineer"

type JobsHandler struct {
	search usecase.JobSearchUsecase
	prefs  usecase.PreferencesUsecase

	// liveConfigured is false when no upstream source has credentials,
	// in which case matching always serves the mock list.
	liveConfigured bool
}

func NewJobsHandler(search usecase.JobSearchUsecase, prefs usecase.PreferencesUsecase, liveConfigured bool) *JobsHandler {
	return &JobsHandler{search: search, prefs: prefs, liveConfigured: liveConfigured}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/search", h.HandleSearch)
	grp.Get("/matching", h.HandleMatching)
}

func (h *JobsHandler) HandleSearch(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	keywords := strings.TrimSpace(c.Query("keywords"))
	if keywords == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "keywords is required", nil, nil)
	}

	prefs := h.loadPreferences(c, userID)

	jobs, err := h.search.Search(c.Context(), usecase.JobSearchParams{
		Keywords:   keywords,
		Location:   c.Query("location"),
		SalaryMin:  parseQuerySalary(c),
		RemoteOnly: parseQueryBool(c, "remote_only"),
		Limit:      clampLimit(parseQueryInt(c, "limit", 50)),
		Profile: job.UserProfile{
			Skills:      prefs.TechStack,
			TargetRoles: prefs.TargetRoles,
		},
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, searchResponse(jobs, false))
}

func (h *JobsHandler) HandleMatching(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if parseQueryBool(c, "use_mock") || !h.liveConfigured {
		return response.Success(c, fiber.StatusOK, response.MessageOK, searchResponse(mockJobsCopy(), true))
	}

	prefs := h.loadPreferences(c, userID)

	keywords := strings.TrimSpace(c.Query("keywords"))
	if keywords == "" && len(prefs.TargetRoles) > 0 {
		roles := prefs.TargetRoles
		if len(roles) > 2 {
			roles = roles[:2]
		}
		keywords = strings.Join(roles, " ")
	}
	if keywords == "" {
		keywords = defaultMatchingKeywords
	}

	location := c.Query("location")
	if len(prefs.Locations) > 0 {
		location = prefs.Locations[0]
	}

	remoteOnly := parseQueryBool(c, "remote_only") || prefs.RemotePreference == "remote"

	jobs, err := h.search.Search(c.Context(), usecase.JobSearchParams{
		Keywords:   keywords,
		Location:   location,
		SalaryMin:  prefs.MinSalary,
		RemoteOnly: remoteOnly,
		Limit:      50,
		Profile: job.UserProfile{
			Skills:      prefs.TechStack,
			TargetRoles: prefs.TargetRoles,
		},
	})
	if err != nil || len(jobs) == 0 {
		return response.Success(c, fiber.StatusOK, response.MessageOK, searchResponse(mockJobsCopy(), true))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, searchResponse(jobs, false))
}

// loadPreferences degrades to empty preferences when none are stored; the
// search endpoints never fail on a missing profile.
func (h *JobsHandler) loadPreferences(c fiber.Ctx, userID uuid.UUID) repository.JobPreferences {
	prefs, err := h.prefs.Get(c.Context(), userID)
	if err != nil {
		return repository.JobPreferences{}
	}
	return prefs
}

func searchResponse(jobs []job.Job, isMock bool) dto.JobSearchResponse {
	seen := make(map[string]struct{})
	sources := make([]string, 0, 4)
	for _, j := range jobs {
		src := j.Source
		if src == "" {
			src = "unknown"
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		sources = append(sources, src)
	}

	return dto.JobSearchResponse{
		Jobs:       jobs,
		TotalCount: len(jobs),
		Sources:    sources,
		LastScan:   time.Now().UTC().Format(time.RFC3339),
		IsMock:     isMock,
	}
}

func clampLimit(limit int) int {
	if limit < 1 || limit > 50 {
		return 50
	}
	return limit
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryBool(c fiber.Ctx, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return false
	}
	return v
}

func parseQuerySalary(c fiber.Ctx) *int {
	s := c.Query("salary_min")
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
