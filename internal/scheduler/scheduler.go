// Package scheduler runs the background refresh that keeps the search cache
// warm for every stored preference set.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"techshift/internal/domain/job"
	"techshift/internal/repository"
	"techshift/internal/usecase"

	"github.com/robfig/cron/v3"
)

const refreshLockKey = "discovery:refresh:lock"

type Scheduler struct {
	cron   *cron.Cron
	search usecase.JobSearchUsecase
	prefs  repository.PreferencesRepository
	cache  usecase.SearchCache
	spec   string
	logger *log.Logger
}

func New(search usecase.JobSearchUsecase, prefs repository.PreferencesRepository, cache usecase.SearchCache, intervalHours int, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		search: search,
		prefs:  prefs,
		cache:  cache,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
		logger: logger,
	}
}

// Start registers the refresh job and runs one cycle immediately so the
// cache is warm without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("[Scheduler] started, spec=%s", s.spec)

	go s.runRefresh(ctx)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Println("[Scheduler] stopped")
}

// runRefresh re-runs the search facade for each stored preference set. The
// lock keeps replicas from refreshing at the same time; when the cache is
// down the lock is a no-op and the refresh runs anyway.
func (s *Scheduler) runRefresh(ctx context.Context) {
	if s.cache != nil {
		ok, err := s.cache.SetIfNotExists(ctx, refreshLockKey, time.Now().UTC().Format(time.RFC3339), 10*time.Minute)
		if err == nil && !ok {
			s.logger.Println("[Scheduler] refresh already running elsewhere, skipping")
			return
		}
	}

	all, err := s.prefs.ListAll(ctx)
	if err != nil {
		s.logger.Printf("[Scheduler] list preferences failed: %v", err)
		return
	}
	if len(all) == 0 {
		s.logger.Println("[Scheduler] no stored preferences, nothing to refresh")
		return
	}

	s.logger.Printf("[Scheduler] refreshing %d preference set(s)", len(all))
	for _, p := range all {
		if err := s.refreshOne(ctx, p); err != nil {
			s.logger.Printf("[Scheduler] refresh for user %s failed: %v", p.UserID, err)
		}
	}
	s.logger.Println("[Scheduler] refresh cycle complete")
}

func (s *Scheduler) refreshOne(ctx context.Context, p repository.JobPreferences) error {
	keywords := "AI ML Engineer"
	if len(p.TargetRoles) > 0 {
		roles := p.TargetRoles
		if len(roles) > 2 {
			roles = roles[:2]
		}
		keywords = strings.Join(roles, " ")
	}

	location := ""
	if len(p.Locations) > 0 {
		location = p.Locations[0]
	}

	_, err := s.search.Search(ctx, usecase.JobSearchParams{
		Keywords:   keywords,
		Location:   location,
		SalaryMin:  p.MinSalary,
		RemoteOnly: p.RemotePreference == "remote",
		Limit:      50,
		Profile: job.UserProfile{
			Skills:      p.TechStack,
			TargetRoles: p.TargetRoles,
		},
	})
	return err
}
