package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"techshift/internal/discovery"
	"techshift/internal/domain/job"
	"techshift/internal/domain/matching"
)

const searchCacheTTL = 10 * time.Minute

// Searcher is the aggregator boundary. It never fails: sources that error
// out simply contribute nothing.
type Searcher interface {
	SearchAll(ctx context.Context, q discovery.Query) []job.Job
}

type JobSearchParams struct {
	Keywords   string
	Location   string
	SalaryMin  *int
	RemoteOnly bool
	Limit      int
	Profile    job.UserProfile
}

type JobSearchUsecase interface {
	Search(ctx context.Context, params JobSearchParams) ([]job.Job, error)
}

// JobSearch is the single entry point the delivery layer uses for job
// discovery: aggregate, score against the caller's profile, rank.
type JobSearch struct {
	searcher Searcher
	cache    SearchCache
	logger   *log.Logger
}

func NewJobSearchUsecase(searcher Searcher, cache SearchCache, logger *log.Logger) *JobSearch {
	if logger == nil {
		logger = log.Default()
	}
	return &JobSearch{searcher: searcher, cache: cache, logger: logger}
}

// Search runs the fan-out search and returns jobs sorted by match score,
// highest first. An empty slice is a valid low-yield outcome, never an
// error: upstream failures stay inside the discovery layer.
func (u *JobSearch) Search(ctx context.Context, params JobSearchParams) ([]job.Job, error) {
	if u == nil || u.searcher == nil {
		return nil, ErrInternal
	}

	if params.Location == "" {
		params.Location = "us"
	}
	if params.Limit <= 0 {
		params.Limit = 50
	}

	key := JobSearchCacheKey(params)

	var jobs []job.Job
	hit := false
	if u.cache != nil {
		ok, err := u.cache.GetJSON(ctx, key, &jobs)
		if err == nil && ok {
			hit = true
		}
	}

	if !hit {
		jobs = u.searcher.SearchAll(ctx, discovery.Query{
			Keywords:   params.Keywords,
			Location:   params.Location,
			SalaryMin:  params.SalaryMin,
			RemoteOnly: params.RemoteOnly,
			Limit:      params.Limit,
		})
		if u.cache != nil && len(jobs) > 0 {
			if err := u.cache.SetJSON(ctx, key, jobs, searchCacheTTL); err != nil {
				u.logger.Printf("[JobSearch] cache store failed: %v", err)
			}
		}
	}

	for i := range jobs {
		jobs[i].MatchScore = matching.Score(jobs[i], params.Profile.Skills, params.Profile.TargetRoles)
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].MatchScore > jobs[j].MatchScore
	})

	return jobs, nil
}
