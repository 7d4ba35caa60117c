package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"techshift/internal/discovery"
	"techshift/internal/domain/job"
	"techshift/internal/usecase"
)

type memSource struct {
	name  string
	jobs  []job.Job
	calls int
}

func (s *memSource) Name() string { return s.name }
func (s *memSource) Search(ctx context.Context, q discovery.Query) []job.Job {
	s.calls++
	return s.jobs
}

type memCache struct {
	store map[string][]byte
}

func (c *memCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *memCache) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if _, ok := c.store[key]; ok {
		return false, nil
	}
	c.store[key] = []byte(value)
	return true, nil
}

// Twelve listings from one source, three of which duplicate earlier ones by
// title+company. The full flow should surface nine unique ranked jobs.
func TestSearchFlow_AggregateDedupRank(t *testing.T) {
	listings := make([]job.Job, 0, 12)
	for i := 0; i < 9; i++ {
		listings = append(listings, job.Job{
			ID:             fmt.Sprintf("remotive_%d", i),
			Title:          fmt.Sprintf("ML Engineer %d", i),
			Company:        fmt.Sprintf("Company %d", i),
			Location:       "Remote",
			RequiredSkills: []string{"Python"},
			Source:         job.SourceRemotive,
		})
	}
	for i := 0; i < 3; i++ {
		dup := listings[i]
		dup.ID = fmt.Sprintf("remotive_dup_%d", i)
		listings = append(listings, dup)
	}

	source := &memSource{name: job.SourceRemotive, jobs: listings}
	agg := discovery.NewAggregator([]discovery.Source{source}, nil)
	cache := &memCache{store: map[string][]byte{}}
	uc := usecase.NewJobSearchUsecase(agg, cache, nil)

	params := usecase.JobSearchParams{
		Keywords: "machine learning",
		Limit:    10,
		Profile: job.UserProfile{
			Skills:      []string{"Python", "PyTorch"},
			TargetRoles: []string{"ML Engineer"},
		},
	}

	got, err := uc.Search(context.Background(), params)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 9 {
		t.Fatalf("expected 9 unique jobs, got %d", len(got))
	}

	seen := map[string]struct{}{}
	for i, j := range got {
		if _, dup := seen[j.ID]; dup {
			t.Fatalf("duplicate ID %q in results", j.ID)
		}
		seen[j.ID] = struct{}{}

		if j.MatchScore < 35 || j.MatchScore > 92 {
			t.Fatalf("score %d out of range", j.MatchScore)
		}
		if i > 0 && got[i-1].MatchScore < j.MatchScore {
			t.Fatalf("results not sorted by score")
		}
	}

	// Same search again is served from the cache.
	if _, err := uc.Search(context.Background(), params); err != nil {
		t.Fatalf("second search: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", source.calls)
	}
}
