package discovery

import (
	"context"
	"log"
	"strings"
	"sync"

	"techshift/internal/domain/job"
)

const defaultResultLimit = 50

// Per-source sub-limits. They intentionally sum past the final result cap
// so the merge step has enough candidates to dedupe, and no single source
// can dominate the merged list.
var sourceSubLimits = map[string]int{
	job.SourceAdzuna:    20,
	job.SourceRemoteOK:  15,
	job.SourceRemotive:  15,
	job.SourceArbeitnow: 15,
	job.SourceJobicy:    15,
	job.SourceJooble:    20,
}

// Aggregator fans a search out to every source concurrently and merges the
// results. Partial failure of any subset of sources never fails the call.
type Aggregator struct {
	sources []Source
	logger  *log.Logger
}

func NewAggregator(sources []Source, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{sources: sources, logger: logger}
}

// SearchAll runs all sources in parallel, merges their results, removes
// duplicates by lowercased title+company (first occurrence wins), and
// truncates to q.Limit.
func (a *Aggregator) SearchAll(ctx context.Context, q Query) []job.Job {
	if a == nil || len(a.sources) == 0 {
		return nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultResultLimit
	}

	perSource := make([][]job.Job, len(a.sources))

	var wg sync.WaitGroup
	wg.Add(len(a.sources))
	for i, src := range a.sources {
		go func(i int, src Source) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Printf("[Discovery] source %s panicked: %v", src.Name(), r)
				}
			}()

			sq := q
			if sub, ok := sourceSubLimits[src.Name()]; ok {
				sq.Limit = sub
			}
			perSource[i] = src.Search(ctx, sq)
		}(i, src)
	}
	wg.Wait()

	seen := make(map[string]struct{})
	merged := make([]job.Job, 0, limit)
	total := 0
	counts := make(map[string]int, len(a.sources))

	for _, jobs := range perSource {
		total += len(jobs)
		for _, j := range jobs {
			counts[j.Source]++
			key := strings.ToLower(j.Title) + "_" + strings.ToLower(j.Company)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, j)
		}
	}

	a.logger.Printf("[Discovery] sources=%v total=%d unique=%d", counts, total, len(merged))

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
