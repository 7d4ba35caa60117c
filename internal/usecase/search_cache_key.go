package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type jobSearchCacheKeyInput struct {
	Keywords   string `json:"keywords"`
	Location   string `json:"location"`
	SalaryMin  *int   `json:"salary_min"`
	RemoteOnly bool   `json:"remote_only"`
	Limit      int    `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobSearchCacheKey derives a stable cache key from the search parameters.
// The user profile is deliberately excluded: cached entries hold unscored
// results, and scoring is applied per caller after retrieval.
func JobSearchCacheKey(params JobSearchParams) string {
	in := jobSearchCacheKeyInput{
		Keywords:   normalizeSearchValue(params.Keywords),
		Location:   normalizeSearchValue(params.Location),
		SalaryMin:  params.SalaryMin,
		RemoteOnly: params.RemoteOnly,
		Limit:      params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "discovery:search:" + hex.EncodeToString(sum[:])
}
