package discovery

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"techshift/internal/domain/job"
	"techshift/internal/relevance"
)

// ArbeitnowSource queries the keyless Arbeitnow job board feed (EU-heavy).
// No upstream filtering at all: the whole feed page is classified locally.
type ArbeitnowSource struct {
	client  *http.Client
	baseURL string
	logger  *log.Logger
}

func NewArbeitnowSource(logger *log.Logger) *ArbeitnowSource {
	if logger == nil {
		logger = log.Default()
	}
	return &ArbeitnowSource{
		client:  newClient(15 * time.Second),
		baseURL: "https://www.arbeitnow.com/api/job-board-api",
		logger:  logger,
	}
}

type arbeitnowRecord struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	JobTypes    []string `json:"job_types"`
	URL         string   `json:"url"`
	CreatedAt   int64    `json:"created_at"`
}

type arbeitnowResponse struct {
	Data []arbeitnowRecord `json:"data"`
}

func (s *ArbeitnowSource) Name() string { return job.SourceArbeitnow }

func (s *ArbeitnowSource) Search(ctx context.Context, q Query) []job.Job {
	limit := q.Limit
	if limit <= 0 {
		limit = 15
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL, nil)
	if err != nil {
		s.logger.Printf("[Discovery] arbeitnow request: %v", err)
		return nil
	}

	body, err := fetch(ctx, s.client, req)
	if err != nil {
		s.logger.Printf("[Discovery] arbeitnow fetch: %v", err)
		return nil
	}

	var resp arbeitnowResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Printf("[Discovery] arbeitnow decode: %v", err)
		return nil
	}

	records := resp.Data
	if len(records) > maxRawScan {
		records = records[:maxRawScan]
	}

	jobs := make([]job.Job, 0, limit)
	for _, rec := range records {
		if !relevance.IsAIRole(rec.Title, rec.Description, rec.Tags) {
			continue
		}
		jobs = append(jobs, s.mapRecord(rec))
		if len(jobs) >= limit {
			break
		}
	}
	return jobs
}

func (s *ArbeitnowSource) mapRecord(rec arbeitnowRecord) job.Job {
	company := pickNonEmpty(rec.CompanyName, "Unknown")

	contractType := "Remote"
	if len(rec.JobTypes) > 0 && rec.JobTypes[0] != "" {
		contractType = rec.JobTypes[0]
	}

	return job.Job{
		ID:             sourceJobID(job.SourceArbeitnow, rec.Slug),
		Title:          rec.Title,
		Company:        company,
		Location:       pickNonEmpty(rec.Location, "Remote"),
		SalaryRange:    "Competitive", // feed carries no salary data
		PostedDate:     epochDateOrToday(rec.CreatedAt),
		RequiredSkills: capSkills(rec.Tags),
		JobURL:         rec.URL,
		CompanyLogo:    job.CompanyLogo(company),
		Description:    truncateDescription(stripHTML(rec.Description)),
		Source:         job.SourceArbeitnow,
		IsEasyApply:    true,
		ContractType:   contractType,
		Category:       "EU Tech",
	}
}
