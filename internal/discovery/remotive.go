package discovery

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"techshift/internal/domain/job"
	"techshift/internal/relevance"
)

// RemotiveSource queries the keyless Remotive API. Keywords only map to a
// coarse upstream category; real filtering happens client-side.
type RemotiveSource struct {
	client  *http.Client
	baseURL string
	logger  *log.Logger
}

func NewRemotiveSource(logger *log.Logger) *RemotiveSource {
	if logger == nil {
		logger = log.Default()
	}
	return &RemotiveSource{
		client:  newClient(15 * time.Second),
		baseURL: "https://remotive.com/api/remote-jobs",
		logger:  logger,
	}
}

type remotiveRecord struct {
	ID                json.Number `json:"id"`
	Title             string      `json:"title"`
	CompanyName       string      `json:"company_name"`
	CandidateLocation string      `json:"candidate_required_location"`
	Salary            string      `json:"salary"`
	PublicationDate   string      `json:"publication_date"`
	Tags              []string    `json:"tags"`
	URL               string      `json:"url"`
	Description       string      `json:"description"`
	JobType           string      `json:"job_type"`
	Category          string      `json:"category"`
}

type remotiveResponse struct {
	Jobs []remotiveRecord `json:"jobs"`
}

var remotiveCategories = []struct {
	keyword  string
	category string
}{
	{"ai", "data"},
	{"ml", "data"},
	{"machine learning", "data"},
	{"data", "data"},
	{"engineer", "software-dev"},
	{"developer", "software-dev"},
}

func (s *RemotiveSource) Name() string { return job.SourceRemotive }

func (s *RemotiveSource) Search(ctx context.Context, q Query) []job.Job {
	limit := q.Limit
	if limit <= 0 {
		limit = 15
	}

	params := url.Values{}
	params.Set("limit", "100")
	if cat := remotiveCategory(q.Keywords); cat != "" {
		params.Set("category", cat)
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		s.logger.Printf("[Discovery] remotive request: %v", err)
		return nil
	}

	body, err := fetch(ctx, s.client, req)
	if err != nil {
		s.logger.Printf("[Discovery] remotive fetch: %v", err)
		return nil
	}

	var resp remotiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Printf("[Discovery] remotive decode: %v", err)
		return nil
	}

	records := resp.Jobs
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

func (s *RemotiveSource) mapRecord(rec remotiveRecord) job.Job {
	company := pickNonEmpty(rec.CompanyName, "Unknown")

	return job.Job{
		ID:             sourceJobID(job.SourceRemotive, rec.ID.String()),
		Title:          rec.Title,
		Company:        company,
		Location:       pickNonEmpty(rec.CandidateLocation, "Remote"),
		SalaryRange:    pickNonEmpty(rec.Salary, "Competitive"),
		PostedDate:     isoDateOrToday(rec.PublicationDate),
		RequiredSkills: capSkills(rec.Tags),
		JobURL:         rec.URL,
		CompanyLogo:    job.CompanyLogo(company),
		Description:    truncateDescription(stripHTML(rec.Description)),
		Source:         job.SourceRemotive,
		IsEasyApply:    true,
		ContractType:   pickNonEmpty(rec.JobType, "Remote"),
		Category:       rec.Category,
	}
}

func remotiveCategory(keywords string) string {
	lower := strings.ToLower(keywords)
	for _, it := range remotiveCategories {
		if strings.Contains(lower, it.keyword) {
			return it.category
		}
	}
	return ""
}
