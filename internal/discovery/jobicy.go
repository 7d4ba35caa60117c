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

// JobicySource queries the keyless Jobicy remote-jobs API.
type JobicySource struct {
	client  *http.Client
	baseURL string
	logger  *log.Logger
}

func NewJobicySource(logger *log.Logger) *JobicySource {
	if logger == nil {
		logger = log.Default()
	}
	return &JobicySource{
		client:  newClient(15 * time.Second),
		baseURL: "https://jobicy.com/api/v2/remote-jobs",
		logger:  logger,
	}
}

type jobicyRecord struct {
	ID              json.Number `json:"id"`
	JobTitle        string      `json:"jobTitle"`
	CompanyName     string      `json:"companyName"`
	JobGeo          string      `json:"jobGeo"`
	JobDescription  string      `json:"jobDescription"`
	AnnualSalaryMin *float64    `json:"annualSalaryMin"`
	AnnualSalaryMax *float64    `json:"annualSalaryMax"`
	PubDate         string      `json:"pubDate"`
	URL             string      `json:"url"`
	JobType         string      `json:"jobType"`
	JobIndustry     string      `json:"jobIndustry"`
}

type jobicyResponse struct {
	Jobs []jobicyRecord `json:"jobs"`
}

func (s *JobicySource) Name() string { return job.SourceJobicy }

func (s *JobicySource) Search(ctx context.Context, q Query) []job.Job {
	limit := q.Limit
	if limit <= 0 {
		limit = 15
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"?count=50", nil)
	if err != nil {
		s.logger.Printf("[Discovery] jobicy request: %v", err)
		return nil
	}

	body, err := fetch(ctx, s.client, req)
	if err != nil {
		s.logger.Printf("[Discovery] jobicy fetch: %v", err)
		return nil
	}

	var resp jobicyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Printf("[Discovery] jobicy decode: %v", err)
		return nil
	}

	records := resp.Jobs
	if len(records) > maxRawScan {
		records = records[:maxRawScan]
	}

	jobs := make([]job.Job, 0, limit)
	for _, rec := range records {
		if !relevance.IsAIRole(rec.JobTitle, rec.JobDescription, nil) {
			continue
		}
		jobs = append(jobs, s.mapRecord(rec))
		if len(jobs) >= limit {
			break
		}
	}
	return jobs
}

func (s *JobicySource) mapRecord(rec jobicyRecord) job.Job {
	company := pickNonEmpty(rec.CompanyName, "Unknown")
	salaryMin := floatToIntPtr(rec.AnnualSalaryMin)
	salaryMax := floatToIntPtr(rec.AnnualSalaryMax)
	clean := stripHTML(rec.JobDescription)

	return job.Job{
		ID:             sourceJobID(job.SourceJobicy, rec.ID.String()),
		Title:          rec.JobTitle,
		Company:        company,
		Location:       pickNonEmpty(rec.JobGeo, "Remote"),
		SalaryRange:    job.FormatSalaryRange(salaryMin, salaryMax),
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		PostedDate:     isoDateOrToday(rec.PubDate),
		RequiredSkills: extractSkills(clean),
		JobURL:         rec.URL,
		CompanyLogo:    job.CompanyLogo(company),
		Description:    truncateDescription(clean),
		Source:         job.SourceJobicy,
		IsEasyApply:    true,
		ContractType:   pickNonEmpty(rec.JobType, "Remote"),
		Category:       pickNonEmpty(rec.JobIndustry, "Remote Tech"),
	}
}
