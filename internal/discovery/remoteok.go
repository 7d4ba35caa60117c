package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"techshift/internal/domain/job"
	"techshift/internal/relevance"
)

// RemoteOKSource queries the keyless RemoteOK feed. The upstream has no
// keyword or salary filtering, so all filtering happens client-side.
type RemoteOKSource struct {
	client  *http.Client
	baseURL string
	logger  *log.Logger
}

func NewRemoteOKSource(logger *log.Logger) *RemoteOKSource {
	if logger == nil {
		logger = log.Default()
	}
	return &RemoteOKSource{
		client:  newClient(15 * time.Second),
		baseURL: "https://remoteok.com/api",
		logger:  logger,
	}
}

type remoteokRecord struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	URL         string      `json:"url"`
	Epoch       int64       `json:"epoch"`
	SalaryMin   *float64    `json:"salary_min"`
	SalaryMax   *float64    `json:"salary_max"`
}

func (s *RemoteOKSource) Name() string { return job.SourceRemoteOK }

func (s *RemoteOKSource) Search(ctx context.Context, q Query) []job.Job {
	limit := q.Limit
	if limit <= 0 {
		limit = 15
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL, nil)
	if err != nil {
		s.logger.Printf("[Discovery] remoteok request: %v", err)
		return nil
	}

	body, err := fetch(ctx, s.client, req)
	if err != nil {
		s.logger.Printf("[Discovery] remoteok fetch: %v", err)
		return nil
	}

	// The feed is a JSON array whose first element is a metadata blob with a
	// different shape. Records are decoded one by one so a single malformed
	// entry only skips itself.
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		s.logger.Printf("[Discovery] remoteok decode: %v", err)
		return nil
	}
	if len(raw) > 0 {
		raw = raw[1:]
	}
	if len(raw) > maxRawScan {
		raw = raw[:maxRawScan]
	}

	jobs := make([]job.Job, 0, limit)
	for _, msg := range raw {
		var rec remoteokRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			continue
		}
		if !relevance.IsAIRole(rec.Position, rec.Description, rec.Tags) {
			continue
		}
		jobs = append(jobs, s.mapRecord(rec))
		if len(jobs) >= limit {
			break
		}
	}
	return jobs
}

func (s *RemoteOKSource) mapRecord(rec remoteokRecord) job.Job {
	company := pickNonEmpty(rec.Company, "Unknown Company")
	salaryMin := floatToIntPtr(rec.SalaryMin)
	salaryMax := floatToIntPtr(rec.SalaryMax)

	jobURL := rec.URL
	if jobURL == "" {
		jobURL = fmt.Sprintf("https://remoteok.com/l/%s", rec.ID.String())
	}

	return job.Job{
		ID:             sourceJobID(job.SourceRemoteOK, rec.ID.String()),
		Title:          pickNonEmpty(rec.Position, "Unknown Title"),
		Company:        company,
		Location:       pickNonEmpty(rec.Location, "Remote (Worldwide)"),
		SalaryRange:    job.FormatSalaryRange(salaryMin, salaryMax),
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		PostedDate:     epochDateOrToday(rec.Epoch),
		RequiredSkills: capSkills(rec.Tags),
		JobURL:         jobURL,
		CompanyLogo:    job.CompanyLogo(company),
		Description:    truncateDescription(stripHTML(rec.Description)),
		Source:         job.SourceRemoteOK,
		IsEasyApply:    true, // one-click apply flow on the board itself
		ContractType:   "Remote",
		Category:       "Remote Tech",
	}
}
