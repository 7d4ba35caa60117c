package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"techshift/internal/domain/job"
	"techshift/internal/relevance"
)

// JoobleSource queries the Jooble aggregator. The API key is part of the
// URL path and requests are POSTs with a JSON body; without a key the
// source is disabled.
type JoobleSource struct {
	apiKey  string
	client  *http.Client
	baseURL string
	logger  *log.Logger
}

func NewJoobleSource(apiKey string, logger *log.Logger) *JoobleSource {
	if logger == nil {
		logger = log.Default()
	}
	return &JoobleSource{
		apiKey:  apiKey,
		client:  newClient(15 * time.Second),
		baseURL: "https://jooble.org/api",
		logger:  logger,
	}
}

var joobleAITerms = []string{"ai", "ml", "machine learning", "data scientist"}

type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	Page     int    `json:"page"`
}

type joobleRecord struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Snippet  string `json:"snippet"`
	Salary   string `json:"salary"`
	Company  string `json:"company"`
	Updated  string `json:"updated"`
	Link     string `json:"link"`
	Type     string `json:"type"`
}

type joobleResponse struct {
	Jobs []joobleRecord `json:"jobs"`
}

func (s *JoobleSource) Name() string { return job.SourceJooble }

func (s *JoobleSource) Search(ctx context.Context, q Query) []job.Job {
	if strings.TrimSpace(s.apiKey) == "" {
		s.logger.Printf("[Discovery] jooble API key not configured, skipping")
		return nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	location := q.Location
	if location == "" || strings.EqualFold(location, "us") {
		location = ""
	}

	payload, err := json.Marshal(joobleRequest{
		Keywords: augmentAIKeywords(q.Keywords, joobleAITerms),
		Location: location,
		Page:     1,
	})
	if err != nil {
		s.logger.Printf("[Discovery] jooble payload: %v", err)
		return nil
	}

	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(s.baseURL, "/")+"/"+s.apiKey, bytes.NewReader(payload))
	if err != nil {
		s.logger.Printf("[Discovery] jooble request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := fetch(ctx, s.client, req)
	if err != nil {
		s.logger.Printf("[Discovery] jooble fetch: %v", err)
		return nil
	}

	var resp joobleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Printf("[Discovery] jooble decode: %v", err)
		return nil
	}

	records := resp.Jobs
	if len(records) > maxRawScan {
		records = records[:maxRawScan]
	}

	jobs := make([]job.Job, 0, limit)
	for _, rec := range records {
		if !relevance.IsAIRole(rec.Title, rec.Snippet, nil) {
			continue
		}
		jobs = append(jobs, s.mapRecord(rec))
		if len(jobs) >= limit {
			break
		}
	}
	return jobs
}

func (s *JoobleSource) mapRecord(rec joobleRecord) job.Job {
	company := pickNonEmpty(rec.Company, "Unknown")
	clean := stripHTML(rec.Snippet)

	return job.Job{
		// Jooble records carry no stable upstream ID; a random suffix keeps
		// the source-prefixed ID unique within a result set.
		ID:             sourceJobID(job.SourceJooble, ""),
		Title:          rec.Title,
		Company:        company,
		Location:       pickNonEmpty(rec.Location, "Remote"),
		SalaryRange:    pickNonEmpty(rec.Salary, "Competitive"),
		PostedDate:     isoDateOrToday(rec.Updated),
		RequiredSkills: extractSkills(clean),
		JobURL:         rec.Link,
		CompanyLogo:    job.CompanyLogo(company),
		Description:    truncateDescription(clean),
		Source:         job.SourceJooble,
		IsEasyApply:    false,
		ATSType:        job.DetectATS(rec.Link),
		ContractType:   pickNonEmpty(rec.Type, "Full-time"),
		Category:       "Global Jobs",
	}
}
