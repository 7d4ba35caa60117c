package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"techshift/internal/domain/job"
	"techshift/internal/relevance"
)

// AdzunaSource queries the Adzuna jobs API. Requires an app ID/key pair;
// without credentials the source is disabled and contributes nothing.
type AdzunaSource struct {
	appID   string
	appKey  string
	client  *http.Client
	baseURL string
	logger  *log.Logger
}

func NewAdzunaSource(appID, appKey string, logger *log.Logger) *AdzunaSource {
	if logger == nil {
		logger = log.Default()
	}
	return &AdzunaSource{
		appID:   appID,
		appKey:  appKey,
		client:  newClient(adzunaTimeout),
		baseURL: "https://api.adzuna.com/v1/api",
		logger:  logger,
	}
}

const adzunaTimeout = 20 * time.Second

type adzunaRecord struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	RedirectURL  string   `json:"redirect_url"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	Created      string   `json:"created"`
	ContractType string   `json:"contract_type"`
	Category     struct {
		Label string `json:"label"`
	} `json:"category"`
}

type adzunaResponse struct {
	Results []adzunaRecord `json:"results"`
}

var adzunaCountries = map[string]string{
	"us": "us", "usa": "us", "united states": "us",
	"uk": "gb", "united kingdom": "gb", "england": "gb",
	"canada": "ca", "germany": "de", "france": "fr",
	"india": "in", "australia": "au", "remote": "us",
}

func (s *AdzunaSource) Name() string { return job.SourceAdzuna }

func (s *AdzunaSource) Search(ctx context.Context, q Query) []job.Job {
	if strings.TrimSpace(s.appID) == "" || strings.TrimSpace(s.appKey) == "" {
		s.logger.Printf("[Discovery] adzuna credentials not configured, skipping")
		return nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	// Upstream keyword filtering is unreliable for "AI", so the query is
	// augmented and results are still re-classified locally.
	search := augmentAIKeywords(q.Keywords, adzunaAITerms)
	if q.RemoteOnly {
		search += " remote"
	}

	perPage := limit * 3
	if perPage > 50 {
		perPage = 50
	}

	params := url.Values{}
	params.Set("app_id", s.appID)
	params.Set("app_key", s.appKey)
	params.Set("what", search)
	params.Set("results_per_page", strconv.Itoa(perPage))
	if q.SalaryMin != nil {
		params.Set("salary_min", strconv.Itoa(*q.SalaryMin))
	}

	endpoint := fmt.Sprintf("%s/jobs/%s/search/1?%s", strings.TrimRight(s.baseURL, "/"), adzunaCountry(q.Location), params.Encode())
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.Printf("[Discovery] adzuna request: %v", err)
		return nil
	}

	body, err := fetch(ctx, s.client, req)
	if err != nil {
		s.logger.Printf("[Discovery] adzuna fetch: %v", err)
		return nil
	}

	var resp adzunaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Printf("[Discovery] adzuna decode: %v", err)
		return nil
	}

	records := resp.Results
	if len(records) > maxRawScan {
		records = records[:maxRawScan]
	}

	jobs := make([]job.Job, 0, limit)
	for _, rec := range records {
		if !relevance.IsAIRole(rec.Title, rec.Description, nil) {
			continue
		}
		jobs = append(jobs, s.mapRecord(rec))
		if len(jobs) >= limit {
			break
		}
	}
	return jobs
}

func (s *AdzunaSource) mapRecord(rec adzunaRecord) job.Job {
	company := pickNonEmpty(rec.Company.DisplayName, "Unknown Company")
	salaryMin := floatToIntPtr(rec.SalaryMin)
	salaryMax := floatToIntPtr(rec.SalaryMax)
	clean := stripHTML(rec.Description)

	return job.Job{
		ID:             sourceJobID(job.SourceAdzuna, rec.ID.String()),
		Title:          pickNonEmpty(rec.Title, "Unknown Title"),
		Company:        company,
		Location:       pickNonEmpty(rec.Location.DisplayName, "Unknown Location"),
		SalaryRange:    job.FormatSalaryRange(salaryMin, salaryMax),
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		PostedDate:     isoDateOrToday(rec.Created),
		RequiredSkills: extractSkills(clean),
		JobURL:         rec.RedirectURL,
		CompanyLogo:    job.CompanyLogo(company),
		Description:    truncateDescription(clean),
		Source:         job.SourceAdzuna,
		IsEasyApply:    job.IsEasyApply(rec.RedirectURL),
		ATSType:        job.DetectATS(rec.RedirectURL),
		ContractType:   rec.ContractType,
		Category:       rec.Category.Label,
	}
}

func adzunaCountry(location string) string {
	key := strings.TrimSpace(strings.ToLower(strings.SplitN(location, ",", 2)[0]))
	if c, ok := adzunaCountries[key]; ok {
		return c
	}
	return "us"
}

var adzunaAITerms = []string{"ai", "machine learning", "data scientist", "ml engineer"}

// augmentAIKeywords appends AI terms when the caller's query carries none of
// the given markers, so keyed upstreams return mostly relevant listings.
// Each keyed source recognizes its own marker list.
func augmentAIKeywords(keywords string, aiTerms []string) string {
	lower := strings.ToLower(keywords)
	for _, term := range aiTerms {
		if strings.Contains(lower, term) {
			return keywords
		}
	}
	return strings.TrimSpace(keywords + " AI machine learning")
}

func floatToIntPtr(f *float64) *int {
	if f == nil || *f <= 0 {
		return nil
	}
	v := int(*f)
	return &v
}
