package job

import (
	"fmt"
	"strings"
)

// Source names, prefixed onto Job.ID for global uniqueness.
const (
	SourceAdzuna    = "adzuna"
	SourceRemoteOK  = "remoteok"
	SourceRemotive  = "remotive"
	SourceArbeitnow = "arbeitnow"
	SourceJobicy    = "jobicy"
	SourceJooble    = "jooble"
)

type Job struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	SalaryRange    string   `json:"salary_range"`
	SalaryMin      *int     `json:"salary_min"`
	SalaryMax      *int     `json:"salary_max"`
	PostedDate     string   `json:"posted_date"`
	MatchScore     int      `json:"match_score"`
	RequiredSkills []string `json:"required_skills"`
	JobURL         string   `json:"job_url"`
	CompanyLogo    string   `json:"company_logo"`
	Description    string   `json:"description"`
	Source         string   `json:"source"`
	IsEasyApply    bool     `json:"is_easy_apply"`
	ATSType        string   `json:"ats_type,omitempty"`
	ContractType   string   `json:"contract_type,omitempty"`
	Category       string   `json:"category,omitempty"`
}

type UserProfile struct {
	Skills      []string
	TargetRoles []string
}

var companyLogos = []struct {
	name  string
	emoji string
}{
	{"google", "\U0001F50D"},
	{"meta", "\U0001F4F1"},
	{"amazon", "\U0001F4E6"},
	{"microsoft", "\U0001F4BB"},
	{"apple", "\U0001F34E"},
	{"netflix", "\U0001F3AC"},
	{"stripe", "\U0001F4B3"},
	{"openai", "\U0001F916"},
	{"anthropic", "\U0001F9E0"},
	{"notion", "\U0001F4DD"},
	{"slack", "\U0001F4AC"},
	{"spotify", "\U0001F3B5"},
	{"airbnb", "\U0001F3E0"},
	{"uber", "\U0001F697"},
	{"salesforce", "☁️"},
	{"adobe", "\U0001F3A8"},
	{"nvidia", "\U0001F3AE"},
	{"tesla", "⚡"},
}

const defaultLogo = "\U0001F3E2"

var easyApplyPatterns = []string{
	"linkedin.com/jobs",
	"indeed.com/apply",
	"lever.co",
	"greenhouse.io",
	"workable.com",
	"bamboohr.com",
	"ashbyhq.com",
	"jobs.smartrecruiters",
	"myworkdayjobs.com",
	"icims.com",
	"apply.workable.com",
}

var atsPatterns = []struct {
	ats      string
	patterns []string
}{
	{"greenhouse", []string{"greenhouse.io", "boards.greenhouse"}},
	{"lever", []string{"lever.co", "jobs.lever"}},
	{"workday", []string{"myworkdayjobs.com", "workday.com"}},
	{"icims", []string{"icims.com"}},
	{"smartrecruiters", []string{"smartrecruiters.com"}},
	{"ashby", []string{"ashbyhq.com"}},
	{"workable", []string{"workable.com", "apply.workable"}},
}

// FormatSalaryRange renders annual min/max into a display string. Both nil
// means the posting did not disclose pay.
func FormatSalaryRange(salaryMin, salaryMax *int) string {
	switch {
	case salaryMin != nil && salaryMax != nil:
		return fmt.Sprintf("$%dK - $%dK", *salaryMin/1000, *salaryMax/1000)
	case salaryMin != nil:
		return fmt.Sprintf("$%dK+", *salaryMin/1000)
	default:
		return "Competitive"
	}
}

func CompanyLogo(company string) string {
	lower := strings.ToLower(company)
	for _, it := range companyLogos {
		if strings.Contains(lower, it.name) {
			return it.emoji
		}
	}
	return defaultLogo
}

func IsEasyApply(url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, p := range easyApplyPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// DetectATS infers the applicant-tracking-system vendor from the apply URL.
// Returns "" when no known domain pattern matches.
func DetectATS(url string) string {
	if strings.TrimSpace(url) == "" {
		return ""
	}
	lower := strings.ToLower(url)
	for _, it := range atsPatterns {
		for _, p := range it.patterns {
			if strings.Contains(lower, p) {
				return it.ats
			}
		}
	}
	return ""
}
