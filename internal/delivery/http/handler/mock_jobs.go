package handler

import "techshift/internal/domain/job"

// mockJobs is the static fallback served when no live source is configured
// or a live search comes back empty.
var mockJobs = []job.Job{
	{
		ID:             "job_001",
		Title:          "Senior AI/ML Engineer",
		Company:        "OpenAI",
		Location:       "San Francisco, CA (Remote)",
		SalaryRange:    "$200K - $350K",
		PostedDate:     "2025-01-05",
		MatchScore:     92,
		RequiredSkills: []string{"Python", "PyTorch", "LLMs", "Distributed Systems"},
		JobURL:         "https://openai.com/careers",
		CompanyLogo:    "🤖",
		Source:         "mock",
	},
	{
		ID:             "job_002",
		Title:          "MLOps Engineer",
		Company:        "Google",
		Location:       "Mountain View, CA (Hybrid)",
		SalaryRange:    "$180K - $280K",
		PostedDate:     "2025-01-04",
		MatchScore:     88,
		RequiredSkills: []string{"Kubernetes", "TensorFlow", "GCP", "Python"},
		JobURL:         "https://careers.google.com",
		CompanyLogo:    "🔍",
		Source:         "mock",
	},
	{
		ID:             "job_003",
		Title:          "Prompt Engineer",
		Company:        "Anthropic",
		Location:       "San Francisco, CA (Remote)",
		SalaryRange:    "$150K - $220K",
		PostedDate:     "2025-01-03",
		MatchScore:     95,
		RequiredSkills: []string{"LLMs", "Prompt Engineering", "Python", "RAG"},
		JobURL:         "https://anthropic.com/careers",
		CompanyLogo:    "🧠",
		Source:         "mock",
	},
	{
		ID:             "job_004",
		Title:          "Data Scientist - AI",
		Company:        "Meta",
		Location:       "Menlo Park, CA (Hybrid)",
		SalaryRange:    "$170K - $250K",
		PostedDate:     "2025-01-02",
		MatchScore:     85,
		RequiredSkills: []string{"Python", "SQL", "PyTorch", "Statistics"},
		JobURL:         "https://metacareers.com",
		CompanyLogo:    "📱",
		Source:         "mock",
	},
	{
		ID:             "job_005",
		Title:          "AI Research Engineer",
		Company:        "Amazon (AWS AI)",
		Location:       "Seattle, WA (Hybrid)",
		SalaryRange:    "$160K - $270K",
		PostedDate:     "2025-01-01",
		MatchScore:     82,
		RequiredSkills: []string{"Python", "Deep Learning", "AWS", "Research"},
		JobURL:         "https://amazon.jobs",
		CompanyLogo:    "📦",
		Source:         "mock",
	},
}

func mockJobsCopy() []job.Job {
	out := make([]job.Job, len(mockJobs))
	copy(out, mockJobs)
	return out
}
