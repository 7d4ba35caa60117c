// Package relevance decides whether a raw job listing is an AI/ML role.
// The keyword tables are hand-maintained constants; precedence is strong
// title signals, then exclusions, then the broad keyword list, then tags,
// then description. The asymmetry between signals and exclusions is a
// deliberate precision/recall tradeoff, tunable by editing the tables.
package relevance

import "strings"

// Strong signals always pass, even when an exclusion also matches the title.
var strongAISignals = []string{
	"ai ", "ai/", " ai", "machine learning", "ml ", "ml/", "/ml",
	"data scientist", "deep learning", "nlp", "computer vision",
	"llm", "generative ai", "neural", "pytorch", "tensorflow",
}

// Titles matching these are excluded unless a strong signal is present.
var nonAIRoles = []string{
	"video editor", "content marketing", "paid search", "sponsorship",
	"executive assistant", "virtual assistant", "customer support",
	"sales representative", "recruiter", "hr ", "human resources", "accountant",
	"bookkeeper", "admin", "receptionist", "site reliability",
	"sre", "devops", "web analyst", "frontend engineer", "backend engineer",
	"full stack", "fullstack", "product engineer", "software engineer",
	"business systems analyst", "systems analyst", "business analyst",
	"cloud engineer", "controls analyst", "policy analyst", "pilots",
}

// Broader title keywords checked after the exclusion list.
var aiRoleKeywords = []string{
	"ai ", "ai/", "a]i", " ai", "artificial intelligence",
	"machine learning", "ml ", "ml/", " ml", "/ml",
	"deep learning", "data scientist", "data science",
	"nlp", "natural language", "computer vision",
	"mlops", "ml ops", "llm", "large language model",
	"prompt engineer", "generative ai", "genai", "gen ai",
	"neural network", "reinforcement learning",
	"ai research", "ai engineer", "ml engineer", "ml platform",
	"ai product", "ai safety", "predictive", "recommendation",
	"autonomous", "robotics", "cv engineer",
	"tensorflow", "pytorch", "keras", "scikit",
	"openai", "anthropic", "deepmind", "stability ai", "hugging face",
	"midjourney", "cohere", "ai21",
}

var techRoleNouns = []string{"engineer", "developer", "scientist", "analyst", "researcher"}

// IsAIRole reports whether a listing is AI/ML-relevant based on its title,
// and optionally its description and tags.
func IsAIRole(title, description string, tags []string) bool {
	titleLower := strings.ToLower(title)

	if containsAny(titleLower, strongAISignals) {
		return true
	}

	if containsAny(titleLower, nonAIRoles) {
		// Excluded titles get one more chance: a strong signal in the
		// description, provided the title is at least a technical role.
		if description != "" {
			descLower := strings.ToLower(description)
			if containsAny(descLower, strongAISignals) && containsAny(titleLower, techRoleNouns) {
				return true
			}
		}
		return false
	}

	if containsAny(titleLower, aiRoleKeywords) {
		return true
	}

	if len(tags) > 0 {
		tagsStr := strings.ToLower(strings.Join(tags, " "))
		if containsAny(tagsStr, strongAISignals) {
			return true
		}
	}

	if description != "" {
		descLower := strings.ToLower(description)
		if containsAny(descLower, strongAISignals) && containsAny(titleLower, techRoleNouns) {
			return true
		}
	}

	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
