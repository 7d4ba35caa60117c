// Package matching computes a deterministic fit score between a job listing
// and a user's skills/target-roles profile. The score is additive over a
// fixed set of heuristics and clamped to [35,92] so it never signals false
// certainty at either end.
package matching

import (
	"strings"

	"techshift/internal/domain/job"
)

const (
	baseScore = 40
	minScore  = 35
	maxScore  = 92
)

type seniority int

const (
	levelJunior seniority = iota
	levelMid
	levelSenior
	levelPrincipal
)

// Job titles carry broader seniority markers than user target roles, so the
// two sides use different word ladders.
var jobPrincipalWords = []string{"principal", "staff", "distinguished", "director", "vp", "head of", "chief"}
var jobSeniorWords = []string{"senior", "sr.", "sr ", "lead", "manager"}
var jobJuniorWords = []string{"junior", "jr.", "jr ", "entry", "associate", "intern"}

var userPrincipalWords = []string{"principal", "staff", "director"}
var userSeniorWords = []string{"senior", "lead"}
var userJuniorWords = []string{"junior", "entry", "associate"}

// Title keywords and their point values. The single highest matching value
// is added, not the sum.
var roleTitlePoints = []struct {
	keyword string
	points  int
}{
	{"ai engineer", 15},
	{"ml engineer", 15},
	{"machine learning engineer", 15},
	{"data scientist", 12},
	{"mlops", 12},
	{"deep learning", 12},
	{"nlp engineer", 12},
	{"computer vision", 12},
	{"llm", 10},
	{"ai/ml", 10},
	{"applied scientist", 10},
	{"research scientist", 8},
}

var topAICompanies = []string{"openai", "anthropic", "google", "meta", "deepmind", "nvidia"}

// Score computes the match score for one job against a user profile.
// Pure: identical inputs always produce the identical integer.
func Score(j job.Job, userSkills, targetRoles []string) int {
	titleLower := strings.ToLower(j.Title)
	score := baseScore

	userLevel := classifyUserSeniority(strings.ToLower(strings.Join(targetRoles, " ")))
	jobLevel := classifyJobSeniority(titleLower)
	score += seniorityPoints(jobLevel, userLevel)

	score += bestRoleTitlePoints(titleLower)
	score += targetRoleOverlapPoints(titleLower, targetRoles)
	score += skillOverlapPoints(j, userSkills)

	if strings.Contains(strings.ToLower(j.Location), "remote") {
		score += 5
	}

	score += salarySanityPoints(j.SalaryMin, userLevel)
	score += companyTierPoints(j.Company, userLevel)

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func classifyJobSeniority(titleLower string) seniority {
	return classifySeniority(titleLower, jobPrincipalWords, jobSeniorWords, jobJuniorWords)
}

func classifyUserSeniority(rolesLower string) seniority {
	return classifySeniority(rolesLower, userPrincipalWords, userSeniorWords, userJuniorWords)
}

func classifySeniority(text string, principalWords, seniorWords, juniorWords []string) seniority {
	for _, w := range principalWords {
		if strings.Contains(text, w) {
			return levelPrincipal
		}
	}
	for _, w := range seniorWords {
		if strings.Contains(text, w) {
			return levelSenior
		}
	}
	for _, w := range juniorWords {
		if strings.Contains(text, w) {
			return levelJunior
		}
	}
	return levelMid
}

func seniorityPoints(jobLevel, userLevel seniority) int {
	diff := int(jobLevel) - int(userLevel)
	switch {
	case diff == 0:
		return 20
	case diff == 1:
		return 10
	case diff == -1:
		// A job one level below the user rewards reaching slightly more
		// than one level above.
		return 15
	case diff >= 2:
		return -10
	default:
		return 5
	}
}

func bestRoleTitlePoints(titleLower string) int {
	best := 0
	for _, it := range roleTitlePoints {
		if strings.Contains(titleLower, it.keyword) && it.points > best {
			best = it.points
		}
	}
	return best
}

func targetRoleOverlapPoints(titleLower string, targetRoles []string) int {
	for _, role := range targetRoles {
		matches := 0
		for _, word := range strings.Fields(strings.ToLower(role)) {
			if len(word) <= 2 {
				continue
			}
			if strings.Contains(titleLower, word) {
				matches++
			}
		}
		if matches >= 2 {
			return 10
		}
		if matches == 1 {
			return 5
		}
	}
	return 0
}

func skillOverlapPoints(j job.Job, userSkills []string) int {
	if len(userSkills) == 0 {
		return 0
	}
	haystack := strings.ToLower(strings.Join(j.RequiredSkills, " ") + " " + j.Description)
	matched := 0
	for _, s := range userSkills {
		s = strings.TrimSpace(strings.ToLower(s))
		// Skills of one or two characters ("r", "go") match almost any
		// description text, so they never count as an overlap.
		if len(s) <= 2 {
			continue
		}
		if strings.Contains(haystack, s) {
			matched++
		}
	}
	frac := float64(matched) / float64(len(userSkills))
	switch {
	case frac >= 0.6:
		return 15
	case frac >= 0.4:
		return 10
	case frac >= 0.2:
		return 5
	default:
		return 0
	}
}

func salarySanityPoints(salaryMin *int, userLevel seniority) int {
	if salaryMin == nil {
		return 0
	}
	// At most one adjustment applies, checked from most to least severe.
	switch {
	case *salaryMin >= 250000 && (userLevel == levelJunior || userLevel == levelMid):
		return -5
	case *salaryMin >= 150000 && userLevel == levelJunior:
		return -3
	case *salaryMin >= 100000 && *salaryMin <= 180000 && userLevel == levelMid:
		return 3
	}
	return 0
}

func companyTierPoints(company string, userLevel seniority) int {
	lower := strings.ToLower(company)
	for _, c := range topAICompanies {
		if strings.Contains(lower, c) {
			if userLevel == levelSenior || userLevel == levelPrincipal {
				return 3
			}
			return 1
		}
	}
	return 0
}
