package matching

import (
	"testing"

	"techshift/internal/domain/job"
)

func intPtr(v int) *int { return &v }

func TestScore_Deterministic(t *testing.T) {
	j := job.Job{
		Title:          "Senior Machine Learning Engineer",
		Company:        "OpenAI",
		Location:       "Remote",
		SalaryMin:      intPtr(180000),
		RequiredSkills: []string{"Python", "PyTorch"},
		Description:    "Train and serve large models.",
	}
	skills := []string{"Python", "PyTorch", "Kubernetes"}
	roles := []string{"Senior ML Engineer"}

	first := Score(j, skills, roles)
	for i := 0; i < 100; i++ {
		if got := Score(j, skills, roles); got != first {
			t.Fatalf("score not deterministic: %d != %d", got, first)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	high := job.Job{
		Title:          "Senior Machine Learning Engineer",
		Company:        "OpenAI",
		Location:       "Remote",
		SalaryMin:      intPtr(200000),
		RequiredSkills: []string{"Python", "PyTorch"},
	}
	if got := Score(high, []string{"Python", "PyTorch"}, []string{"Senior Machine Learning Engineer"}); got != 92 {
		t.Fatalf("expected clamp to 92, got %d", got)
	}

	low := job.Job{
		Title:    "Principal Executive",
		Company:  "Foo Corp",
		Location: "Onsite",
	}
	if got := Score(low, nil, []string{"junior intern"}); got != 35 {
		t.Fatalf("expected clamp to 35, got %d", got)
	}
}

func TestScore_BaselineAndRemoteBonus(t *testing.T) {
	onsite := job.Job{Title: "Software Role", Company: "Acme", Location: "Onsite"}
	remote := onsite
	remote.Location = "Remote, Worldwide"

	// No profile: base 40 plus the matched-seniority 20.
	if got := Score(onsite, nil, nil); got != 60 {
		t.Fatalf("baseline score = %d, want 60", got)
	}
	if got := Score(remote, nil, nil); got != 65 {
		t.Fatalf("remote score = %d, want 65", got)
	}
}

func TestScore_RoleTitleTakesSingleBest(t *testing.T) {
	j := job.Job{Title: "AI Engineer / ML Engineer", Company: "Acme", Location: "Onsite"}

	// "ai engineer" and "ml engineer" both match at 15; only one counts:
	// 40 base + 20 seniority + 15 title.
	if got := Score(j, nil, nil); got != 75 {
		t.Fatalf("score = %d, want 75", got)
	}
}

func TestScore_RoleTitleTable(t *testing.T) {
	cases := []struct {
		title string
		want  int
	}{
		// base 40 + seniority 20 + title points
		{"Applied Scientist", 70},
		{"Deep Learning Researcher", 72},
		{"AI/ML Specialist", 70},
		{"NLP Specialist", 60}, // only "nlp engineer" scores, not bare "nlp"
	}
	for _, tc := range cases {
		j := job.Job{Title: tc.title, Company: "Acme", Location: "Onsite"}
		if got := Score(j, nil, nil); got != tc.want {
			t.Errorf("Score(%q) = %d, want %d", tc.title, got, tc.want)
		}
	}
}

func TestScore_SalaryPenaltyForJuniors(t *testing.T) {
	j := job.Job{Title: "Software Role", Company: "Acme", Location: "Onsite", SalaryMin: intPtr(260000)}

	// Junior user, mid job: 40 + 10 seniority - 5 salary sanity. The salary
	// adjustments are mutually exclusive, so the junior -3 does not stack.
	if got := Score(j, nil, []string{"junior analyst"}); got != 45 {
		t.Fatalf("score = %d, want 45", got)
	}
}

func TestScore_UserSeniorityLadderIsNarrow(t *testing.T) {
	j := job.Job{Title: "Software Role", Company: "Acme", Location: "Onsite"}

	// "manager" marks a job title as senior but not a target role, so an
	// Engineering Manager profile stays mid: 40 + 20 matched seniority.
	if got := Score(j, nil, []string{"Engineering Manager"}); got != 60 {
		t.Fatalf("score = %d, want 60", got)
	}

	seniorJob := job.Job{Title: "Engineering Manager", Company: "Acme", Location: "Onsite"}
	// Same words on the job side do count: senior job vs mid user, 40 + 10.
	if got := Score(seniorJob, nil, []string{"Engineering Manager"}); got != 50 {
		t.Fatalf("score = %d, want 50", got)
	}
}

func TestScore_SkillOverlapThresholds(t *testing.T) {
	j := job.Job{
		Title:          "Software Role",
		Company:        "Acme",
		Location:       "Onsite",
		RequiredSkills: []string{"Python", "Docker"},
		Description:    "Ship services in Go on AWS.",
	}

	cases := []struct {
		skills []string
		want   int
	}{
		// base 40 + seniority 20 + overlap points
		{[]string{"Python", "Docker", "AWS"}, 75},                    // 3/3 -> +15
		{[]string{"Python", "Docker", "Rust", "Scala", "C#"}, 70},    // 2/5 -> +10
		{[]string{"Python", "Rust", "Scala", "C#", "Elixir"}, 65},    // 1/5 -> +5
		{[]string{"Rust", "Scala", "C#", "Elixir", "Haskell"}, 60},   // 0/5 -> +0
		{[]string{"Go", "Rust", "Scala", "C#", "Elixir"}, 60},        // "Go" too short to match
	}

	for _, tc := range cases {
		if got := Score(j, tc.skills, nil); got != tc.want {
			t.Errorf("Score with skills %v = %d, want %d", tc.skills, got, tc.want)
		}
	}
}
