package job

import "testing"

func intPtr(v int) *int { return &v }

func TestFormatSalaryRange(t *testing.T) {
	cases := []struct {
		min, max *int
		want     string
	}{
		{intPtr(150000), intPtr(300000), "$150K - $300K"},
		{intPtr(150000), nil, "$150K+"},
		{nil, nil, "Competitive"},
		{intPtr(95500), intPtr(120000), "$95K - $120K"},
	}

	for _, tc := range cases {
		if got := FormatSalaryRange(tc.min, tc.max); got != tc.want {
			t.Errorf("FormatSalaryRange(%v, %v) = %q, want %q", tc.min, tc.max, got, tc.want)
		}
	}
}

func TestCompanyLogo(t *testing.T) {
	if got := CompanyLogo("Google LLC"); got != "\U0001F50D" {
		t.Errorf("CompanyLogo(Google LLC) = %q", got)
	}
	if got := CompanyLogo("ANTHROPIC"); got != "\U0001F9E0" {
		t.Errorf("CompanyLogo(ANTHROPIC) = %q", got)
	}
	if got := CompanyLogo("Tiny Startup"); got != defaultLogo {
		t.Errorf("CompanyLogo(Tiny Startup) = %q, want default", got)
	}
}

func TestIsEasyApply(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://jobs.lever.co/acme/123", true},
		{"https://boards.greenhouse.io/acme/jobs/1", true},
		{"https://www.linkedin.com/jobs/view/123", true},
		{"https://example.com/careers/123", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsEasyApply(tc.url); got != tc.want {
			t.Errorf("IsEasyApply(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestDetectATS(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://boards.greenhouse.io/acme/jobs/1", "greenhouse"},
		{"https://jobs.lever.co/acme/123", "lever"},
		{"https://acme.wd5.myworkdayjobs.com/careers", "workday"},
		{"https://jobs.ashbyhq.com/acme/role", "ashby"},
		{"https://example.com/apply", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := DetectATS(tc.url); got != tc.want {
			t.Errorf("DetectATS(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
