package discovery

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteOKSearch_SkipsMetadataAndMalformed(t *testing.T) {
	// First element is the legal metadata blob the feed always prepends.
	body := `[
		{"legal": "API terms apply"},
		{"id": 1, "position": "Machine Learning Engineer", "company": "Acme",
		 "description": "Train models", "tags": ["python", "pytorch"],
		 "url": "https://remoteok.com/l/1", "epoch": 1736035200},
		{"id": 2, "position": "Data Scientist", "company": "Beta", "tags": "broken"},
		{"id": 3, "position": "Office Manager", "company": "Gamma",
		 "description": "Run the office", "tags": ["admin"]}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	s := NewRemoteOKSource(log.New(discard{}, "", 0))
	s.baseURL = srv.URL

	jobs := s.Search(context.Background(), Query{Keywords: "ai", Limit: 10})
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "remoteok_1" {
		t.Errorf("ID = %q", j.ID)
	}
	if j.PostedDate != "2025-01-05" {
		t.Errorf("PostedDate = %q", j.PostedDate)
	}
	if j.Location != "Remote (Worldwide)" {
		t.Errorf("Location = %q", j.Location)
	}
	if !j.IsEasyApply {
		t.Errorf("remoteok jobs should be easy-apply")
	}
	if len(j.RequiredSkills) != 2 {
		t.Errorf("RequiredSkills = %v", j.RequiredSkills)
	}
}

func TestRemoteOKSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewRemoteOKSource(log.New(discard{}, "", 0))
	s.baseURL = srv.URL

	if got := s.Search(context.Background(), Query{Keywords: "ai"}); len(got) != 0 {
		t.Fatalf("expected no results on 502, got %d", len(got))
	}
}

func TestRemoteOKSearch_LimitHonored(t *testing.T) {
	body := `[
		{"legal": "meta"},
		{"id": 1, "position": "ML Engineer", "company": "A", "tags": ["ml"]},
		{"id": 2, "position": "AI Engineer", "company": "B", "tags": ["ai"]},
		{"id": 3, "position": "Data Scientist", "company": "C", "tags": ["data"]}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	s := NewRemoteOKSource(log.New(discard{}, "", 0))
	s.baseURL = srv.URL

	jobs := s.Search(context.Background(), Query{Keywords: "ai", Limit: 2})
	if len(jobs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(jobs))
	}
}
