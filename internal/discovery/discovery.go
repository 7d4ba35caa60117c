// Package discovery fans out job searches to external job-board APIs and
// normalizes their responses into the common Job shape. Every upstream is
// best-effort: a source that fails, times out, or is not configured simply
// contributes zero results.
package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"techshift/internal/domain/job"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

const (
	userAgent = "TechShift/1.0"

	// Cap on raw records inspected per source, so a huge feed cannot make a
	// single adapter scan unbounded work.
	maxRawScan = 100

	maxDescriptionLen = 500
	maxSkills         = 5
	maxResponseBytes  = 5 << 20
)

type Query struct {
	Keywords   string
	Location   string
	SalaryMin  *int
	RemoteOnly bool
	Limit      int
}

// Source is one upstream job API. Search never returns an error: upstream
// failures are logged inside the adapter and yield an empty slice.
type Source interface {
	Name() string
	Search(ctx context.Context, q Query) []job.Job
}

var skillVocabulary = []string{
	"Python", "JavaScript", "TypeScript", "Java", "Go", "Rust", "C++",
	"React", "Node.js", "FastAPI", "Django", "Flask", "Spring",
	"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform",
	"PostgreSQL", "MongoDB", "Redis", "Elasticsearch",
	"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
	"PyTorch", "TensorFlow", "Keras", "Scikit-learn",
	"LLM", "GPT", "RAG", "LangChain", "Transformers",
	"REST API", "GraphQL", "Microservices", "CI/CD",
	"Agile", "Scrum", "Git", "Linux", "SQL",
}

func newClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// fetch performs a single bounded request. No retries: one failed attempt
// per source per search call is final.
func fetch(ctx context.Context, client *http.Client, req *http.Request) ([]byte, error) {
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return readAllLimit(resp.Body, maxResponseBytes)
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}

// stripHTML flattens markup into plain text. Falls back to the raw string
// when the input cannot be parsed at all.
func stripHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

func truncateDescription(s string) string {
	if len(s) <= maxDescriptionLen {
		return s
	}
	// Back up to a rune boundary so the cut never splits a multi-byte
	// character.
	cut := maxDescriptionLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// extractSkills scans text for the fixed skill vocabulary, preserving
// vocabulary order, capped at maxSkills.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, maxSkills)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) >= maxSkills {
				break
			}
		}
	}
	return found
}

func capSkills(skills []string) []string {
	out := make([]string, 0, maxSkills)
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) >= maxSkills {
			break
		}
	}
	return out
}

// sourceJobID builds the globally unique, source-prefixed job ID. Records
// without an upstream ID get a random suffix instead.
func sourceJobID(source, upstreamID string) string {
	upstreamID = strings.TrimSpace(upstreamID)
	if upstreamID == "" {
		upstreamID = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	return source + "_" + upstreamID
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// isoDateOrToday keeps the date portion of an upstream timestamp when it
// looks like a date, otherwise falls back to today.
func isoDateOrToday(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 10 {
		if _, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return s[:10]
		}
	}
	return today()
}

func epochDateOrToday(epoch int64) string {
	if epoch <= 0 {
		return today()
	}
	return time.Unix(epoch, 0).UTC().Format("2006-01-02")
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}
