package dto

import "techshift/internal/domain/job"

type JobSearchResponse struct {
	Jobs       []job.Job `json:"jobs"`
	TotalCount int       `json:"total_count"`
	Sources    []string  `json:"sources"`
	LastScan   string    `json:"last_scan"`
	IsMock     bool      `json:"is_mock"`
}
