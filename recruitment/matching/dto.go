package matching

import (
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

// RunStatusResponse is the polling surface exposed to the SPA
type RunStatusResponse struct {
	RunID        kernel.RunID `json:"runId"`
	JobID        kernel.JobID `json:"jobId"`
	Status       RunStatus    `json:"status"`
	Progress     int          `json:"progress"`
	AttemptCount int          `json:"attemptCount"`
	Error        string       `json:"error,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}

// RunResultsResponse carries the stored ranked result list
type RunResultsResponse struct {
	RunID   kernel.RunID `json:"runId"`
	Status  RunStatus    `json:"status"`
	Results []Result     `json:"results"`
	Count   int          `json:"count"`
}

// CancelRunResponse wraps the cancellation result
type CancelRunResponse struct {
	Message string    `json:"message"`
	Status  RunStatus `json:"status"`
	Success bool      `json:"success"`
}

// StatusOf projects a run onto the polling response
func StatusOf(r *Run) *RunStatusResponse {
	return &RunStatusResponse{
		RunID:        r.ID,
		JobID:        r.JobID,
		Status:       r.Status,
		Progress:     r.Progress,
		AttemptCount: r.AttemptCount,
		Error:        r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
		CompletedAt:  r.CompletedAt,
	}
}
