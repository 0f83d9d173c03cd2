package matching

import (
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

// RunStatus tracks a match run through the pipeline
type RunStatus string

const (
	RunStatusPending      RunStatus = "pending"
	RunStatusSubmitting   RunStatus = "submitting"
	RunStatusParsing      RunStatus = "parsing"
	RunStatusMatching     RunStatus = "matching"
	RunStatusResultsReady RunStatus = "results_ready"
	RunStatusNotifying    RunStatus = "notifying"
	RunStatusDone         RunStatus = "done"
	RunStatusFailed       RunStatus = "failed"
	RunStatusCancelled    RunStatus = "cancelled"
)

// Step names the unit of work a queued task carries
type Step string

const (
	StepSubmit Step = "submit"
	StepPoll   Step = "poll"
	StepMatch  Step = "match"
	StepNotify Step = "notify"
)

// Result is one scored candidate held on a run
type Result struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Resume         string   `json:"resume"`
	MatchScore     float64  `json:"match_score"`
	Recommendation string   `json:"recommendation"`
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
}

// Run is one durable matching pipeline execution for a job
type Run struct {
	ID          kernel.RunID       `db:"id" json:"id"`
	JobID       kernel.JobID       `db:"job_id" json:"job_id"`
	RecruiterID kernel.RecruiterID `db:"recruiter_id" json:"recruiter_id"`

	Status RunStatus `db:"status" json:"status"`

	ArchivePath string `db:"archive_path" json:"archive_path"`
	ArchiveName string `db:"archive_name" json:"archive_name"`

	ParseJobID    kernel.ParseJobID `db:"parse_job_id" json:"parse_job_id,omitempty"`
	ResultCSVPath string            `db:"result_csv_path" json:"result_csv_path,omitempty"`

	// Poll budget. The run fails once AttemptCount exceeds MaxAttempts,
	// the external job is never waited on forever.
	AttemptCount int `db:"attempt_count" json:"attempt_count"`
	MaxAttempts  int `db:"max_attempts" json:"max_attempts"`

	Progress     int      `db:"progress" json:"progress"`
	ErrorMessage string   `db:"error_message" json:"error_message,omitempty"`
	Results      []Result `db:"-" json:"results,omitempty"`

	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	FailedAt    *time.Time `db:"failed_at" json:"failed_at,omitempty"`
	CancelledAt *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
}

// IsTerminal reports whether the run can make no further progress
func (r *Run) IsTerminal() bool {
	switch r.Status {
	case RunStatusDone, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// CanCancel reports whether cancellation still has an effect. Once the
// notify step started the send is in flight and cancelling is a no-op.
func (r *Run) CanCancel() bool {
	return !r.IsTerminal() && r.Status != RunStatusNotifying
}

// HasResults reports whether the ranked result list has been stored
func (r *Run) HasResults() bool {
	switch r.Status {
	case RunStatusResultsReady, RunStatusNotifying, RunStatusDone:
		return true
	}
	return false
}

// MarkFailed records the failure reason and timestamp
func (r *Run) MarkFailed(msg string) {
	now := time.Now()
	r.Status = RunStatusFailed
	r.ErrorMessage = msg
	r.FailedAt = &now
}

// Task is the queue payload driving one step of a run
type Task struct {
	RunID kernel.RunID `json:"run_id"`
	Step  Step         `json:"step"`
}
