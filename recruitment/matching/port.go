package matching

import (
	"context"
	"io"
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/job"
	"github.com/ajcportal/careerhub/recruitment/notification"
)

type RunRepository interface {
	// Create creates a new match run
	Create(ctx context.Context, run *Run) error

	// GetByID retrieves a run by ID with its stored results
	GetByID(ctx context.Context, id kernel.RunID) (*Run, error)

	// Update persists the run's full mutable state
	Update(ctx context.Context, run *Run) error

	// ListByJob retrieves the runs started for a job, newest first
	ListByJob(ctx context.Context, jobID kernel.JobID) ([]Run, error)
}

// RunQueue is the ready/delayed task queue driving the pipeline
type RunQueue interface {
	// Enqueue adds a task to the ready queue
	Enqueue(ctx context.Context, runID kernel.RunID, payload any) error

	// Dequeue gets a task from the queue (blocking with timeout)
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a task for later processing
	EnqueueDelayed(ctx context.Context, runID kernel.RunID, payload any, delay time.Duration) error

	// MoveDelayedToReady moves delayed tasks that are due to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// GetQueueSize returns the number of ready tasks
	GetQueueSize(ctx context.Context) (int64, error)

	// GetDelayedQueueSize returns the number of delayed tasks
	GetDelayedQueueSize(ctx context.Context) (int64, error)

	// Clear removes all tasks (testing/maintenance)
	Clear(ctx context.Context) error
}

// ParseStatus is the polled state of an archive submission
type ParseStatus struct {
	Completed     bool
	Failed        bool
	Progress      int
	ResultCSVPath string
}

// ParserClient reaches the external resume-parsing and matching service.
// Scoring internals are opaque.
type ParserClient interface {
	SubmitArchive(ctx context.Context, filename string, archive io.Reader) (kernel.ParseJobID, error)
	ParseStatus(ctx context.Context, id kernel.ParseJobID) (*ParseStatus, error)
	MatchResumes(ctx context.Context, csvFilePath, jobDescription string) ([]Result, error)
}

// CandidateSink persists scored candidates against a job
type CandidateSink interface {
	ProcessCandidates(ctx context.Context, req job.ProcessCandidatesRequest) (*job.AssociationResponse, error)
}

// DigestSender delivers the candidate digest email
type DigestSender interface {
	SendCandidateDigest(ctx context.Context, req notification.SendDigestRequest) error
}
