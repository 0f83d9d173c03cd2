package matchingsrv

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/ajcportal/careerhub/pkg/fsx"
	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/job"
	"github.com/ajcportal/careerhub/recruitment/matching"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/google/uuid"
)

// Defaults for the pipeline timing knobs. The poll interval matches the
// original UI's 2 second cadence, the notify delay its 3 second countdown.
const (
	DefaultPollInterval    = 2 * time.Second
	DefaultNotifyDelay     = 3 * time.Second
	DefaultMaxPollAttempts = 150
	TopCandidateCount      = 3
)

// Config tunes the pipeline timing and budget
type Config struct {
	PollInterval    time.Duration
	NotifyDelay     time.Duration
	MaxPollAttempts int
}

func (c *Config) applyDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.NotifyDelay <= 0 {
		c.NotifyDelay = DefaultNotifyDelay
	}
	if c.MaxPollAttempts <= 0 {
		c.MaxPollAttempts = DefaultMaxPollAttempts
	}
}

// MatchingService owns the durable match-run pipeline: archive intake,
// external parse/match orchestration, and the final persist-and-notify step
type MatchingService struct {
	runRepo       matching.RunRepository
	queue         matching.RunQueue
	jobRepo       job.Repository
	recruiterRepo recruiter.Repository
	parser        matching.ParserClient
	fs            fsx.FileSystem
	candidates    matching.CandidateSink
	digests       matching.DigestSender
	config        Config
}

// NewMatchingService creates a new instance of the matching service
func NewMatchingService(
	runRepo matching.RunRepository,
	queue matching.RunQueue,
	jobRepo job.Repository,
	recruiterRepo recruiter.Repository,
	parser matching.ParserClient,
	fs fsx.FileSystem,
	candidates matching.CandidateSink,
	digests matching.DigestSender,
	config Config,
) *MatchingService {
	config.applyDefaults()
	return &MatchingService{
		runRepo:       runRepo,
		queue:         queue,
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
		parser:        parser,
		fs:            fs,
		candidates:    candidates,
		digests:       digests,
		config:        config,
	}
}

// StartRun validates and stores an uploaded resume archive, creates the run
// record, and enqueues the first pipeline step. Only zip archives are
// accepted.
func (s *MatchingService) StartRun(ctx context.Context, actingID kernel.RecruiterID, jobID kernel.JobID, filename string, archive io.Reader) (*matching.RunStatusResponse, error) {
	if jobID.IsEmpty() {
		return nil, matching.ErrInvalidRequest().WithDetail("jobId", "missing or empty")
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".zip") {
		return nil, matching.ErrInvalidArchive().WithDetail("filename", filename)
	}

	target, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !target.IsOwnedBy(actingID) {
		return nil, job.ErrNotOwner().WithDetail("job_id", jobID.String())
	}

	runID := kernel.NewRunID(uuid.NewString())
	archivePath := s.fs.Join("match-runs", runID.String(), filename)

	if err := s.fs.WriteFileStream(ctx, archivePath, archive); err != nil {
		return nil, matching.ErrStartFailed().WithDetail("cause", err.Error())
	}

	run := &matching.Run{
		ID:          runID,
		JobID:       target.ID,
		RecruiterID: target.RecruiterID,
		Status:      matching.RunStatusPending,
		ArchivePath: archivePath,
		ArchiveName: filename,
		MaxAttempts: s.config.MaxPollAttempts,
		CreatedAt:   time.Now(),
	}

	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, matching.ErrStartFailed().WithDetail("cause", err.Error())
	}

	if err := s.queue.Enqueue(ctx, run.ID, matching.Task{RunID: run.ID, Step: matching.StepSubmit}); err != nil {
		run.MarkFailed("failed to enqueue submit step")
		_ = s.runRepo.Update(ctx, run)
		return nil, matching.ErrStartFailed().WithDetail("cause", err.Error())
	}

	logx.Infof("match run %s started for job %s", run.ID, run.JobID)
	return matching.StatusOf(run), nil
}

// GetRunStatus returns the polling view of a run
func (s *MatchingService) GetRunStatus(ctx context.Context, id kernel.RunID) (*matching.RunStatusResponse, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return matching.StatusOf(run), nil
}

// GetRunResults returns the stored ranked result list once available
func (s *MatchingService) GetRunResults(ctx context.Context, id kernel.RunID) (*matching.RunResultsResponse, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !run.HasResults() {
		return nil, matching.ErrResultsNotReady().WithDetail("status", string(run.Status))
	}

	return &matching.RunResultsResponse{
		RunID:   run.ID,
		Status:  run.Status,
		Results: run.Results,
		Count:   len(run.Results),
	}, nil
}

// CancelRun stops a run before its notify step begins. A run whose send is
// already in flight reports a conflict, the send is not interrupted.
func (s *MatchingService) CancelRun(ctx context.Context, actingID kernel.RecruiterID, id kernel.RunID) (*matching.CancelRunResponse, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run.RecruiterID != actingID {
		return nil, job.ErrNotOwner().WithDetail("run_id", id.String())
	}
	if !run.CanCancel() {
		return nil, matching.ErrNotCancellable().WithDetail("status", string(run.Status))
	}

	now := time.Now()
	run.Status = matching.RunStatusCancelled
	run.CancelledAt = &now
	if err := s.runRepo.Update(ctx, run); err != nil {
		return nil, err
	}

	logx.Infof("match run %s cancelled", run.ID)
	return &matching.CancelRunResponse{
		Message: "Run cancelled",
		Status:  run.Status,
		Success: true,
	}, nil
}
