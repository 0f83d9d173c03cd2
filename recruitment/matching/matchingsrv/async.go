package matchingsrv

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/job"
	"github.com/ajcportal/careerhub/recruitment/matching"
	"github.com/ajcportal/careerhub/recruitment/notification"
)

// ProcessRunTask executes one pipeline step for a run. Called by the queue
// worker. A task against a terminal run is dropped silently, which makes
// late deliveries after a cancel harmless.
func (s *MatchingService) ProcessRunTask(ctx context.Context, task matching.Task) error {
	run, err := s.runRepo.GetByID(ctx, task.RunID)
	if err != nil {
		return err
	}

	if run.IsTerminal() {
		logx.Debugf("run %s is %s, dropping %s task", run.ID, run.Status, task.Step)
		return nil
	}

	switch task.Step {
	case matching.StepSubmit:
		return s.stepSubmit(ctx, run)
	case matching.StepPoll:
		return s.stepPoll(ctx, run)
	case matching.StepMatch:
		return s.stepMatch(ctx, run)
	case matching.StepNotify:
		return s.stepNotify(ctx, run)
	default:
		return matching.ErrInvalidRequest().WithDetail("step", string(task.Step))
	}
}

// stepSubmit uploads the stored archive to the parsing service and starts
// the poll loop
func (s *MatchingService) stepSubmit(ctx context.Context, run *matching.Run) error {
	now := time.Now()
	run.Status = matching.RunStatusSubmitting
	run.StartedAt = &now
	if err := s.runRepo.Update(ctx, run); err != nil {
		return err
	}

	data, err := s.fs.ReadFile(ctx, run.ArchivePath)
	if err != nil {
		return s.failRun(ctx, run, "archive unavailable: "+err.Error())
	}

	parseJobID, err := s.parser.SubmitArchive(ctx, run.ArchiveName, bytes.NewReader(data))
	if err != nil {
		return s.failRun(ctx, run, "submit failed: "+err.Error())
	}

	run.ParseJobID = parseJobID
	run.Status = matching.RunStatusParsing
	if err := s.runRepo.Update(ctx, run); err != nil {
		return err
	}

	return s.queue.EnqueueDelayed(ctx, run.ID, matching.Task{RunID: run.ID, Step: matching.StepPoll}, s.config.PollInterval)
}

// stepPoll checks the parse job once and either advances, fails, or
// reschedules itself. Each poll consumes one attempt from the budget so a
// stuck external job cannot keep the run alive forever.
func (s *MatchingService) stepPoll(ctx context.Context, run *matching.Run) error {
	run.AttemptCount++
	if run.AttemptCount > run.MaxAttempts {
		return s.failRun(ctx, run, "parse status poll budget exhausted")
	}

	status, err := s.parser.ParseStatus(ctx, run.ParseJobID)
	if err != nil {
		return s.failRun(ctx, run, "status check failed: "+err.Error())
	}

	run.Progress = status.Progress

	switch {
	case status.Failed:
		return s.failRun(ctx, run, "resume parsing failed")
	case status.Completed:
		run.Status = matching.RunStatusMatching
		run.ResultCSVPath = status.ResultCSVPath
		if err := s.runRepo.Update(ctx, run); err != nil {
			return err
		}
		return s.queue.Enqueue(ctx, run.ID, matching.Task{RunID: run.ID, Step: matching.StepMatch})
	default:
		if err := s.runRepo.Update(ctx, run); err != nil {
			return err
		}
		return s.queue.EnqueueDelayed(ctx, run.ID, matching.Task{RunID: run.ID, Step: matching.StepPoll}, s.config.PollInterval)
	}
}

// stepMatch requests scores for the parsed resumes and schedules the
// delayed notify step, mirroring the countdown the UI used to run
func (s *MatchingService) stepMatch(ctx context.Context, run *matching.Run) error {
	target, err := s.jobRepo.GetByID(ctx, run.JobID)
	if err != nil {
		return s.failRun(ctx, run, "job vanished during run: "+err.Error())
	}

	results, err := s.parser.MatchResumes(ctx, run.ResultCSVPath, target.Description.String())
	if err != nil {
		return s.failRun(ctx, run, "matching failed: "+err.Error())
	}

	run.Results = results
	run.Status = matching.RunStatusResultsReady
	run.Progress = 100
	if err := s.runRepo.Update(ctx, run); err != nil {
		return err
	}

	logx.Infof("match run %s has %d results, notify in %s", run.ID, len(results), s.config.NotifyDelay)
	return s.queue.EnqueueDelayed(ctx, run.ID, matching.Task{RunID: run.ID, Step: matching.StepNotify}, s.config.NotifyDelay)
}

// stepNotify persists the top candidates and sends the digest. The
// terminal-status guard in ProcessRunTask already skipped cancelled runs,
// so reaching this point commits the run to sending.
func (s *MatchingService) stepNotify(ctx context.Context, run *matching.Run) error {
	run.Status = matching.RunStatusNotifying
	if err := s.runRepo.Update(ctx, run); err != nil {
		return err
	}

	target, err := s.jobRepo.GetByID(ctx, run.JobID)
	if err != nil {
		return s.failRun(ctx, run, "job vanished during run: "+err.Error())
	}
	owner, err := s.recruiterRepo.GetByID(ctx, target.RecruiterID)
	if err != nil {
		return s.failRun(ctx, run, "recruiter vanished during run: "+err.Error())
	}

	top := topResults(run.Results, TopCandidateCount)

	// Persist first, then mail. A mail failure leaves the candidates
	// attached, matching the accepted partial-failure behavior.
	if len(top) > 0 {
		candidates := make([]job.CandidateInput, len(top))
		for i, res := range top {
			candidates[i] = job.CandidateInput{
				Name:    candidateName(res),
				Email:   candidateEmail(res),
				Resume:  res.Resume,
				Summary: candidateSummary(res),
				Skills:  res.Skills,
			}
		}

		if _, err := s.candidates.ProcessCandidates(ctx, job.ProcessCandidatesRequest{
			JobID:      run.JobID.String(),
			Candidates: &candidates,
		}); err != nil {
			return s.failRun(ctx, run, "candidate persistence failed: "+err.Error())
		}
	}

	students := make([]notification.DigestCandidate, len(top))
	for i, res := range top {
		students[i] = notification.DigestCandidate{
			Name:            candidateName(res),
			Email:           candidateEmail(res),
			MatchPercentage: res.MatchScore,
			ResumeURL:       res.Resume,
		}
	}

	if len(students) > 0 {
		if err := s.digests.SendCandidateDigest(ctx, notification.SendDigestRequest{
			RecruiterEmail: owner.Email.String(),
			JobTitle:       target.Title.String(),
			JobDescription: target.Description.String(),
			Students:       students,
		}); err != nil {
			return s.failRun(ctx, run, "digest send failed: "+err.Error())
		}
	}

	now := time.Now()
	run.Status = matching.RunStatusDone
	run.CompletedAt = &now
	if err := s.runRepo.Update(ctx, run); err != nil {
		return err
	}

	logx.Infof("match run %s done, %d candidates notified", run.ID, len(top))
	return nil
}

func (s *MatchingService) failRun(ctx context.Context, run *matching.Run, msg string) error {
	run.MarkFailed(msg)
	logx.Errorf("match run %s failed: %s", run.ID, msg)
	return s.runRepo.Update(ctx, run)
}

// Parsers do not always recover a name or email from a resume. Fall back
// to the source filename so the candidate record stays traceable.

func candidateName(res matching.Result) string {
	if res.Name != "" {
		return res.Name
	}
	return stripResumeExt(res.Resume)
}

func candidateEmail(res matching.Result) string {
	if res.Email != "" {
		return res.Email
	}
	return stripResumeExt(res.Resume) + "@candidate.com"
}

func candidateSummary(res matching.Result) string {
	if res.Summary != "" {
		return res.Summary
	}
	return res.Recommendation
}

func stripResumeExt(filename string) string {
	for _, ext := range []string{".pdf", ".docx"} {
		if strings.HasSuffix(strings.ToLower(filename), ext) {
			return filename[:len(filename)-len(ext)]
		}
	}
	return filename
}

// topResults returns the n best results by descending score
func topResults(results []matching.Result, n int) []matching.Result {
	sorted := append([]matching.Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchScore > sorted[j].MatchScore
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
