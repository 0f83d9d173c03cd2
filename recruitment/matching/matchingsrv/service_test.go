package matchingsrv

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ajcportal/careerhub/pkg/errx"
	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/job"
	"github.com/ajcportal/careerhub/recruitment/matching"
	"github.com/ajcportal/careerhub/recruitment/notification"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
)

type stubRunRepo struct {
	runs map[kernel.RunID]*matching.Run
}

func newStubRunRepo() *stubRunRepo {
	return &stubRunRepo{runs: make(map[kernel.RunID]*matching.Run)}
}

func (s *stubRunRepo) Create(_ context.Context, run *matching.Run) error {
	copied := *run
	s.runs[run.ID] = &copied
	return nil
}

func (s *stubRunRepo) GetByID(_ context.Context, id kernel.RunID) (*matching.Run, error) {
	run, ok := s.runs[id]
	if !ok {
		return nil, matching.ErrRunNotFound()
	}
	copied := *run
	return &copied, nil
}

func (s *stubRunRepo) Update(_ context.Context, run *matching.Run) error {
	if _, ok := s.runs[run.ID]; !ok {
		return matching.ErrRunNotFound()
	}
	copied := *run
	s.runs[run.ID] = &copied
	return nil
}

func (s *stubRunRepo) ListByJob(_ context.Context, jobID kernel.JobID) ([]matching.Run, error) {
	out := make([]matching.Run, 0)
	for _, run := range s.runs {
		if run.JobID == jobID {
			out = append(out, *run)
		}
	}
	return out, nil
}

type queuedTask struct {
	task    matching.Task
	delayed bool
}

type stubQueue struct {
	tasks []queuedTask
}

func (q *stubQueue) Enqueue(_ context.Context, _ kernel.RunID, payload any) error {
	q.tasks = append(q.tasks, queuedTask{task: payload.(matching.Task)})
	return nil
}

func (q *stubQueue) Dequeue(_ context.Context, _ time.Duration) ([]byte, error) {
	return nil, nil
}

func (q *stubQueue) EnqueueDelayed(_ context.Context, _ kernel.RunID, payload any, _ time.Duration) error {
	q.tasks = append(q.tasks, queuedTask{task: payload.(matching.Task), delayed: true})
	return nil
}

func (q *stubQueue) MoveDelayedToReady(_ context.Context) (int, error) { return 0, nil }
func (q *stubQueue) GetQueueSize(_ context.Context) (int64, error)     { return int64(len(q.tasks)), nil }
func (q *stubQueue) GetDelayedQueueSize(_ context.Context) (int64, error) {
	return 0, nil
}
func (q *stubQueue) Clear(_ context.Context) error { return nil }

// pop removes and returns the oldest queued task
func (q *stubQueue) pop() (matching.Task, bool) {
	if len(q.tasks) == 0 {
		return matching.Task{}, false
	}
	t := q.tasks[0]
	q.tasks = q.tasks[1:]
	return t.task, true
}

type stubParser struct {
	submitID      kernel.ParseJobID
	submitErr     error
	statuses      []matching.ParseStatus
	statusCalls   int
	matchResults  []matching.Result
	matchErr      error
	lastJobDesc   string
	lastCSVPath   string
	submittedName string
}

func (p *stubParser) SubmitArchive(_ context.Context, filename string, archive io.Reader) (kernel.ParseJobID, error) {
	p.submittedName = filename
	io.Copy(io.Discard, archive)
	if p.submitErr != nil {
		return "", p.submitErr
	}
	return p.submitID, nil
}

func (p *stubParser) ParseStatus(_ context.Context, _ kernel.ParseJobID) (*matching.ParseStatus, error) {
	idx := p.statusCalls
	p.statusCalls++
	if idx >= len(p.statuses) {
		idx = len(p.statuses) - 1
	}
	status := p.statuses[idx]
	return &status, nil
}

func (p *stubParser) MatchResumes(_ context.Context, csvFilePath, jobDescription string) ([]matching.Result, error) {
	p.lastCSVPath = csvFilePath
	p.lastJobDesc = jobDescription
	if p.matchErr != nil {
		return nil, p.matchErr
	}
	return p.matchResults, nil
}

type stubFS struct {
	files map[string][]byte
}

func newStubFS() *stubFS { return &stubFS{files: make(map[string][]byte)} }

func (f *stubFS) WriteFile(_ context.Context, filePath string, data []byte) error {
	f.files[filePath] = data
	return nil
}

func (f *stubFS) WriteFileStream(_ context.Context, filePath string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.files[filePath] = data
	return nil
}

func (f *stubFS) ReadFile(_ context.Context, filePath string) ([]byte, error) {
	data, ok := f.files[filePath]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *stubFS) DeleteFile(_ context.Context, filePath string) error {
	delete(f.files, filePath)
	return nil
}

func (f *stubFS) Join(elem ...string) string { return strings.Join(elem, "/") }

type stubJobRepo struct {
	job *job.Job
}

func (s *stubJobRepo) Create(_ context.Context, _ *job.Job) error { return nil }
func (s *stubJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	if s.job == nil || s.job.ID != id {
		return nil, job.ErrJobNotFound()
	}
	return s.job, nil
}
func (s *stubJobRepo) Update(_ context.Context, _ *job.Job) error        { return nil }
func (s *stubJobRepo) Delete(_ context.Context, _ kernel.JobID) error    { return nil }
func (s *stubJobRepo) ListAll(_ context.Context) ([]job.WithRecruiter, error) {
	return nil, nil
}
func (s *stubJobRepo) ListByRecruiter(_ context.Context, _ kernel.RecruiterID) ([]job.Job, error) {
	return nil, nil
}
func (s *stubJobRepo) AddApplicants(_ context.Context, _ kernel.JobID, _ []kernel.StudentID) error {
	return nil
}
func (s *stubJobRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	return s.job != nil && s.job.ID == id, nil
}

type stubRecruiterRepo struct {
	rec *recruiter.Recruiter
}

func (s *stubRecruiterRepo) Create(_ context.Context, _ *recruiter.Recruiter) error { return nil }
func (s *stubRecruiterRepo) GetByID(_ context.Context, id kernel.RecruiterID) (*recruiter.Recruiter, error) {
	if s.rec == nil || s.rec.ID != id {
		return nil, recruiter.ErrRecruiterNotFound()
	}
	return s.rec, nil
}
func (s *stubRecruiterRepo) GetByEmail(_ context.Context, _ kernel.Email) (*recruiter.Recruiter, error) {
	return nil, recruiter.ErrRecruiterNotFound()
}
func (s *stubRecruiterRepo) Exists(_ context.Context, id kernel.RecruiterID) (bool, error) {
	return s.rec != nil && s.rec.ID == id, nil
}
func (s *stubRecruiterRepo) ExistsByEmail(_ context.Context, _ kernel.Email) (bool, error) {
	return false, nil
}

type stubSink struct {
	requests []job.ProcessCandidatesRequest
}

func (s *stubSink) ProcessCandidates(_ context.Context, req job.ProcessCandidatesRequest) (*job.AssociationResponse, error) {
	s.requests = append(s.requests, req)
	return &job.AssociationResponse{Success: true}, nil
}

type stubDigests struct {
	sent []notification.SendDigestRequest
}

func (s *stubDigests) SendCandidateDigest(_ context.Context, req notification.SendDigestRequest) error {
	s.sent = append(s.sent, req)
	return nil
}

type fixture struct {
	svc     *MatchingService
	runRepo *stubRunRepo
	queue   *stubQueue
	parser  *stubParser
	sink    *stubSink
	digests *stubDigests
	owner   kernel.RecruiterID
	jobID   kernel.JobID
}

func newFixture(t *testing.T, parser *stubParser) *fixture {
	t.Helper()

	owner := kernel.NewRecruiterID("rec-1")
	jobID := kernel.NewJobID("job-1")

	f := &fixture{
		runRepo: newStubRunRepo(),
		queue:   &stubQueue{},
		parser:  parser,
		sink:    &stubSink{},
		digests: &stubDigests{},
		owner:   owner,
		jobID:   jobID,
	}

	f.svc = NewMatchingService(
		f.runRepo,
		f.queue,
		&stubJobRepo{job: &job.Job{
			ID: jobID, Title: "Engineer", Description: "Build things", RecruiterID: owner,
		}},
		&stubRecruiterRepo{rec: &recruiter.Recruiter{ID: owner, Email: "rec@x.com"}},
		parser,
		newStubFS(),
		f.sink,
		f.digests,
		Config{MaxPollAttempts: 3},
	)

	return f
}

// drive runs queued tasks until the queue drains or the limit is hit
func (f *fixture) drive(t *testing.T, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		task, ok := f.queue.pop()
		if !ok {
			return
		}
		if err := f.svc.ProcessRunTask(context.Background(), task); err != nil {
			t.Fatalf("task %v failed: %v", task, err)
		}
	}
	if _, ok := f.queue.pop(); ok {
		t.Fatalf("queue not drained after %d tasks", limit)
	}
}

func (f *fixture) start(t *testing.T) kernel.RunID {
	t.Helper()
	status, err := f.svc.StartRun(context.Background(), f.owner, f.jobID, "resumes.zip", strings.NewReader("zip"))
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	return status.RunID
}

func TestStartRunRejectsNonArchive(t *testing.T) {
	f := newFixture(t, &stubParser{})

	_, err := f.svc.StartRun(context.Background(), f.owner, f.jobID, "resumes.pdf", strings.NewReader("x"))
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != matching.CodeInvalidArchive {
		t.Fatalf("expected INVALID_ARCHIVE, got %v", err)
	}
}

func TestStartRunRejectsForeignJob(t *testing.T) {
	f := newFixture(t, &stubParser{})

	_, err := f.svc.StartRun(context.Background(), "rec-other", f.jobID, "resumes.zip", strings.NewReader("x"))
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != job.CodeNotOwner {
		t.Fatalf("expected NOT_OWNER, got %v", err)
	}
}

func TestPipelineRunsToCompletion(t *testing.T) {
	parser := &stubParser{
		submitID: "pj-1",
		statuses: []matching.ParseStatus{
			{Progress: 50},
			{Completed: true, Progress: 100, ResultCSVPath: "/tmp/out.csv"},
		},
		matchResults: []matching.Result{
			{Name: "A", Email: "a@x.com", Resume: "a.pdf", MatchScore: 60},
			{Name: "B", Email: "b@x.com", Resume: "b.pdf", MatchScore: 90},
		},
	}
	f := newFixture(t, parser)

	runID := f.start(t)
	f.drive(t, 10)

	run, err := f.runRepo.GetByID(context.Background(), runID)
	if err != nil {
		t.Fatal(err)
	}
	if run.Status != matching.RunStatusDone {
		t.Fatalf("run status = %s, want done", run.Status)
	}
	if parser.lastCSVPath != "/tmp/out.csv" || parser.lastJobDesc != "Build things" {
		t.Fatalf("match called with %q %q", parser.lastCSVPath, parser.lastJobDesc)
	}
	if len(f.sink.requests) != 1 || len(f.digests.sent) != 1 {
		t.Fatalf("persist/send calls: %d/%d", len(f.sink.requests), len(f.digests.sent))
	}
}

func TestPollBudgetBoundsTheRun(t *testing.T) {
	parser := &stubParser{
		submitID: "pj-1",
		statuses: []matching.ParseStatus{{Progress: 10}},
	}
	f := newFixture(t, parser)

	runID := f.start(t)
	f.drive(t, 20)

	run, _ := f.runRepo.GetByID(context.Background(), runID)
	if run.Status != matching.RunStatusFailed {
		t.Fatalf("run status = %s, want failed", run.Status)
	}
	if parser.statusCalls > 3 {
		t.Fatalf("polled %d times past the budget of 3", parser.statusCalls)
	}
	if len(f.digests.sent) != 0 {
		t.Fatal("failed run must not notify")
	}
}

func TestParseFailureFailsRun(t *testing.T) {
	parser := &stubParser{
		submitID: "pj-1",
		statuses: []matching.ParseStatus{{Failed: true}},
	}
	f := newFixture(t, parser)

	runID := f.start(t)
	f.drive(t, 10)

	run, _ := f.runRepo.GetByID(context.Background(), runID)
	if run.Status != matching.RunStatusFailed {
		t.Fatalf("run status = %s, want failed", run.Status)
	}
}

func TestCancelDuringCountdownSkipsPersistAndSend(t *testing.T) {
	parser := &stubParser{
		submitID: "pj-1",
		statuses: []matching.ParseStatus{{Completed: true, ResultCSVPath: "/tmp/out.csv"}},
		matchResults: []matching.Result{
			{Name: "A", Email: "a@x.com", MatchScore: 80},
		},
	}
	f := newFixture(t, parser)

	runID := f.start(t)

	// Run the pipeline up to results_ready, leaving the delayed notify
	// task queued.
	for {
		run, _ := f.runRepo.GetByID(context.Background(), runID)
		if run.Status == matching.RunStatusResultsReady {
			break
		}
		task, ok := f.queue.pop()
		if !ok {
			t.Fatal("queue drained before results were ready")
		}
		if err := f.svc.ProcessRunTask(context.Background(), task); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := f.svc.CancelRun(context.Background(), f.owner, runID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	f.drive(t, 5)

	run, _ := f.runRepo.GetByID(context.Background(), runID)
	if run.Status != matching.RunStatusCancelled {
		t.Fatalf("run status = %s, want cancelled", run.Status)
	}
	if len(f.sink.requests) != 0 {
		t.Fatal("cancelled run persisted candidates")
	}
	if len(f.digests.sent) != 0 {
		t.Fatal("cancelled run sent a digest")
	}
}

func TestNotifyTakesTopThreeByScore(t *testing.T) {
	parser := &stubParser{
		submitID: "pj-1",
		statuses: []matching.ParseStatus{{Completed: true, ResultCSVPath: "/tmp/out.csv"}},
		matchResults: []matching.Result{
			{Name: "Low", Email: "low@x.com", MatchScore: 10},
			{Name: "Top", Email: "top@x.com", MatchScore: 95},
			{Name: "Mid", Email: "mid@x.com", MatchScore: 50},
			{Name: "High", Email: "high@x.com", MatchScore: 80},
		},
	}
	f := newFixture(t, parser)

	f.start(t)
	f.drive(t, 10)

	if len(f.digests.sent) != 1 {
		t.Fatalf("expected one digest, got %d", len(f.digests.sent))
	}
	students := f.digests.sent[0].Students
	if len(students) != 3 {
		t.Fatalf("digest lists %d candidates, want 3", len(students))
	}
	if students[0].Name != "Top" || students[1].Name != "High" || students[2].Name != "Mid" {
		t.Fatalf("top 3 wrong: %+v", students)
	}

	persisted := *f.sink.requests[0].Candidates
	if len(persisted) != 3 {
		t.Fatalf("persisted %d candidates, want 3", len(persisted))
	}
	for _, c := range persisted {
		if c.Name == "Low" {
			t.Fatal("lowest scorer should not be persisted")
		}
	}
}

func TestGetRunResultsBeforeReadyConflicts(t *testing.T) {
	f := newFixture(t, &stubParser{submitID: "pj-1", statuses: []matching.ParseStatus{{Progress: 1}}})

	runID := f.start(t)

	_, err := f.svc.GetRunResults(context.Background(), runID)
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != matching.CodeResultsNotReady {
		t.Fatalf("expected RESULTS_NOT_READY, got %v", err)
	}
}
