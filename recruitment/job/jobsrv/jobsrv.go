package jobsrv

import (
	"context"
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/job"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/ajcportal/careerhub/recruitment/student"
	"github.com/google/uuid"
)

// JobService provides business operations for jobs and their applicant sets
type JobService struct {
	jobRepo       job.Repository
	recruiterRepo recruiter.Repository
	studentRepo   student.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	recruiterRepo recruiter.Repository,
	studentRepo student.Repository,
) *JobService {
	return &JobService{
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
		studentRepo:   studentRepo,
	}
}

// CreateJob persists a new posting under the acting recruiter. Recruiter
// existence is validated up front so a bad id never leaves an orphaned job.
func (s *JobService) CreateJob(ctx context.Context, actingID kernel.RecruiterID, req job.CreateJobRequest) (*job.Job, error) {
	if req.Title == "" || req.Description == "" {
		return nil, job.ErrInvalidRequest().
			WithDetail("reason", "title and description are required")
	}

	exists, err := s.recruiterRepo.Exists(ctx, actingID)
	if err != nil {
		return nil, job.ErrCreateFailed().WithDetail("cause", err.Error())
	}
	if !exists {
		return nil, recruiter.ErrRecruiterNotFound().WithDetail("recruiter_id", actingID.String())
	}

	now := time.Now()
	newJob := &job.Job{
		ID:           kernel.NewJobID(uuid.NewString()),
		Title:        kernel.JobTitle(req.Title),
		Description:  kernel.JobDescription(req.Description),
		Location:     kernel.JobLocation(req.Location),
		RecruiterID:  actingID,
		ApplicantIDs: []kernel.StudentID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, job.ErrCreateFailed().WithDetail("cause", err.Error())
	}

	logx.Infof("job created: %s by recruiter %s", newJob.ID, actingID)
	return newJob, nil
}

// UpdateJob replaces the mutable fields of an owned posting. Existence is
// checked before ownership so a missing job reports not-found, never
// forbidden.
func (s *JobService) UpdateJob(ctx context.Context, actingID kernel.RecruiterID, req job.UpdateJobRequest) (*job.Job, error) {
	if req.JobID == "" || req.Title == "" || req.Description == "" {
		return nil, job.ErrInvalidRequest().
			WithDetail("reason", "jobId, title and description are required")
	}

	existing, err := s.jobRepo.GetByID(ctx, kernel.NewJobID(req.JobID))
	if err != nil {
		return nil, err
	}

	if !existing.IsOwnedBy(actingID) {
		return nil, job.ErrNotOwner().WithDetail("job_id", req.JobID)
	}

	existing.UpdateDetails(
		kernel.JobTitle(req.Title),
		kernel.JobDescription(req.Description),
		kernel.JobLocation(req.Location),
	)

	if err := s.jobRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteJob removes an owned posting, same ordering of checks as update
func (s *JobService) DeleteJob(ctx context.Context, actingID kernel.RecruiterID, req job.DeleteJobRequest) error {
	if req.JobID == "" {
		return job.ErrInvalidRequest().WithDetail("jobId", "missing or empty")
	}

	existing, err := s.jobRepo.GetByID(ctx, kernel.NewJobID(req.JobID))
	if err != nil {
		return err
	}

	if !existing.IsOwnedBy(actingID) {
		return job.ErrNotOwner().WithDetail("job_id", req.JobID)
	}

	if err := s.jobRepo.Delete(ctx, existing.ID); err != nil {
		return err
	}

	logx.Infof("job deleted: %s by recruiter %s", existing.ID, actingID)
	return nil
}

// ListAllJobs returns every posting with its recruiter summary resolved
func (s *JobService) ListAllJobs(ctx context.Context) ([]job.WithRecruiter, error) {
	return s.jobRepo.ListAll(ctx)
}

// GetRecruiterWithJobs returns the recruiter profile with each owned job
// and each job's applicants resolved to full student records
func (s *JobService) GetRecruiterWithJobs(ctx context.Context, id kernel.RecruiterID) (*job.RecruiterProfile, error) {
	if id.IsEmpty() {
		return nil, job.ErrInvalidRequest().WithDetail("recruiterId", "missing or empty")
	}

	rec, err := s.recruiterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByRecruiter(ctx, rec.ID)
	if err != nil {
		return nil, err
	}

	profile := &job.RecruiterProfile{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Jobs:      make([]job.WithApplicants, 0, len(jobs)),
		CreatedAt: rec.CreatedAt,
	}

	for _, j := range jobs {
		resolved, err := s.resolveApplicants(ctx, j)
		if err != nil {
			return nil, err
		}
		profile.Jobs = append(profile.Jobs, *resolved)
	}

	return profile, nil
}

// AddStudentsToJob attaches existing students to a job's applicant set.
// Every submitted id must resolve, otherwise the whole call fails and the
// missing ids are reported.
func (s *JobService) AddStudentsToJob(ctx context.Context, req job.AddStudentsRequest) (*job.AssociationResponse, error) {
	if req.JobID == "" || req.StudentIDs == nil {
		return nil, job.ErrInvalidRequest().
			WithDetail("reason", "jobId and a studentIds array are required")
	}

	target, err := s.jobRepo.GetByID(ctx, kernel.NewJobID(req.JobID))
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.StudentID, len(*req.StudentIDs))
	for i, raw := range *req.StudentIDs {
		ids[i] = kernel.NewStudentID(raw)
	}

	found, err := s.studentRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, job.ErrStudentsNotFound().WithDetail("missingStudents", missing)
	}

	if err := s.jobRepo.AddApplicants(ctx, target.ID, ids); err != nil {
		return nil, err
	}

	return s.associationResult(ctx, target.ID, len(ids), "Students added to job")
}

// ProcessCandidates attaches externally-supplied candidate records to a
// job, reusing a student with the same email over creating a duplicate.
// AddedCount reports the submitted ids, the set absorbs repeats.
func (s *JobService) ProcessCandidates(ctx context.Context, req job.ProcessCandidatesRequest) (*job.AssociationResponse, error) {
	if req.JobID == "" || req.Candidates == nil {
		return nil, job.ErrInvalidRequest().
			WithDetail("reason", "jobId and a candidates array are required")
	}

	target, err := s.jobRepo.GetByID(ctx, kernel.NewJobID(req.JobID))
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.StudentID, 0, len(*req.Candidates))
	for _, c := range *req.Candidates {
		stu, err := s.findOrCreateStudent(ctx, c)
		if err != nil {
			return nil, err
		}
		ids = append(ids, stu.ID)
	}

	if err := s.jobRepo.AddApplicants(ctx, target.ID, ids); err != nil {
		return nil, err
	}

	return s.associationResult(ctx, target.ID, len(ids), "Candidates processed")
}

// findOrCreateStudent resolves a candidate record to a student, matching
// by normalized email first
func (s *JobService) findOrCreateStudent(ctx context.Context, c job.CandidateInput) (*student.Student, error) {
	email := kernel.NewEmail(c.Email)
	if email.IsEmpty() {
		return nil, job.ErrInvalidRequest().WithDetail("reason", "candidate email is required")
	}

	existing, err := s.studentRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}

	skills := make([]kernel.Skill, len(c.Skills))
	for i, sk := range c.Skills {
		skills[i] = kernel.Skill(sk)
	}

	newStudent := &student.Student{
		ID:        kernel.NewStudentID(uuid.NewString()),
		Name:      kernel.PersonName(c.Name),
		Email:     email,
		Resume:    kernel.ResumeRef(c.Resume),
		Summary:   c.Summary,
		Skills:    skills,
		CreatedAt: time.Now(),
	}

	if err := s.studentRepo.Create(ctx, newStudent); err != nil {
		return nil, err
	}

	logx.Debugf("student created from candidate data: %s", newStudent.ID)
	return newStudent, nil
}

// associationResult reloads the job and resolves its applicant set
func (s *JobService) associationResult(ctx context.Context, jobID kernel.JobID, addedCount int, message string) (*job.AssociationResponse, error) {
	reloaded, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveApplicants(ctx, *reloaded)
	if err != nil {
		return nil, err
	}

	return &job.AssociationResponse{
		Message:    message,
		Job:        resolved,
		AddedCount: addedCount,
		Success:    true,
	}, nil
}

func (s *JobService) resolveApplicants(ctx context.Context, j job.Job) (*job.WithApplicants, error) {
	applicants, err := s.studentRepo.GetByIDs(ctx, j.ApplicantIDs)
	if err != nil {
		return nil, err
	}

	return &job.WithApplicants{
		Job:        j,
		Applicants: applicants,
	}, nil
}

// missingIDs reports the requested ids not present in the found records
func missingIDs(requested []kernel.StudentID, found []student.Student) []string {
	present := make(map[kernel.StudentID]struct{}, len(found))
	for _, stu := range found {
		present[stu.ID] = struct{}{}
	}

	missing := make([]string, 0)
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	return missing
}
