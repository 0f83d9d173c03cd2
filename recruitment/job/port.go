package job

import (
	"context"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// GetByID retrieves a job by ID with its applicant set loaded
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Update persists the mutable posting fields of an existing job
	Update(ctx context.Context, job *Job) error

	// Delete deletes a job by ID, detaching its applicant set
	Delete(ctx context.Context, id kernel.JobID) error

	// ListAll retrieves every job with its owning recruiter's summary
	// resolved, unfiltered and unpaginated
	ListAll(ctx context.Context) ([]WithRecruiter, error)

	// ListByRecruiter retrieves a recruiter's jobs with applicant sets
	// loaded, oldest first
	ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]Job, error)

	// AddApplicants attaches student ids to the job's applicant set.
	// Already-attached ids are absorbed, the set never holds duplicates.
	AddApplicants(ctx context.Context, jobID kernel.JobID, studentIDs []kernel.StudentID) error

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)
}
