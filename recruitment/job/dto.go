package job

import (
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/ajcportal/careerhub/recruitment/student"
)

// CreateJobRequest - DTO for creating a new job. The recruiterId field is
// kept for SPA compatibility and must match the authenticated recruiter.
type CreateJobRequest struct {
	RecruiterID string `json:"recruiterId"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	RecruiterID string `json:"recruiterId"`
	JobID       string `json:"jobId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
}

// DeleteJobRequest - DTO for deleting a job
type DeleteJobRequest struct {
	RecruiterID string `json:"recruiterId"`
	JobID       string `json:"jobId" validate:"required"`
}

// GetRecruiterRequest - DTO for the two-level recruiter profile lookup
type GetRecruiterRequest struct {
	RecruiterID string `json:"recruiterId" validate:"required"`
}

// AddStudentsRequest - DTO for attaching existing students to a job
type AddStudentsRequest struct {
	JobID      string    `json:"jobId" validate:"required"`
	StudentIDs *[]string `json:"studentIds" validate:"required"`
}

// CandidateInput is one externally-supplied candidate record, typically
// produced by a matching run
type CandidateInput struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Resume  string   `json:"resume"`
	Summary string   `json:"summary"`
	Skills  []string `json:"skills"`
}

// ProcessCandidatesRequest - DTO for find-or-create candidate association
type ProcessCandidatesRequest struct {
	JobID      string            `json:"jobId" validate:"required"`
	Candidates *[]CandidateInput `json:"candidates" validate:"required"`
}

// WithRecruiter is the one-level expansion used by the public job listing
type WithRecruiter struct {
	Job
	Recruiter recruiter.Summary `json:"recruiter"`
}

// WithApplicants is the job with its applicant set resolved to full
// student records
type WithApplicants struct {
	Job
	Applicants []student.Student `json:"applicants"`
}

// RecruiterProfile is the two-level expansion: the recruiter, each owned
// job, and each job's applicants as full student records
type RecruiterProfile struct {
	ID        kernel.RecruiterID `json:"id"`
	Name      kernel.PersonName  `json:"name"`
	Email     kernel.Email       `json:"email"`
	Jobs      []WithApplicants   `json:"jobs"`
	CreatedAt time.Time          `json:"created_at"`
}

// MutationResponse wraps a single job mutation result
type MutationResponse struct {
	Message string `json:"message"`
	Job     *Job   `json:"job,omitempty"`
	Success bool   `json:"success"`
}

// AssociationResponse is returned by the candidate-association operations.
// AddedCount reports how many ids were submitted for addition, which can
// exceed the net growth of the set.
type AssociationResponse struct {
	Message    string          `json:"message"`
	Job        *WithApplicants `json:"job"`
	AddedCount int             `json:"addedCount"`
	Success    bool            `json:"success"`
}
