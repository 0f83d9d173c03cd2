package job

import (
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

// Job is a posting owned by exactly one recruiter. Its applicant collection
// has set semantics: adding an already-attached student is a no-op.
type Job struct {
	ID          kernel.JobID          `db:"id" json:"id"`
	Title       kernel.JobTitle       `db:"title" json:"title"`
	Description kernel.JobDescription `db:"description" json:"description"`
	Location    kernel.JobLocation    `db:"location" json:"location"`
	RecruiterID kernel.RecruiterID    `db:"recruiter_id" json:"recruiterId"`

	// ApplicantIDs is loaded from the join table, not a jobs column
	ApplicantIDs []kernel.StudentID `db:"-" json:"applicants"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsOwnedBy checks whether the given recruiter owns this job
func (j *Job) IsOwnedBy(recruiterID kernel.RecruiterID) bool {
	return j.RecruiterID == recruiterID
}

// UpdateDetails replaces the three mutable posting fields
func (j *Job) UpdateDetails(title kernel.JobTitle, description kernel.JobDescription, location kernel.JobLocation) {
	j.Title = title
	j.Description = description
	j.Location = location
	j.UpdatedAt = time.Now()
}

// HasApplicant checks membership in the applicant set
func (j *Job) HasApplicant(studentID kernel.StudentID) bool {
	for _, id := range j.ApplicantIDs {
		if id == studentID {
			return true
		}
	}
	return false
}
