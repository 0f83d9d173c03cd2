package recruiter

import (
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

type Recruiter struct {
	ID           kernel.RecruiterID `db:"id" json:"id"`
	Name         kernel.PersonName  `db:"name" json:"name"`
	Email        kernel.Email       `db:"email" json:"email"`
	PasswordHash string             `db:"password_hash" json:"-"`

	// JobIDs is the recruiter's owned job list, newest last. It is derived
	// from the jobs table, so deleting a job removes it without a
	// compensating update.
	JobIDs []kernel.JobID `db:"-" json:"jobs"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// OwnsJob checks membership in the derived job list
func (r *Recruiter) OwnsJob(jobID kernel.JobID) bool {
	for _, id := range r.JobIDs {
		if id == jobID {
			return true
		}
	}
	return false
}

// Summary returns the public fields used in one-level job expansion
func (r *Recruiter) Summary() Summary {
	return Summary{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}

// Summary is the shallow recruiter projection embedded in job listings
type Summary struct {
	ID    kernel.RecruiterID `db:"id" json:"id"`
	Name  kernel.PersonName  `db:"name" json:"name"`
	Email kernel.Email       `db:"email" json:"email"`
}
