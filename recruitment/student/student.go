package student

import (
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

// Student is a candidate profile. Records are created either directly by a
// consultant or implicitly when a matching run submits an unknown email.
type Student struct {
	ID      kernel.StudentID  `db:"id" json:"id"`
	Name    kernel.PersonName `db:"name" json:"name"`
	Email   kernel.Email      `db:"email" json:"email"`
	Resume  kernel.ResumeRef  `db:"resume" json:"resume"`
	Summary string            `db:"summary" json:"summary,omitempty"`
	Skills  []kernel.Skill    `db:"-" json:"skills"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
