package student

import (
	"context"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

type Repository interface {
	// Create creates a new student
	Create(ctx context.Context, stu *Student) error

	// GetByID retrieves a student by ID
	GetByID(ctx context.Context, id kernel.StudentID) (*Student, error)

	// GetByEmail retrieves a student by normalized email
	GetByEmail(ctx context.Context, email kernel.Email) (*Student, error)

	// GetByIDs retrieves the students matching the given ids, in no
	// particular order. Missing ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []kernel.StudentID) ([]Student, error)

	// List returns all students, unfiltered
	List(ctx context.Context) ([]Student, error)

	// Delete removes a student by ID
	Delete(ctx context.Context, id kernel.StudentID) error
}
