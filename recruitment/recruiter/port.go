package recruiter

import (
	"context"
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
)

type Repository interface {
	// Create creates a new recruiter
	Create(ctx context.Context, rec *Recruiter) error

	// GetByID retrieves a recruiter by ID with its job-id list loaded
	GetByID(ctx context.Context, id kernel.RecruiterID) (*Recruiter, error)

	// GetByEmail retrieves a recruiter by normalized email
	GetByEmail(ctx context.Context, email kernel.Email) (*Recruiter, error)

	// Exists checks if a recruiter exists by ID
	Exists(ctx context.Context, id kernel.RecruiterID) (bool, error)

	// ExistsByEmail checks if a recruiter exists with the given email
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}

// PasswordService hides the hashing scheme from the domain
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenService issues and validates recruiter access tokens
type TokenService interface {
	GenerateAccessToken(id kernel.RecruiterID, email kernel.Email) (string, error)
	ValidateAccessToken(token string) (*Claims, error)
}

// Claims are the validated contents of an access token
type Claims struct {
	RecruiterID kernel.RecruiterID
	Email       kernel.Email
	ExpiresAt   time.Time
}
