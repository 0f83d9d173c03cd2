package recruiterinfra

import (
	"context"
	"database/sql"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/jmoiron/sqlx"
)

type PostgresRecruiterRepository struct {
	db *sqlx.DB
}

func NewPostgresRecruiterRepository(db *sqlx.DB) recruiter.Repository {
	return &PostgresRecruiterRepository{db: db}
}

// Create creates a new recruiter
func (r *PostgresRecruiterRepository) Create(ctx context.Context, rec *recruiter.Recruiter) error {
	query := `
		INSERT INTO recruiters (
			id, name, email, password_hash, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.Name,
		rec.Email,
		rec.PasswordHash,
		rec.CreatedAt,
		rec.UpdatedAt,
	)

	return err
}

// GetByID retrieves a recruiter by ID with its job-id list loaded
func (r *PostgresRecruiterRepository) GetByID(ctx context.Context, id kernel.RecruiterID) (*recruiter.Recruiter, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM recruiters
		WHERE id = $1
	`

	var rec recruiter.Recruiter
	err := r.db.GetContext(ctx, &rec, query, id)
	if err == sql.ErrNoRows {
		return nil, recruiter.ErrRecruiterNotFound()
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadJobIDs(ctx, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// GetByEmail retrieves a recruiter by normalized email
func (r *PostgresRecruiterRepository) GetByEmail(ctx context.Context, email kernel.Email) (*recruiter.Recruiter, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM recruiters
		WHERE email = $1
	`

	var rec recruiter.Recruiter
	err := r.db.GetContext(ctx, &rec, query, email)
	if err == sql.ErrNoRows {
		return nil, recruiter.ErrRecruiterNotFound()
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadJobIDs(ctx, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// Exists checks if a recruiter exists by ID
func (r *PostgresRecruiterRepository) Exists(ctx context.Context, id kernel.RecruiterID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM recruiters WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// ExistsByEmail checks if a recruiter exists with the given email
func (r *PostgresRecruiterRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM recruiters WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

// loadJobIDs fills the derived job list, oldest first
func (r *PostgresRecruiterRepository) loadJobIDs(ctx context.Context, rec *recruiter.Recruiter) error {
	query := `
		SELECT id FROM jobs
		WHERE recruiter_id = $1
		ORDER BY created_at ASC
	`

	jobIDs := make([]kernel.JobID, 0)
	if err := r.db.SelectContext(ctx, &jobIDs, query, rec.ID); err != nil {
		return err
	}

	rec.JobIDs = jobIDs
	return nil
}
