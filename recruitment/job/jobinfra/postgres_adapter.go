package jobinfra

import (
	"context"
	"database/sql"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) job.Repository {
	return &PostgresJobRepository{
		db: db,
	}
}

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	query := `
		INSERT INTO jobs (
			id, title, description, location, recruiter_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		j.ID,
		j.Title,
		j.Description,
		j.Location,
		j.RecruiterID,
		j.CreatedAt,
		j.UpdatedAt,
	)

	return err
}

// GetByID retrieves a job by ID with its applicant set loaded
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT id, title, description, location, recruiter_id, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`

	var j job.Job
	err := r.db.GetContext(ctx, &j, query, id)
	if err == sql.ErrNoRows {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadApplicantIDs(ctx, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

// Update persists the mutable posting fields of an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, j *job.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, location = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, j.ID, j.Title, j.Description, j.Location, j.UpdatedAt)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", j.ID.String())
	}

	return nil
}

// Delete deletes a job by ID. The applicant join rows go with it via the
// foreign key cascade, the student records themselves stay.
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	return nil
}

// ListAll retrieves every job with its owning recruiter's summary resolved
func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.WithRecruiter, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.location, j.recruiter_id,
			j.created_at, j.updated_at,
			r.id AS rec_id, r.name AS rec_name, r.email AS rec_email
		FROM jobs j
		JOIN recruiters r ON r.id = j.recruiter_id
		ORDER BY j.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]job.WithRecruiter, 0)
	for rows.Next() {
		var jw job.WithRecruiter
		err := rows.Scan(
			&jw.ID,
			&jw.Title,
			&jw.Description,
			&jw.Location,
			&jw.RecruiterID,
			&jw.CreatedAt,
			&jw.UpdatedAt,
			&jw.Recruiter.ID,
			&jw.Recruiter.Name,
			&jw.Recruiter.Email,
		)
		if err != nil {
			return nil, err
		}

		if err := r.loadApplicantIDs(ctx, &jw.Job); err != nil {
			return nil, err
		}

		jobs = append(jobs, jw)
	}

	return jobs, rows.Err()
}

// ListByRecruiter retrieves a recruiter's jobs with applicant sets loaded
func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID kernel.RecruiterID) ([]job.Job, error) {
	query := `
		SELECT id, title, description, location, recruiter_id, created_at, updated_at
		FROM jobs
		WHERE recruiter_id = $1
		ORDER BY created_at ASC
	`

	jobs := make([]job.Job, 0)
	if err := r.db.SelectContext(ctx, &jobs, query, recruiterID); err != nil {
		return nil, err
	}

	for i := range jobs {
		if err := r.loadApplicantIDs(ctx, &jobs[i]); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

// AddApplicants attaches student ids to the job's applicant set. The
// conflict clause gives the set its dedup semantics, repeat adds are
// absorbed in one statement.
func (r *PostgresJobRepository) AddApplicants(ctx context.Context, jobID kernel.JobID, studentIDs []kernel.StudentID) error {
	if len(studentIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO job_applicants (job_id, student_id)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (job_id, student_id) DO NOTHING
	`

	raw := make([]string, len(studentIDs))
	for i, id := range studentIDs {
		raw[i] = id.String()
	}

	_, err := r.db.ExecContext(ctx, query, jobID, pq.Array(raw))
	return err
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// loadApplicantIDs fills the applicant set from the join table
func (r *PostgresJobRepository) loadApplicantIDs(ctx context.Context, j *job.Job) error {
	query := `
		SELECT student_id FROM job_applicants
		WHERE job_id = $1
	`

	ids := make([]kernel.StudentID, 0)
	if err := r.db.SelectContext(ctx, &ids, query, j.ID); err != nil {
		return err
	}

	j.ApplicantIDs = ids
	return nil
}
