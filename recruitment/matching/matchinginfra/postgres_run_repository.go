package matchinginfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/matching"
	"github.com/jmoiron/sqlx"
)

// PostgresRunRepository implements matching.RunRepository using PostgreSQL.
// The ranked result list is stored as a jsonb column, it is only ever read
// and written whole.
type PostgresRunRepository struct {
	db *sqlx.DB
}

func NewPostgresRunRepository(db *sqlx.DB) matching.RunRepository {
	return &PostgresRunRepository{db: db}
}

// Create creates a new match run
func (r *PostgresRunRepository) Create(ctx context.Context, run *matching.Run) error {
	query := `
		INSERT INTO match_runs (
			id, job_id, recruiter_id, status, archive_path, archive_name,
			parse_job_id, result_csv_path, attempt_count, max_attempts,
			progress, error_message, results, created_at, started_at,
			completed_at, failed_at, cancelled_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18
		)
	`

	results, err := marshalResults(run.Results)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(
		ctx,
		query,
		run.ID,
		run.JobID,
		run.RecruiterID,
		run.Status,
		run.ArchivePath,
		run.ArchiveName,
		run.ParseJobID,
		run.ResultCSVPath,
		run.AttemptCount,
		run.MaxAttempts,
		run.Progress,
		run.ErrorMessage,
		results,
		run.CreatedAt,
		run.StartedAt,
		run.CompletedAt,
		run.FailedAt,
		run.CancelledAt,
	)

	return err
}

// GetByID retrieves a run by ID with its stored results
func (r *PostgresRunRepository) GetByID(ctx context.Context, id kernel.RunID) (*matching.Run, error) {
	query := `
		SELECT id, job_id, recruiter_id, status, archive_path, archive_name,
		       parse_job_id, result_csv_path, attempt_count, max_attempts,
		       progress, error_message, results, created_at, started_at,
		       completed_at, failed_at, cancelled_at
		FROM match_runs
		WHERE id = $1
	`

	run, err := scanRun(r.db.QueryRowxContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, matching.ErrRunNotFound().WithDetail("run_id", id.String())
	}
	if err != nil {
		return nil, err
	}

	return run, nil
}

// Update persists the run's full mutable state
func (r *PostgresRunRepository) Update(ctx context.Context, run *matching.Run) error {
	query := `
		UPDATE match_runs
		SET status = $2, parse_job_id = $3, result_csv_path = $4,
		    attempt_count = $5, progress = $6, error_message = $7,
		    results = $8, started_at = $9, completed_at = $10,
		    failed_at = $11, cancelled_at = $12
		WHERE id = $1
	`

	results, err := marshalResults(run.Results)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(
		ctx,
		query,
		run.ID,
		run.Status,
		run.ParseJobID,
		run.ResultCSVPath,
		run.AttemptCount,
		run.Progress,
		run.ErrorMessage,
		results,
		run.StartedAt,
		run.CompletedAt,
		run.FailedAt,
		run.CancelledAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return matching.ErrRunNotFound().WithDetail("run_id", run.ID.String())
	}

	return nil
}

// ListByJob retrieves the runs started for a job, newest first
func (r *PostgresRunRepository) ListByJob(ctx context.Context, jobID kernel.JobID) ([]matching.Run, error) {
	query := `
		SELECT id, job_id, recruiter_id, status, archive_path, archive_name,
		       parse_job_id, result_csv_path, attempt_count, max_attempts,
		       progress, error_message, results, created_at, started_at,
		       completed_at, failed_at, cancelled_at
		FROM match_runs
		WHERE job_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]matching.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

func marshalResults(results []matching.Result) ([]byte, error) {
	if results == nil {
		results = []matching.Result{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("marshal run results: %w", err)
	}
	return data, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*matching.Run, error) {
	var run matching.Run
	var results []byte

	err := row.Scan(
		&run.ID,
		&run.JobID,
		&run.RecruiterID,
		&run.Status,
		&run.ArchivePath,
		&run.ArchiveName,
		&run.ParseJobID,
		&run.ResultCSVPath,
		&run.AttemptCount,
		&run.MaxAttempts,
		&run.Progress,
		&run.ErrorMessage,
		&results,
		&run.CreatedAt,
		&run.StartedAt,
		&run.CompletedAt,
		&run.FailedAt,
		&run.CancelledAt,
	)
	if err != nil {
		return nil, err
	}

	if len(results) > 0 {
		if err := json.Unmarshal(results, &run.Results); err != nil {
			return nil, fmt.Errorf("unmarshal run results: %w", err)
		}
	}

	return &run, nil
}
