package studentinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/student"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique constraint breach
const uniqueViolation = "23505"

type PostgresStudentRepository struct {
	db *sqlx.DB
}

func NewPostgresStudentRepository(db *sqlx.DB) student.Repository {
	return &PostgresStudentRepository{db: db}
}

// Create creates a new student
func (r *PostgresStudentRepository) Create(ctx context.Context, stu *student.Student) error {
	query := `
		INSERT INTO students (
			id, name, email, resume, summary, skills, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	skills := make([]string, len(stu.Skills))
	for i, s := range stu.Skills {
		skills[i] = string(s)
	}

	_, err := r.db.ExecContext(
		ctx,
		query,
		stu.ID,
		stu.Name,
		stu.Email,
		stu.Resume,
		stu.Summary,
		pq.Array(skills),
		stu.CreatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return student.ErrEmailInUse().WithDetail("email", stu.Email.String())
	}

	return err
}

// GetByID retrieves a student by ID
func (r *PostgresStudentRepository) GetByID(ctx context.Context, id kernel.StudentID) (*student.Student, error) {
	query := `
		SELECT id, name, email, resume, summary, skills, created_at
		FROM students
		WHERE id = $1
	`

	row := r.db.QueryRowxContext(ctx, query, id)
	stu, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, student.ErrStudentNotFound().WithDetail("student_id", id.String())
	}
	if err != nil {
		return nil, err
	}

	return stu, nil
}

// GetByEmail retrieves a student by normalized email
func (r *PostgresStudentRepository) GetByEmail(ctx context.Context, email kernel.Email) (*student.Student, error) {
	query := `
		SELECT id, name, email, resume, summary, skills, created_at
		FROM students
		WHERE email = $1
	`

	row := r.db.QueryRowxContext(ctx, query, email)
	stu, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, student.ErrStudentNotFound().WithDetail("email", email.String())
	}
	if err != nil {
		return nil, err
	}

	return stu, nil
}

// GetByIDs retrieves the students matching the given ids
func (r *PostgresStudentRepository) GetByIDs(ctx context.Context, ids []kernel.StudentID) ([]student.Student, error) {
	if len(ids) == 0 {
		return []student.Student{}, nil
	}

	query := `
		SELECT id, name, email, resume, summary, skills, created_at
		FROM students
		WHERE id = ANY($1)
		ORDER BY created_at ASC
	`

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	return r.queryStudents(ctx, query, pq.Array(raw))
}

// List returns all students, unfiltered
func (r *PostgresStudentRepository) List(ctx context.Context) ([]student.Student, error) {
	query := `
		SELECT id, name, email, resume, summary, skills, created_at
		FROM students
		ORDER BY created_at ASC
	`

	return r.queryStudents(ctx, query)
}

// Delete removes a student by ID
func (r *PostgresStudentRepository) Delete(ctx context.Context, id kernel.StudentID) error {
	query := `DELETE FROM students WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return student.ErrStudentNotFound().WithDetail("student_id", id.String())
	}

	return nil
}

func (r *PostgresStudentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]student.Student, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]student.Student, 0)
	for rows.Next() {
		stu, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *stu)
	}

	return students, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent reads one student row, expanding the text[] skills column
func scanStudent(row rowScanner) (*student.Student, error) {
	var stu student.Student
	var skills pq.StringArray

	err := row.Scan(
		&stu.ID,
		&stu.Name,
		&stu.Email,
		&stu.Resume,
		&stu.Summary,
		&skills,
		&stu.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	stu.Skills = make([]kernel.Skill, len(skills))
	for i, s := range skills {
		stu.Skills[i] = kernel.Skill(s)
	}

	return &stu, nil
}
