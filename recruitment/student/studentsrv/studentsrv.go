package studentsrv

import (
	"context"
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/student"
	"github.com/google/uuid"
)

// StudentService provides business operations for candidate profiles
type StudentService struct {
	studentRepo student.Repository
}

// NewStudentService creates a new instance of the student service
func NewStudentService(studentRepo student.Repository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// AddStudent creates a new candidate profile. A duplicate email surfaces as
// a conflict from the repository's uniqueness constraint.
func (s *StudentService) AddStudent(ctx context.Context, req student.AddStudentRequest) (*student.Student, error) {
	if req.Name == "" || req.Email == "" || req.Resume == "" {
		return nil, student.ErrInvalidRequest().
			WithDetail("reason", "name, email and resume are required")
	}

	email := kernel.NewEmail(req.Email)
	if !email.IsValid() {
		return nil, student.ErrInvalidRequest().WithDetail("email", req.Email)
	}

	skills := make([]kernel.Skill, len(req.Skills))
	for i, sk := range req.Skills {
		skills[i] = kernel.Skill(sk)
	}

	newStudent := &student.Student{
		ID:        kernel.NewStudentID(uuid.NewString()),
		Name:      kernel.PersonName(req.Name),
		Email:     email,
		Resume:    kernel.ResumeRef(req.Resume),
		Summary:   req.Summary,
		Skills:    skills,
		CreatedAt: time.Now(),
	}

	if err := s.studentRepo.Create(ctx, newStudent); err != nil {
		return nil, err
	}

	logx.Debugf("student created: %s", newStudent.ID)
	return newStudent, nil
}

// FindOrCreateByEmail reuses an existing profile with the same email or
// creates one from the supplied fields. Used by candidate association so a
// matching run never duplicates a known candidate.
func (s *StudentService) FindOrCreateByEmail(ctx context.Context, req student.AddStudentRequest) (*student.Student, error) {
	email := kernel.NewEmail(req.Email)
	if email.IsEmpty() {
		return nil, student.ErrInvalidRequest().WithDetail("reason", "candidate email is required")
	}

	existing, err := s.studentRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}

	return s.AddStudent(ctx, req)
}

// DeleteStudent removes a candidate profile by ID
func (s *StudentService) DeleteStudent(ctx context.Context, req student.DeleteStudentRequest) error {
	id := kernel.NewStudentID(req.StudentID)
	if id.IsEmpty() {
		return student.ErrInvalidRequest().WithDetail("studentId", "missing or empty")
	}

	return s.studentRepo.Delete(ctx, id)
}

// ListStudents returns every candidate profile
func (s *StudentService) ListStudents(ctx context.Context) ([]student.Student, error) {
	return s.studentRepo.List(ctx)
}
