package studentsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/ajcportal/careerhub/pkg/errx"
	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/student"
)

type stubStudentRepo struct {
	byID    map[kernel.StudentID]*student.Student
	byEmail map[kernel.Email]*student.Student
	creates int
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{
		byID:    make(map[kernel.StudentID]*student.Student),
		byEmail: make(map[kernel.Email]*student.Student),
	}
}

func (s *stubStudentRepo) Create(_ context.Context, stu *student.Student) error {
	if _, ok := s.byEmail[stu.Email]; ok {
		return student.ErrEmailInUse()
	}
	s.byID[stu.ID] = stu
	s.byEmail[stu.Email] = stu
	s.creates++
	return nil
}

func (s *stubStudentRepo) GetByID(_ context.Context, id kernel.StudentID) (*student.Student, error) {
	stu, ok := s.byID[id]
	if !ok {
		return nil, student.ErrStudentNotFound()
	}
	return stu, nil
}

func (s *stubStudentRepo) GetByEmail(_ context.Context, email kernel.Email) (*student.Student, error) {
	stu, ok := s.byEmail[email]
	if !ok {
		return nil, student.ErrStudentNotFound()
	}
	return stu, nil
}

func (s *stubStudentRepo) GetByIDs(_ context.Context, ids []kernel.StudentID) ([]student.Student, error) {
	out := make([]student.Student, 0, len(ids))
	for _, id := range ids {
		if stu, ok := s.byID[id]; ok {
			out = append(out, *stu)
		}
	}
	return out, nil
}

func (s *stubStudentRepo) List(_ context.Context) ([]student.Student, error) {
	out := make([]student.Student, 0, len(s.byID))
	for _, stu := range s.byID {
		out = append(out, *stu)
	}
	return out, nil
}

func (s *stubStudentRepo) Delete(_ context.Context, id kernel.StudentID) error {
	stu, ok := s.byID[id]
	if !ok {
		return student.ErrStudentNotFound()
	}
	delete(s.byID, id)
	delete(s.byEmail, stu.Email)
	return nil
}

func TestAddStudentNormalizesEmail(t *testing.T) {
	repo := newStubStudentRepo()
	svc := NewStudentService(repo)

	stu, err := svc.AddStudent(context.Background(), student.AddStudentRequest{
		Name:   "Alice",
		Email:  "Alice@Example.COM",
		Resume: "resumes/alice.pdf",
		Skills: []string{"go", "sql"},
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if stu.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", stu.Email)
	}
	if len(stu.Skills) != 2 {
		t.Fatalf("skills not carried over: %v", stu.Skills)
	}
}

func TestAddStudentRequiresResume(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo())

	_, err := svc.AddStudent(context.Background(), student.AddStudentRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	var e *errx.Error
	if !errors.As(err, &e) || e.Type != errx.TypeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFindOrCreateReusesExistingEmail(t *testing.T) {
	repo := newStubStudentRepo()
	svc := NewStudentService(repo)

	first, err := svc.AddStudent(context.Background(), student.AddStudentRequest{
		Name: "Alice", Email: "alice@example.com", Resume: "a.pdf",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	again, err := svc.FindOrCreateByEmail(context.Background(), student.AddStudentRequest{
		Name: "Alice Other", Email: "ALICE@example.com", Resume: "other.pdf",
	})
	if err != nil {
		t.Fatalf("find-or-create failed: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("created a duplicate: %s vs %s", again.ID, first.ID)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one create, got %d", repo.creates)
	}
}

func TestDeleteMissingStudentNotFound(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo())

	err := svc.DeleteStudent(context.Background(), student.DeleteStudentRequest{StudentID: "missing"})
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != student.CodeStudentNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
