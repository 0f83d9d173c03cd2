package recruitersrv

import (
	"context"
	"errors"
	"testing"

	"github.com/ajcportal/careerhub/pkg/errx"
	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
)

type stubRecruiterRepo struct {
	byEmail map[kernel.Email]*recruiter.Recruiter
	created []*recruiter.Recruiter
}

func newStubRecruiterRepo() *stubRecruiterRepo {
	return &stubRecruiterRepo{byEmail: make(map[kernel.Email]*recruiter.Recruiter)}
}

func (s *stubRecruiterRepo) Create(_ context.Context, rec *recruiter.Recruiter) error {
	s.byEmail[rec.Email] = rec
	s.created = append(s.created, rec)
	return nil
}

func (s *stubRecruiterRepo) GetByID(_ context.Context, id kernel.RecruiterID) (*recruiter.Recruiter, error) {
	for _, rec := range s.byEmail {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, recruiter.ErrRecruiterNotFound()
}

func (s *stubRecruiterRepo) GetByEmail(_ context.Context, email kernel.Email) (*recruiter.Recruiter, error) {
	rec, ok := s.byEmail[email]
	if !ok {
		return nil, recruiter.ErrRecruiterNotFound()
	}
	return rec, nil
}

func (s *stubRecruiterRepo) Exists(_ context.Context, id kernel.RecruiterID) (bool, error) {
	_, err := s.GetByID(context.Background(), id)
	return err == nil, nil
}

func (s *stubRecruiterRepo) ExistsByEmail(_ context.Context, email kernel.Email) (bool, error) {
	_, ok := s.byEmail[email]
	return ok, nil
}

type stubPasswordService struct{}

func (stubPasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubPasswordService) Verify(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubTokenService struct{}

func (stubTokenService) GenerateAccessToken(id kernel.RecruiterID, email kernel.Email) (string, error) {
	return "token-for-" + id.String(), nil
}

func (stubTokenService) ValidateAccessToken(token string) (*recruiter.Claims, error) {
	return nil, recruiter.ErrTokenInvalid()
}

func newService(repo *stubRecruiterRepo) *RecruiterService {
	return NewRecruiterService(repo, stubPasswordService{}, stubTokenService{})
}

func TestSignupStoresHashedPassword(t *testing.T) {
	repo := newStubRecruiterRepo()
	svc := newService(repo)

	rec, err := svc.Signup(context.Background(), recruiter.SignupRequest{
		Name:     "Dana",
		Email:    "Dana@Example.COM",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if rec.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in the clear")
	}
	if rec.Email != "dana@example.com" {
		t.Fatalf("email not normalized: %q", rec.Email)
	}
	if rec.ID.IsEmpty() {
		t.Fatal("expected generated recruiter id")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one create, got %d", len(repo.created))
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	repo := newStubRecruiterRepo()
	svc := newService(repo)

	req := recruiter.SignupRequest{Name: "Dana", Email: "dana@example.com", Password: "s3cret-pass"}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(context.Background(), req)
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != recruiter.CodeEmailAlreadyUsed {
		t.Fatalf("expected EMAIL_ALREADY_USED, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("duplicate signup created a second account")
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	svc := newService(newStubRecruiterRepo())

	_, err := svc.Signup(context.Background(), recruiter.SignupRequest{Email: "dana@example.com"})
	var e *errx.Error
	if !errors.As(err, &e) || e.Type != errx.TypeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newStubRecruiterRepo()
	svc := newService(repo)

	rec, err := svc.Signup(context.Background(), recruiter.SignupRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	got, token, err := svc.Login(context.Background(), recruiter.LoginRequest{
		Email:    "DANA@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("logged in as %s, want %s", got.ID, rec.ID)
	}
	if token != "token-for-"+rec.ID.String() {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	repo := newStubRecruiterRepo()
	svc := newService(repo)

	if _, err := svc.Signup(context.Background(), recruiter.SignupRequest{
		Name: "Dana", Email: "dana@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), recruiter.LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong",
	})
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != recruiter.CodeInvalidCredentials {
		t.Fatalf("expected INVALID_CREDENTIALS, got %v", err)
	}
}

func TestLoginUnknownEmailNotFound(t *testing.T) {
	svc := newService(newStubRecruiterRepo())

	_, _, err := svc.Login(context.Background(), recruiter.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != recruiter.CodeRecruiterNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
