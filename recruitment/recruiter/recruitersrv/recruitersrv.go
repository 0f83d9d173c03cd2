package recruitersrv

import (
	"context"
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/google/uuid"
)

// RecruiterService provides signup and login for recruiters
type RecruiterService struct {
	recruiterRepo recruiter.Repository
	passwords     recruiter.PasswordService
	tokens        recruiter.TokenService
}

// NewRecruiterService creates a new instance of the recruiter service
func NewRecruiterService(
	recruiterRepo recruiter.Repository,
	passwords recruiter.PasswordService,
	tokens recruiter.TokenService,
) *RecruiterService {
	return &RecruiterService{
		recruiterRepo: recruiterRepo,
		passwords:     passwords,
		tokens:        tokens,
	}
}

// Signup registers a new recruiter account
func (s *RecruiterService) Signup(ctx context.Context, req recruiter.SignupRequest) (*recruiter.Recruiter, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, recruiter.ErrInvalidRequest().
			WithDetail("reason", "name, email and password are required")
	}

	email := kernel.NewEmail(req.Email)
	if !email.IsValid() {
		return nil, recruiter.ErrInvalidRequest().
			WithDetail("email", req.Email)
	}

	// Uniqueness check on the normalized email
	exists, err := s.recruiterRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, recruiter.ErrSignupFailed().WithDetail("cause", err.Error())
	}
	if exists {
		return nil, recruiter.ErrEmailAlreadyUsed().WithDetail("email", email.String())
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, recruiter.ErrPasswordHashFailure()
	}

	now := time.Now()
	newRecruiter := &recruiter.Recruiter{
		ID:           kernel.NewRecruiterID(uuid.NewString()),
		Name:         kernel.PersonName(req.Name),
		Email:        email,
		PasswordHash: hash,
		JobIDs:       []kernel.JobID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.recruiterRepo.Create(ctx, newRecruiter); err != nil {
		return nil, recruiter.ErrSignupFailed().WithDetail("cause", err.Error())
	}

	logx.Infof("recruiter registered: %s", newRecruiter.ID)
	return newRecruiter, nil
}

// Login authenticates a recruiter and issues an access token. The returned
// recruiter carries its derived job list so the client can render the
// dashboard without a second request.
func (s *RecruiterService) Login(ctx context.Context, req recruiter.LoginRequest) (*recruiter.Recruiter, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", recruiter.ErrInvalidRequest().
			WithDetail("reason", "email and password are required")
	}

	email := kernel.NewEmail(req.Email)
	rec, err := s.recruiterRepo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email is reported distinctly from a wrong password
		return nil, "", err
	}

	if err := s.passwords.Verify(rec.PasswordHash, req.Password); err != nil {
		return nil, "", recruiter.ErrInvalidCredentials()
	}

	token, err := s.tokens.GenerateAccessToken(rec.ID, rec.Email)
	if err != nil {
		return nil, "", recruiter.ErrInvalidCredentials().WithDetail("cause", err.Error())
	}

	logx.Debugf("recruiter logged in: %s", rec.ID)
	return rec, token, nil
}

// GetRecruiter retrieves a recruiter by ID
func (s *RecruiterService) GetRecruiter(ctx context.Context, id kernel.RecruiterID) (*recruiter.Recruiter, error) {
	if id.IsEmpty() {
		return nil, recruiter.ErrInvalidRequest().WithDetail("recruiter_id", "missing or empty")
	}
	return s.recruiterRepo.GetByID(ctx, id)
}
