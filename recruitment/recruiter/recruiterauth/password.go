package recruiterauth

import (
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordService implements recruiter.PasswordService with bcrypt.
// Passwords are never stored or compared in the clear.
type BcryptPasswordService struct {
	cost int
}

func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{cost: bcrypt.DefaultCost}
}

func (s *BcryptPasswordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptPasswordService) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var _ recruiter.PasswordService = (*BcryptPasswordService)(nil)
