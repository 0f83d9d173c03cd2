package recruiterauth

import (
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements recruiter.TokenService with HMAC-signed JWTs
type JWTTokenService struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
}

func NewJWTTokenService(secretKey string, ttl time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		issuer:    issuer,
	}
}

// GenerateAccessToken issues a signed, expiring token for the recruiter
func (s *JWTTokenService) GenerateAccessToken(id kernel.RecruiterID, email kernel.Email) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   id.String(),
		"email": email.String(),
		"iss":   s.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateAccessToken verifies signature and expiry and extracts the claims
func (s *JWTTokenService) ValidateAccessToken(tokenString string) (*recruiter.Claims, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, recruiter.ErrTokenInvalid().WithDetail("reason", err.Error())
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, recruiter.ErrTokenInvalid()
	}

	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	if sub == "" {
		return nil, recruiter.ErrTokenInvalid().WithDetail("reason", "missing subject")
	}

	claims := &recruiter.Claims{
		RecruiterID: kernel.NewRecruiterID(sub),
		Email:       kernel.Email(email),
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

var _ recruiter.TokenService = (*JWTTokenService)(nil)
