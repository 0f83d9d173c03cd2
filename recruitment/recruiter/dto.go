package recruiter

// SignupRequest - DTO for recruiter registration
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest - DTO for recruiter login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - DTO returned by signup and login. Login additionally
// carries the bearer token the SPA must present on mutating calls.
type AuthResponse struct {
	Message     string     `json:"message"`
	Recruiter   *Recruiter `json:"recruiter"`
	AccessToken string     `json:"token,omitempty"`
	Success     bool       `json:"success"`
}
