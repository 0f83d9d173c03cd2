package notification

// DigestCandidate is one candidate entry in a digest email
type DigestCandidate struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	MatchPercentage float64 `json:"matchPercentage"`
	ResumeURL       string  `json:"resumeUrl"`
}

// SendDigestRequest - DTO for the candidate digest email
type SendDigestRequest struct {
	RecruiterEmail string            `json:"recruiterEmail" validate:"required,email"`
	JobTitle       string            `json:"jobTitle" validate:"required"`
	JobDescription string            `json:"jobDescription" validate:"required"`
	Students       []DigestCandidate `json:"students" validate:"required"`
}

// SendDigestResponse wraps the send result
type SendDigestResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
