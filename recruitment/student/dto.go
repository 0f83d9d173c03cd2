package student

// AddStudentRequest - DTO for adding a candidate profile directly
type AddStudentRequest struct {
	Name    string   `json:"name" validate:"required"`
	Email   string   `json:"email" validate:"required,email"`
	Resume  string   `json:"resume" validate:"required"`
	Summary string   `json:"summary"`
	Skills  []string `json:"skills"`
}

// DeleteStudentRequest - DTO for removing a candidate profile
type DeleteStudentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

// StudentResponse wraps a single student mutation result
type StudentResponse struct {
	Message string   `json:"message"`
	Student *Student `json:"student,omitempty"`
	Success bool     `json:"success"`
}
