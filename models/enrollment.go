package models

// EnrollmentJob is one unit of background work: grant course access on the
// learning platform for a verified payment.
type EnrollmentJob struct {
	Email     string
	Name      string
	Phone     string
	CourseID  string
	PaymentID string
}

// StepResult records one Graphy API call: whether it succeeded, the raw
// decoded response, and the extracted error message on failure.
type StepResult struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// EnrollmentResult aggregates the create-learner and assign-course steps.
// Overall success is CourseAssigned alone: a pre-existing learner shows up
// as LearnerCreated=false with CourseAssigned=true.
type EnrollmentResult struct {
	LearnerCreated  bool       `json:"learner_created"`
	CourseAssigned  bool       `json:"course_assigned"`
	LearnerResponse StepResult `json:"learner_response"`
	AssignResponse  StepResult `json:"assign_response"`
}
