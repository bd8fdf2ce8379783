package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Persistence errors
	ErrStore                 = fmt.Errorf("store error")
	ErrStudentNotFound       = fmt.Errorf("student not found")
	ErrDuplicateRegistration = fmt.Errorf("registration number already in use")
	ErrMissingID             = fmt.Errorf("student has no identity")

	// Input validation errors
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrInvalidFlag  = fmt.Errorf("invalid flag value")

	ErrServiceUnavailable = fmt.Errorf("service unavailable")
)
