package models

// ValidationError is raised locally, before any persistence call, for
// malformed column sets or empty required inputs. It is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
