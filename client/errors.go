package client

import (
	"errors"

	"claritel/claritel_go_admin_service/models"
)

// PersistenceError reports a failed save or load: the local state the
// operation would have applied is kept unchanged and the message is
// suitable for showing to the operator.
type PersistenceError struct {
	Message string
}

func (e *PersistenceError) Error() string {
	return e.Message
}

// IsValidationError reports whether err was raised before any request
// went out, by a local schema or input check.
func IsValidationError(err error) bool {
	var ve *models.ValidationError
	return errors.As(err, &ve)
}

// IsPersistenceError reports whether err came back from the server or
// the transport.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
