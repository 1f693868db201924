package dataverse

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a query or retrieve matches no record
	ErrNotFound = errors.New("record not found")

	// ErrOptionNotFound is returned when an option-set label does not exist
	// on the attribute. Callers must not fall back to value 0.
	ErrOptionNotFound = errors.New("option set label not found")
)

// AuthError indicates the CRM rejected our credentials or token. It is
// derived from the upstream 401/403 status code, never from message text.
type AuthError struct {
	StatusCode int
	Detail     string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("crm authorization failed (status %d): %s", e.StatusCode, e.Detail)
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
