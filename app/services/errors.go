package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidPage is returned for a page or limit outside the accepted range.
var ErrInvalidPage = errors.New("invalid pagination parameters")

// ValidationError reports the first field of a post or comment that failed
// validation. Message is safe to return to clients.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// newValidationError converts a validator failure into a ValidationError.
// exceeded is the client message used for length violations.
func newValidationError(err error, exceeded string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	verr := &ValidationError{Field: field, Tag: fe.Tag()}
	switch fe.Tag() {
	case "max":
		verr.Message = exceeded
	case "required":
		verr.Message = field + " is required"
	default:
		verr.Message = field + " is invalid"
	}
	return verr
}
