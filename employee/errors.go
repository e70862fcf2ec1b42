package employee

import "errors"

// ErrInvalidArgument is matched by every ValidationError through errors.Is.
var ErrInvalidArgument = errors.New("employee: invalid argument")

const (
	FieldID        = "id"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
)

const (
	RulePositive = "positive"
	RuleNotBlank = "not_blank"
)

const (
	MessageIDNotPositive  = "Employee ID must be positive."
	MessageFirstNameBlank = "First name cannot be empty."
	MessageLastNameBlank  = "Last name cannot be empty."
)

// ValidationError reports the field and rule a supplied value violated.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func newValidationError(field string, rule string, message string) error {
	return &ValidationError{Field: field, Rule: rule, Message: message}
}
