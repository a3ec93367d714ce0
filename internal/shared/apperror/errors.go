package apperror

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNotFound is returned by repositories when a record does not exist
var ErrNotFound = errors.New("record not found")

// ValidationError is the single error kind raised when a field value violates its rule.
// Message describes the rule that failed; Details holds every failing field when a
// whole request was validated at once.
type ValidationError struct {
	Field   string            `json:"field,omitempty"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError for a single field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: map[string]string{field: message},
	}
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FromValidation converts ozzo-validation errors into a *ValidationError.
// Field-keyed errors keep all failing fields in Details and use the first
// field (sorted by name) as the headline. Other errors are returned as is.
func FromValidation(field string, err error) error {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return fromFieldErrors(fieldErrs)
	}

	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		return NewValidation(field, ruleErr.Error())
	}

	return err
}

func fromFieldErrors(errs validation.Errors) error {
	if len(errs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(errs))
	for k, e := range errs {
		if e == nil {
			continue
		}
		// Internal errors come from broken rules, not from bad input
		var internal validation.InternalError
		if errors.As(e, &internal) {
			return internal
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	out := &ValidationError{
		Field:   keys[0],
		Details: make(map[string]string, len(keys)),
	}
	for _, k := range keys {
		msg := errs[k].Error()
		// Nested structs report their own field errors, flatten the first one
		var nested *ValidationError
		if converted := FromValidation(k, errs[k]); errors.As(converted, &nested) {
			msg = nested.Message
		}
		out.Details[k] = msg
	}
	out.Message = out.Details[keys[0]]

	return out
}
