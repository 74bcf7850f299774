package common

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/billfeed/billfeed/constants"
)

// ValidationError names the offending field so RPC callers can fix input
// without guessing.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

func fail(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ValidationRule checks one field and reports nil when it passes.
type ValidationRule func(fieldName string, value interface{}) *ValidationError

// Validator accumulates rule failures across fields so a request reports
// everything wrong at once instead of one field per round trip.
type Validator struct {
	errors []ValidationError
}

func NewValidator() *Validator {
	return &Validator{}
}

// Field applies each rule to the value, collecting failures.
func (v *Validator) Field(fieldName string, value interface{}, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if e := rule(fieldName, value); e != nil {
			v.errors = append(v.errors, *e)
		}
	}
	return v
}

func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// ErrorMessage joins all collected failures into one line.
func (v *Validator) ErrorMessage() string {
	msgs := make([]string, 0, len(v.errors))
	for _, e := range v.errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateAndReturnError converts collected failures into an
// InvalidArgument status, or nil when everything passed.
func ValidateAndReturnError(v *Validator) error {
	if v.HasErrors() {
		return InvalidArgumentError(v.ErrorMessage())
	}
	return nil
}

// asString coerces string and *string values. Rules that only apply to
// text skip other types instead of failing them.
func asString(value interface{}) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case *string:
		if s != nil {
			return *s, true
		}
	}
	return "", false
}

// Required rejects nil and blank strings.
func Required(fieldName string, value interface{}) *ValidationError {
	if value == nil {
		return fail(fieldName, value, "is required")
	}
	if s, ok := asString(value); ok && strings.TrimSpace(s) == "" {
		return fail(fieldName, value, "is required")
	}
	return nil
}

// MaxLength bounds a string by rune count, not bytes.
func MaxLength(fieldName string, value interface{}, max int) *ValidationError {
	s, ok := asString(value)
	if !ok {
		return nil
	}
	if utf8.RuneCountInString(s) > max {
		return fail(fieldName, value, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

// UUID requires a parseable UUID string.
func UUID(fieldName string, value interface{}) *ValidationError {
	s, ok := value.(string)
	if !ok {
		return fail(fieldName, value, "must be a string")
	}
	if _, err := uuid.Parse(s); err != nil {
		return fail(fieldName, value, "must be a valid UUID")
	}
	return nil
}

// SupportedExtension checks the filename extension against the accepted set.
func SupportedExtension(fieldName string, value interface{}) *ValidationError {
	s, ok := value.(string)
	if !ok {
		return fail(fieldName, value, "must be a string")
	}
	ext := constants.NormalizeExt(filepath.Ext(s))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return fail(fieldName, value, fmt.Sprintf("extension %q is not supported", ext))
	}
	return nil
}
