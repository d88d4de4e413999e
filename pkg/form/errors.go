package form

import (
	"errors"
	"fmt"
)

// Error categories. Every builder failure wraps exactly one of them so callers
// can branch on the class of mistake with errors.Is.
var (
	ErrInvalidEnumValue     = errors.New("invalid enum value")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidNumericRange  = errors.New("invalid numeric range")
	ErrEmptyCollection      = errors.New("empty collection")
)

// Specific failures, each wrapping its category.
var (
	ErrInvalidMethod      = fmt.Errorf("%w: method must be GET or POST", ErrInvalidEnumValue)
	ErrInvalidInputType   = fmt.Errorf("%w: unsupported input_type", ErrInvalidEnumValue)
	ErrInvalidElementType = fmt.Errorf("%w: unsupported element type", ErrInvalidEnumValue)

	ErrMissingFormID  = fmt.Errorf("%w: form_id", ErrMissingRequiredField)
	ErrMissingName    = fmt.Errorf("%w: name", ErrMissingRequiredField)
	ErrMissingOptions = fmt.Errorf("%w: options", ErrMissingRequiredField)

	ErrInvalidLength      = fmt.Errorf("%w: length bounds must be non-negative", ErrInvalidNumericRange)
	ErrInvalidSize        = fmt.Errorf("%w: size must be positive", ErrInvalidNumericRange)
	ErrInvalidDimension   = fmt.Errorf("%w: rows and cols must be positive", ErrInvalidNumericRange)
	ErrNotWholeNumber     = fmt.Errorf("%w: value must be a whole number", ErrInvalidNumericRange)
	ErrInvalidSelectRange = fmt.Errorf("%w: select bounds must be non-negative and max_select >= min_select", ErrInvalidNumericRange)

	ErrEmptyOptions = fmt.Errorf("%w: options must not be empty", ErrEmptyCollection)
)

// ErrDecode is wrapped by Parse when the payload is not JSON or YAML.
var ErrDecode = errors.New("form: decode failed")

// FieldError reports the builder call and attribute that rejected its input.
type FieldError struct {
	Op    string // builder operation, e.g. "AddInput"
	Name  string // element name, empty for header errors
	Field string // offending attribute
	Value any    // rejected value, nil when the attribute was missing
	Err   error  // one of the Err* sentinels above
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	target := e.Op
	if e.Name != "" {
		target = fmt.Sprintf("%s %q", e.Op, e.Name)
	}
	if e.Value != nil {
		return fmt.Sprintf("form: %s: %s=%v: %v", target, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("form: %s: %s: %v", target, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func fieldError(op, name, field string, value any, err error) error {
	return &FieldError{Op: op, Name: name, Field: field, Value: value, Err: err}
}
