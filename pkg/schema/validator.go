package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrNonConforming is wrapped by every ValidationError.
var ErrNonConforming = errors.New("schema: document does not conform")

// Issue describes a single schema violation. Path is a JSON pointer into the
// validated value and Field the same location in dotted form.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of a validation run.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Issues: append([]Issue(nil), r.Issues...)}
}

// ValidationError reports a value that failed schema validation.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrNonConforming.Error()
	}
	first := e.Issues[0]
	msg := first.Message
	if first.Field != "" {
		msg = first.Field + ": " + msg
	}
	if extra := len(e.Issues) - 1; extra > 0 {
		return fmt.Sprintf("%s: %s (and %d more)", ErrNonConforming.Error(), msg, extra)
	}
	return fmt.Sprintf("%s: %s", ErrNonConforming.Error(), msg)
}

func (e *ValidationError) Unwrap() error { return ErrNonConforming }

// Validator checks decoded JSON values against a compiled schema document.
// A Validator is read-only once built and safe for concurrent use.
type Validator struct {
	root *openapi3.Schema
}

// NewValidator compiles the schema carried by doc.
func NewValidator(doc Document) (*Validator, error) {
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("schema: validator requires a document")
	}
	root := &openapi3.Schema{}
	if err := json.Unmarshal(raw, root); err != nil {
		return nil, fmt.Errorf("schema: decode %s: %w", doc.Location(), err)
	}
	return &Validator{root: root}, nil
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns the validator for the bundled schema.
func Default() *Validator {
	defaultOnce.Do(func() {
		v, err := NewValidator(Embedded())
		if err != nil {
			// The bundled schema is covered by tests; failing here is a build defect.
			panic(err)
		}
		defaultValidator = v
	})
	return defaultValidator
}

// Validate checks a value shaped like the output of encoding/json decoding
// into an any (maps, slices, float64, string, bool, nil).
func (v *Validator) Validate(value any) Result {
	if v == nil || v.root == nil {
		return Result{Issues: []Issue{{Message: "validator is not configured"}}}
	}
	err := v.root.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return Result{Valid: true}
	}
	return Result{Issues: collectIssues(err, nil)}
}

// ValidateJSON decodes data and validates the result.
func (v *Validator) ValidateJSON(data []byte) Result {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return Result{Issues: []Issue{{Message: "invalid JSON: " + err.Error()}}}
	}
	return v.Validate(value)
}

// Validate checks value against the bundled schema.
func Validate(value any) Result {
	return Default().Validate(value)
}

// ValidateJSON checks a JSON payload against the bundled schema.
func ValidateJSON(data []byte) Result {
	return Default().ValidateJSON(data)
}

func collectIssues(err error, out []Issue) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, nested := range multi {
			out = collectIssues(nested, out)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		pointer := joinPointer(schemaErr.JSONPointer())
		return append(out, Issue{
			Path:    pointer,
			Field:   fieldPathFromPointer(pointer),
			Message: strings.TrimSpace(schemaErr.Reason),
		})
	}

	return append(out, Issue{Message: strings.TrimSpace(err.Error())})
}

func joinPointer(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		segment = strings.ReplaceAll(segment, "~", "~0")
		escaped[i] = strings.ReplaceAll(segment, "/", "~1")
	}
	return "/" + strings.Join(escaped, "/")
}

// fieldPathFromPointer turns /form/form_element_list/0/name into
// form.form_element_list[0].name.
func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(trimmed, "/") {
		segment := strings.ReplaceAll(part, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		if segment == "" {
			continue
		}
		if isNumeric(segment) {
			b.WriteString("[" + segment + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(segment)
	}
	return b.String()
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
