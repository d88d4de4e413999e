// Package formdata builds HTML5 form definitions and serializes them to the
// JSON document described by the bundled schema. The root package wires the
// pieces together; the model lives in pkg/form, the schema and validator in
// pkg/schema, and source loading in pkg/loader.
package formdata

import (
	"context"
	"errors"
	"fmt"

	internalloader "github.com/goliatone/go-formdata/internal/loader"
	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/loader"
	"github.com/goliatone/go-formdata/pkg/schema"
)

// FormData aliases form.FormData for callers that only import the root.
type FormData = form.FormData

// New creates an empty form. See form.New.
func New(formID string, method form.Method, action string, options ...form.HeaderOption) (*FormData, error) {
	return form.New(formID, method, action, options...)
}

// NewLoader constructs a loader while keeping the implementation internal.
func NewLoader(options ...loader.LoaderOption) loader.Loader {
	return internalloader.New(loader.NewLoaderOptions(options...))
}

// Load fetches a JSON or YAML form definition and parses it. A nil loader
// uses NewLoader() with default options, which reads files only.
func Load(ctx context.Context, l loader.Loader, src schema.Source) (*FormData, error) {
	if src == nil {
		return nil, errors.New("formdata: source is required")
	}
	if l == nil {
		l = NewLoader()
	}
	doc, err := l.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("formdata: load %s: %w", src.Location(), err)
	}
	f, err := form.Parse(doc.Raw())
	if err != nil {
		return nil, fmt.Errorf("formdata: parse %s %s: %w", doc.Format(), doc.Location(), err)
	}
	return f, nil
}

// Parse reads a form definition from JSON or YAML bytes. See form.Parse.
func Parse(data []byte) (*FormData, error) {
	return form.Parse(data)
}

// Validate serializes f and checks the result against the bundled schema.
func Validate(f *FormData) schema.Result {
	if f == nil {
		return schema.Result{Issues: []schema.Issue{{Message: "form is nil"}}}
	}
	value, err := f.ToMap()
	if err != nil {
		return schema.Result{Issues: []schema.Issue{{Message: err.Error()}}}
	}
	return schema.Validate(value)
}

// Schema returns the bundled JSON Schema document.
func Schema() []byte {
	return schema.Raw()
}
