// Package form models HTML5 form definitions in memory and serializes them to
// the JSON document described by the bundled schema (see pkg/schema).
//
// A form is created with New and grown with the Add* builder methods. Each
// call validates its arguments before touching the form, so a failed call
// leaves the element list unchanged and every successful sequence of calls
// serializes to a document that validates against the schema:
//
//	f, err := form.New("registration_form", form.MethodPost, "/submit")
//	if err != nil {
//		return err
//	}
//	_ = f.AddInput("username", form.InputText, form.InputConfig{Required: true})
//	_ = f.AddEmailInput("email", form.InputConfig{Required: true})
//	data, err := f.ToJSON()
//
// Element order is insertion order. Elements cannot be removed or edited
// after they are added.
//
// Builder errors are *FieldError values wrapping one of the Err* sentinels;
// each sentinel in turn wraps a category (ErrInvalidEnumValue,
// ErrMissingRequiredField, ErrInvalidNumericRange, ErrEmptyCollection).
package form
