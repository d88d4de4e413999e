package form

import "strings"

// Header is the form-level metadata. It is built atomically by New, so FormID,
// Method and Action are always set.
type Header struct {
	FormID  string
	Method  Method
	Action  string
	Enctype string
}

// FormData is the aggregate root: one header plus an append-only, ordered
// element list. A FormData is not safe for concurrent mutation; use one
// instance per form-building session.
type FormData struct {
	header   Header
	elements []Element
}

// HeaderOption configures optional header attributes.
type HeaderOption func(*Header)

// WithEnctype sets the form encoding type, e.g. multipart/form-data.
func WithEnctype(enctype string) HeaderOption {
	return func(h *Header) {
		h.Enctype = enctype
	}
}

// New creates an empty form. method is matched case-insensitively and stored
// in upper case.
func New(formID string, method Method, action string, options ...HeaderOption) (*FormData, error) {
	if strings.TrimSpace(formID) == "" {
		return nil, fieldError("New", "", "form_id", nil, ErrMissingFormID)
	}
	canonical, err := ParseMethod(string(method))
	if err != nil {
		return nil, fieldError("New", "", "method", string(method), ErrInvalidMethod)
	}

	header := Header{
		FormID: formID,
		Method: canonical,
		Action: action,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&header)
		}
	}

	return &FormData{header: header}, nil
}

// MustNew panics when New fails. Intended for fixtures and examples.
func MustNew(formID string, method Method, action string, options ...HeaderOption) *FormData {
	f, err := New(formID, method, action, options...)
	if err != nil {
		panic(err)
	}
	return f
}

// Header returns the form header.
func (f *FormData) Header() Header {
	return f.header
}

// Len returns the number of elements added so far.
func (f *FormData) Len() int {
	return len(f.elements)
}

// Elements returns a copy of the element list in insertion order. Mutating
// the returned values does not affect the form.
func (f *FormData) Elements() []Element {
	out := make([]Element, len(f.elements))
	for i, element := range f.elements {
		out[i] = element.clone()
	}
	return out
}

// Element returns a copy of the i-th element.
func (f *FormData) Element(i int) (Element, bool) {
	if i < 0 || i >= len(f.elements) {
		return nil, false
	}
	return f.elements[i].clone(), true
}

func (f *FormData) push(element Element) {
	f.elements = append(f.elements, element.clone())
}
