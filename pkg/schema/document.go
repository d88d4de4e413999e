package schema

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Format names the encoding of a loaded payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is a loaded form definition (or the bundled schema) plus the
// Source it came from. Form definitions arrive as JSON or YAML; the format is
// sniffed once at construction so callers can log or branch on it without
// re-reading the payload.
type Document struct {
	source Source
	format Format
	raw    []byte
}

// NewDocument copies raw and records its origin. Empty payloads are rejected
// because no form definition or schema is ever empty.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Document{}, errors.New("schema: document is empty")
	}
	return Document{
		source: src,
		format: sniffFormat(trimmed),
		raw:    append([]byte(nil), raw...),
	}, nil
}

// MustNewDocument panics if the document cannot be created.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source reports where the payload was loaded from.
func (d Document) Source() Source {
	return d.source
}

// Format reports whether the payload is JSON or YAML.
func (d Document) Format() Format {
	return d.format
}

// Len is the payload size in bytes.
func (d Document) Len() int {
	return len(d.raw)
}

// Raw returns a copy of the payload, ready for form.Parse.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location is the path or URL of the origin, empty for a zero Document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Flow-style YAML can open with a brace too, so only well-formed JSON counts
// as JSON.
func sniffFormat(trimmed []byte) Format {
	if json.Valid(trimmed) {
		return FormatJSON
	}
	return FormatYAML
}
