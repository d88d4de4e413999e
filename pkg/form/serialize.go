package form

import (
	"bytes"
	"encoding/json"
)

// Document is the serialized shape of a form:
// {"form": {"form_header": {...}, "form_element_list": [...]}}.
type Document struct {
	Form Body `json:"form"`
}

// Body holds the header and the ordered element list.
type Body struct {
	Header   HeaderDocument `json:"form_header"`
	Elements []Element      `json:"form_element_list"`
}

// HeaderDocument is the serialized header.
type HeaderDocument struct {
	FormID  string `json:"form_id"`
	Method  Method `json:"method"`
	Action  string `json:"action"`
	Enctype string `json:"enctype,omitempty"`
}

// Serialize returns the document tree for f. The element list is a copy and
// is never nil, so it always encodes as a JSON array.
func (f *FormData) Serialize() Document {
	return Document{
		Form: Body{
			Header: HeaderDocument{
				FormID:  f.header.FormID,
				Method:  f.header.Method,
				Action:  f.header.Action,
				Enctype: f.header.Enctype,
			},
			Elements: f.Elements(),
		},
	}
}

// MarshalJSON implements json.Marshaler.
func (f *FormData) MarshalJSON() ([]byte, error) {
	return encode(f.Serialize())
}

// ToJSON renders the form as two-space indented JSON. Key order is fixed by
// the document structs, so repeated calls on an unchanged form return
// identical bytes.
func (f *FormData) ToJSON() ([]byte, error) {
	return encodeIndent(f.Serialize(), "  ")
}

// ToMap returns the serialized form as generic JSON values, the shape schema
// validators consume.
func (f *FormData) ToMap() (map[string]any, error) {
	data, err := json.Marshal(f.Serialize())
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// String returns the indented JSON rendering.
func (f *FormData) String() string {
	data, err := f.ToJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

type commonDocument struct {
	Name         string `json:"name"`
	Label        string `json:"label,omitempty"`
	Required     bool   `json:"required"`
	Placeholder  string `json:"placeholder,omitempty"`
	Value        string `json:"value,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
}

func commonDoc(c Common) commonDocument {
	return commonDocument(c)
}

type inputDocument struct {
	Type      ElementType `json:"type"`
	InputType InputType   `json:"input_type"`
	commonDocument
	MinLength *int   `json:"min_length,omitempty"`
	MaxLength *int   `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Multiple  bool   `json:"multiple,omitempty"`
	Checked   bool   `json:"checked,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Input) MarshalJSON() ([]byte, error) {
	return encode(inputDocument{
		Type:           TypeInput,
		InputType:      e.InputType,
		commonDocument: commonDoc(e.Common),
		MinLength:      e.MinLength,
		MaxLength:      e.MaxLength,
		Pattern:        e.Pattern,
		Multiple:       e.Multiple,
		Checked:        e.Checked,
	})
}

// size is nullable in the schema and always present for selects.
type selectDocument struct {
	Type ElementType `json:"type"`
	commonDocument
	Multiple bool     `json:"multiple"`
	Size     *int     `json:"size"`
	Options  []Option `json:"options"`
}

// MarshalJSON implements json.Marshaler.
func (e Select) MarshalJSON() ([]byte, error) {
	return encode(selectDocument{
		Type:           TypeSelect,
		commonDocument: commonDoc(e.Common),
		Multiple:       e.Multiple,
		Size:           e.Size,
		Options:        e.Options,
	})
}

type textareaDocument struct {
	Type ElementType `json:"type"`
	commonDocument
	Rows *int `json:"rows,omitempty"`
	Cols *int `json:"cols,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Textarea) MarshalJSON() ([]byte, error) {
	return encode(textareaDocument{
		Type:           TypeTextarea,
		commonDocument: commonDoc(e.Common),
		Rows:           e.Rows,
		Cols:           e.Cols,
	})
}

// max_select is nullable (unbounded) and always present for checkbox groups.
type checkboxGroupDocument struct {
	Type ElementType `json:"type"`
	commonDocument
	MinSelect int      `json:"min_select"`
	MaxSelect *int     `json:"max_select"`
	Options   []Option `json:"options"`
}

// MarshalJSON implements json.Marshaler.
func (e CheckboxGroup) MarshalJSON() ([]byte, error) {
	return encode(checkboxGroupDocument{
		Type:           TypeCheckboxGroup,
		commonDocument: commonDoc(e.Common),
		MinSelect:      e.MinSelect,
		MaxSelect:      e.MaxSelect,
		Options:        e.Options,
	})
}

type optionsDocument struct {
	Type ElementType `json:"type"`
	commonDocument
	Options []Option `json:"options"`
}

// MarshalJSON implements json.Marshaler.
func (e RadioGroup) MarshalJSON() ([]byte, error) {
	return encode(optionsDocument{
		Type:           TypeRadioGroup,
		commonDocument: commonDoc(e.Common),
		Options:        e.Options,
	})
}

// MarshalJSON implements json.Marshaler.
func (e Datalist) MarshalJSON() ([]byte, error) {
	return encode(optionsDocument{
		Type:           TypeDatalist,
		commonDocument: commonDoc(e.Common),
		Options:        e.Options,
	})
}

// encode marshals v without escaping <, > and &, which show up in patterns
// and labels.
func encode(v any) ([]byte, error) {
	return encodeIndent(v, "")
}

func encodeIndent(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
