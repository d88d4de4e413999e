package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdata/pkg/schema"
)

type rawDocument struct {
	Form struct {
		Header struct {
			FormID  string `json:"form_id"`
			Method  string `json:"method"`
			Action  string `json:"action"`
			Enctype string `json:"enctype"`
		} `json:"form_header"`
		Elements []rawElement `json:"form_element_list"`
	} `json:"form"`
}

// Integer attributes decode as json.Number so whole values written as 3.0
// or 3e0, which the schema accepts as integers, still read as 3.
type rawElement struct {
	Type         string       `json:"type"`
	InputType    string       `json:"input_type"`
	Name         string       `json:"name"`
	Label        string       `json:"label"`
	Required     bool         `json:"required"`
	Placeholder  string       `json:"placeholder"`
	Value        string       `json:"value"`
	DefaultValue string       `json:"default_value"`
	MinLength    *json.Number `json:"min_length"`
	MaxLength    *json.Number `json:"max_length"`
	Pattern      string       `json:"pattern"`
	Multiple     bool         `json:"multiple"`
	Checked      bool         `json:"checked"`
	Size         *json.Number `json:"size"`
	Rows         *json.Number `json:"rows"`
	Cols         *json.Number `json:"cols"`
	MinSelect    *json.Number `json:"min_select"`
	MaxSelect    *json.Number `json:"max_select"`
	Options      []Option     `json:"options"`
}

// Parse reads a serialized form from JSON or YAML. The payload is checked
// against the bundled schema and then replayed through the builder, so a
// parsed form obeys the same rules as one built in code. Lower case methods
// are accepted and canonicalized.
func Parse(data []byte) (*FormData, error) {
	payload, err := toJSON(data)
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(payload, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := schema.Validate(generic).Err(); err != nil {
		return nil, err
	}

	var doc rawDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	header := doc.Form.Header
	f, err := New(header.FormID, Method(header.Method), header.Action, WithEnctype(header.Enctype))
	if err != nil {
		return nil, err
	}
	for i, element := range doc.Form.Elements {
		if err := f.replay(element); err != nil {
			return nil, fmt.Errorf("form: element %d: %w", i, err)
		}
	}
	return f, nil
}

func (f *FormData) replay(e rawElement) error {
	elementType, err := ParseElementType(e.Type)
	if err != nil {
		return fieldError("Parse", e.Name, "type", e.Type, ErrInvalidElementType)
	}

	var minLength, maxLength, size, rows, cols, minSelect, maxSelect *int
	for _, field := range []struct {
		name string
		raw  *json.Number
		dst  **int
	}{
		{"min_length", e.MinLength, &minLength},
		{"max_length", e.MaxLength, &maxLength},
		{"size", e.Size, &size},
		{"rows", e.Rows, &rows},
		{"cols", e.Cols, &cols},
		{"min_select", e.MinSelect, &minSelect},
		{"max_select", e.MaxSelect, &maxSelect},
	} {
		if field.raw == nil {
			continue
		}
		n, ok := wholeNumber(*field.raw)
		if !ok {
			return fieldError("Parse", e.Name, field.name, field.raw.String(), ErrNotWholeNumber)
		}
		*field.dst = Int(n)
	}

	switch elementType {
	case TypeInput:
		return f.AddInput(e.Name, InputType(e.InputType), InputConfig{
			Required:     e.Required,
			Label:        e.Label,
			Placeholder:  e.Placeholder,
			Value:        e.Value,
			DefaultValue: e.DefaultValue,
			MinLength:    minLength,
			MaxLength:    maxLength,
			Pattern:      e.Pattern,
			Multiple:     e.Multiple,
			Checked:      e.Checked,
		})
	case TypeSelect:
		return f.AddSelect(e.Name, e.Options, SelectConfig{
			Required:     e.Required,
			Label:        e.Label,
			Placeholder:  e.Placeholder,
			Value:        e.Value,
			DefaultValue: e.DefaultValue,
			Multiple:     e.Multiple,
			Size:         size,
		})
	case TypeTextarea:
		return f.AddTextarea(e.Name, TextareaConfig{
			Required:     e.Required,
			Label:        e.Label,
			Placeholder:  e.Placeholder,
			Value:        e.Value,
			DefaultValue: e.DefaultValue,
			Rows:         rows,
			Cols:         cols,
		})
	case TypeCheckboxGroup:
		cfg := CheckboxGroupConfig{
			Required:     e.Required,
			Label:        e.Label,
			Placeholder:  e.Placeholder,
			Value:        e.Value,
			DefaultValue: e.DefaultValue,
			MaxSelect:    maxSelect,
		}
		if minSelect != nil {
			cfg.MinSelect = *minSelect
		}
		return f.AddCheckboxGroup(e.Name, e.Options, cfg)
	case TypeRadioGroup:
		return f.AddRadioGroup(e.Name, e.Options, RadioGroupConfig{
			Required:     e.Required,
			Label:        e.Label,
			Placeholder:  e.Placeholder,
			Value:        e.Value,
			DefaultValue: e.DefaultValue,
		})
	case TypeDatalist:
		return f.AddDatalist(e.Name, e.Options, DatalistConfig{
			Required:     e.Required,
			Label:        e.Label,
			Placeholder:  e.Placeholder,
			Value:        e.Value,
			DefaultValue: e.DefaultValue,
		})
	}
	return fieldError("Parse", e.Name, "type", e.Type, ErrInvalidElementType)
}

// wholeNumber reads n as an int when it holds a whole value that fits in
// 32 bits.
func wholeNumber(n json.Number) (int, bool) {
	if v, err := n.Int64(); err == nil {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// toJSON returns data unchanged when it is JSON and converts YAML otherwise.
func toJSON(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrDecode)
	}
	if json.Valid(trimmed) {
		return trimmed, nil
	}

	var value any
	if err := yaml.Unmarshal(trimmed, &value); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON or YAML: %v", ErrDecode, err)
	}
	out, err := json.Marshal(normalizeYAML(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}

// normalizeYAML rewrites map[any]any nodes into map[string]any so the tree
// can be re-encoded as JSON.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeYAML(item)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range v {
			v[i] = normalizeYAML(item)
		}
		return v
	default:
		return value
	}
}
