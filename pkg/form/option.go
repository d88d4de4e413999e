package form

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is one entry of a select, group, or datalist. Options built with
// Choice serialize as a bare string; all others serialize as a value/label
// object.
type Option struct {
	Value string
	Label string
	plain bool
}

// Choice returns an option whose label equals its value.
func Choice(value string) Option {
	return Option{Value: value, Label: value, plain: true}
}

// Choices converts a list of plain strings into options.
func Choices(values ...string) []Option {
	out := make([]Option, len(values))
	for i, value := range values {
		out[i] = Choice(value)
	}
	return out
}

// NewOption returns a value/label option.
func NewOption(value, label string) Option {
	return Option{Value: value, Label: label}
}

// Plain reports whether the option serializes as a bare string.
func (o Option) Plain() bool {
	return o.plain
}

type optionObject struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MarshalJSON implements json.Marshaler.
func (o Option) MarshalJSON() ([]byte, error) {
	if o.plain {
		return encode(o.Value)
	}
	return encode(optionObject{Value: o.Value, Label: o.Label})
}

// UnmarshalJSON accepts either a string or a {"value","label"} object.
func (o *Option) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*o = Choice(value)
		return nil
	}
	var obj optionObject
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("form: option must be a string or value/label object: %w", err)
	}
	*o = NewOption(obj.Value, obj.Label)
	return nil
}

func cloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	return append([]Option{}, options...)
}
