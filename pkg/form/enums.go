package form

import (
	"fmt"
	"strings"
)

// Method is the HTTP method a form submits with.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod accepts GET or POST in any letter case and returns the upper
// case form.
func ParseMethod(raw string) (Method, error) {
	switch Method(strings.ToUpper(strings.TrimSpace(raw))) {
	case MethodGet:
		return MethodGet, nil
	case MethodPost:
		return MethodPost, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, raw)
	}
}

// InputType enumerates the input element types the schema allows.
type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
	InputEmail    InputType = "email"
	InputNumber   InputType = "number"
	InputDate     InputType = "date"
	InputTel      InputType = "tel"
	InputCheckbox InputType = "checkbox"
	InputRadio    InputType = "radio"
)

var inputTypes = []InputType{
	InputText, InputPassword, InputEmail, InputNumber,
	InputDate, InputTel, InputCheckbox, InputRadio,
}

// InputTypes returns every supported input type in schema order.
func InputTypes() []InputType {
	return append([]InputType(nil), inputTypes...)
}

// Valid reports whether t is one of the supported input types.
func (t InputType) Valid() bool {
	for _, candidate := range inputTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

// ParseInputType matches raw exactly; input types are lower case in HTML.
func ParseInputType(raw string) (InputType, error) {
	t := InputType(raw)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidInputType, raw)
	}
	return t, nil
}

// ElementType tags each form element variant.
type ElementType string

const (
	TypeInput         ElementType = "input"
	TypeSelect        ElementType = "select"
	TypeTextarea      ElementType = "textarea"
	TypeCheckboxGroup ElementType = "checkbox_group"
	TypeRadioGroup    ElementType = "radio_group"
	TypeDatalist      ElementType = "datalist"
)

var elementTypes = []ElementType{
	TypeInput, TypeSelect, TypeTextarea,
	TypeCheckboxGroup, TypeRadioGroup, TypeDatalist,
}

// ElementTypes returns every element type in schema order.
func ElementTypes() []ElementType {
	return append([]ElementType(nil), elementTypes...)
}

// Valid reports whether t is a known element type.
func (t ElementType) Valid() bool {
	for _, candidate := range elementTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

// HasOptions reports whether elements of this type must carry options.
func (t ElementType) HasOptions() bool {
	switch t {
	case TypeSelect, TypeCheckboxGroup, TypeRadioGroup, TypeDatalist:
		return true
	default:
		return false
	}
}

// ParseElementType matches raw exactly against the known element types.
func ParseElementType(raw string) (ElementType, error) {
	t := ElementType(raw)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidElementType, raw)
	}
	return t, nil
}
