package form

import "strings"

// InputConfig carries the optional attributes of AddInput and AddEmailInput.
// Zero values mean "not set".
type InputConfig struct {
	Required     bool
	Label        string
	Placeholder  string
	Value        string
	DefaultValue string
	MinLength    *int
	MaxLength    *int
	Pattern      string
	// Multiple allows a comma separated list of addresses on email inputs.
	Multiple bool
	// Checked preselects checkbox and radio inputs.
	Checked bool
}

// CheckboxConfig carries the optional attributes of AddCheckbox.
type CheckboxConfig struct {
	Required bool
	Label    string
	Value    string
	Checked  bool
}

// SelectConfig carries the optional attributes of AddSelect.
type SelectConfig struct {
	Required     bool
	Label        string
	Placeholder  string
	Value        string
	DefaultValue string
	Multiple     bool
	// Size is the number of visible rows; nil leaves it to the browser.
	Size *int
}

// TextareaConfig carries the optional attributes of AddTextarea.
type TextareaConfig struct {
	Required     bool
	Label        string
	Placeholder  string
	Value        string
	DefaultValue string
	Rows         *int
	Cols         *int
}

// CheckboxGroupConfig carries the optional attributes of AddCheckboxGroup.
type CheckboxGroupConfig struct {
	Required     bool
	Label        string
	Placeholder  string
	Value        string
	DefaultValue string
	MinSelect    int
	// MaxSelect nil means unbounded.
	MaxSelect *int
}

// RadioGroupConfig carries the optional attributes of AddRadioGroup.
type RadioGroupConfig struct {
	Required     bool
	Label        string
	Placeholder  string
	Value        string
	DefaultValue string
}

// DatalistConfig carries the optional attributes of AddDatalist.
type DatalistConfig struct {
	Required     bool
	Label        string
	Placeholder  string
	Value        string
	DefaultValue string
}

// AddInput appends an <input> of the given type. It fails with
// ErrInvalidInputType for unknown types and ErrInvalidLength for negative
// length bounds. On failure the form is left unchanged.
func (f *FormData) AddInput(name string, inputType InputType, cfg InputConfig) error {
	const op = "AddInput"
	if err := checkName(op, name); err != nil {
		return err
	}
	if !inputType.Valid() {
		return fieldError(op, name, "input_type", string(inputType), ErrInvalidInputType)
	}
	if cfg.MinLength != nil && *cfg.MinLength < 0 {
		return fieldError(op, name, "min_length", *cfg.MinLength, ErrInvalidLength)
	}
	if cfg.MaxLength != nil && *cfg.MaxLength < 0 {
		return fieldError(op, name, "max_length", *cfg.MaxLength, ErrInvalidLength)
	}

	f.push(Input{
		Common: Common{
			Name:         name,
			Label:        cfg.Label,
			Required:     cfg.Required,
			Placeholder:  cfg.Placeholder,
			Value:        cfg.Value,
			DefaultValue: cfg.DefaultValue,
		},
		InputType: inputType,
		MinLength: cfg.MinLength,
		MaxLength: cfg.MaxLength,
		Pattern:   cfg.Pattern,
		Multiple:  cfg.Multiple,
		Checked:   cfg.Checked,
	})
	return nil
}

// AddEmailInput is AddInput with the type fixed to email.
func (f *FormData) AddEmailInput(name string, cfg InputConfig) error {
	return f.AddInput(name, InputEmail, cfg)
}

// AddCheckbox appends a single checkbox input.
func (f *FormData) AddCheckbox(name string, cfg CheckboxConfig) error {
	return f.AddInput(name, InputCheckbox, InputConfig{
		Required: cfg.Required,
		Label:    cfg.Label,
		Value:    cfg.Value,
		Checked:  cfg.Checked,
	})
}

// AddSelect appends a <select>. options must be non-empty and Size, when
// set, positive.
func (f *FormData) AddSelect(name string, options []Option, cfg SelectConfig) error {
	const op = "AddSelect"
	if err := checkName(op, name); err != nil {
		return err
	}
	if err := checkOptions(op, name, options); err != nil {
		return err
	}
	if cfg.Size != nil && *cfg.Size <= 0 {
		return fieldError(op, name, "size", *cfg.Size, ErrInvalidSize)
	}

	f.push(Select{
		Common: Common{
			Name:         name,
			Label:        cfg.Label,
			Required:     cfg.Required,
			Placeholder:  cfg.Placeholder,
			Value:        cfg.Value,
			DefaultValue: cfg.DefaultValue,
		},
		Options:  options,
		Multiple: cfg.Multiple,
		Size:     cfg.Size,
	})
	return nil
}

// AddTextarea appends a <textarea>. Rows and Cols, when set, must be positive.
func (f *FormData) AddTextarea(name string, cfg TextareaConfig) error {
	const op = "AddTextarea"
	if err := checkName(op, name); err != nil {
		return err
	}
	if cfg.Rows != nil && *cfg.Rows <= 0 {
		return fieldError(op, name, "rows", *cfg.Rows, ErrInvalidDimension)
	}
	if cfg.Cols != nil && *cfg.Cols <= 0 {
		return fieldError(op, name, "cols", *cfg.Cols, ErrInvalidDimension)
	}

	f.push(Textarea{
		Common: Common{
			Name:         name,
			Label:        cfg.Label,
			Required:     cfg.Required,
			Placeholder:  cfg.Placeholder,
			Value:        cfg.Value,
			DefaultValue: cfg.DefaultValue,
		},
		Rows: cfg.Rows,
		Cols: cfg.Cols,
	})
	return nil
}

// AddCheckboxGroup appends a checkbox group. Both bounds must be
// non-negative and MaxSelect, when set, at least MinSelect.
func (f *FormData) AddCheckboxGroup(name string, options []Option, cfg CheckboxGroupConfig) error {
	const op = "AddCheckboxGroup"
	if err := checkName(op, name); err != nil {
		return err
	}
	if err := checkOptions(op, name, options); err != nil {
		return err
	}
	if cfg.MinSelect < 0 {
		return fieldError(op, name, "min_select", cfg.MinSelect, ErrInvalidSelectRange)
	}
	if cfg.MaxSelect != nil && (*cfg.MaxSelect < 0 || *cfg.MaxSelect < cfg.MinSelect) {
		return fieldError(op, name, "max_select", *cfg.MaxSelect, ErrInvalidSelectRange)
	}

	f.push(CheckboxGroup{
		Common: Common{
			Name:         name,
			Label:        cfg.Label,
			Required:     cfg.Required,
			Placeholder:  cfg.Placeholder,
			Value:        cfg.Value,
			DefaultValue: cfg.DefaultValue,
		},
		Options:   options,
		MinSelect: cfg.MinSelect,
		MaxSelect: cfg.MaxSelect,
	})
	return nil
}

// AddRadioGroup appends a radio group. options must be non-empty.
func (f *FormData) AddRadioGroup(name string, options []Option, cfg RadioGroupConfig) error {
	const op = "AddRadioGroup"
	if err := checkName(op, name); err != nil {
		return err
	}
	if err := checkOptions(op, name, options); err != nil {
		return err
	}

	f.push(RadioGroup{
		Common: Common{
			Name:         name,
			Label:        cfg.Label,
			Required:     cfg.Required,
			Placeholder:  cfg.Placeholder,
			Value:        cfg.Value,
			DefaultValue: cfg.DefaultValue,
		},
		Options: options,
	})
	return nil
}

// AddDatalist appends a datalist. options must be non-empty.
func (f *FormData) AddDatalist(name string, options []Option, cfg DatalistConfig) error {
	const op = "AddDatalist"
	if err := checkName(op, name); err != nil {
		return err
	}
	if err := checkOptions(op, name, options); err != nil {
		return err
	}

	f.push(Datalist{
		Common: Common{
			Name:         name,
			Label:        cfg.Label,
			Required:     cfg.Required,
			Placeholder:  cfg.Placeholder,
			Value:        cfg.Value,
			DefaultValue: cfg.DefaultValue,
		},
		Options: options,
	})
	return nil
}

func checkName(op, name string) error {
	if strings.TrimSpace(name) == "" {
		return fieldError(op, "", "name", nil, ErrMissingName)
	}
	return nil
}

// checkOptions separates a nil slice (the caller never supplied options) from
// an empty one.
func checkOptions(op, name string, options []Option) error {
	if options == nil {
		return fieldError(op, name, "options", nil, ErrMissingOptions)
	}
	if len(options) == 0 {
		return fieldError(op, name, "options", nil, ErrEmptyOptions)
	}
	return nil
}
