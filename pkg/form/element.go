package form

// Element is one entry of a form's element list. The set of implementations
// is closed: Input, Select, Textarea, CheckboxGroup, RadioGroup, Datalist.
// Use a type switch to reach variant fields.
type Element interface {
	Type() ElementType
	Attrs() Common
	clone() Element
}

// Common holds the attributes every element variant shares.
type Common struct {
	Name         string
	Label        string
	Required     bool
	Placeholder  string
	Value        string
	DefaultValue string
}

// Attrs returns the shared attributes.
func (c Common) Attrs() Common { return c }

// Input is a single <input> element.
type Input struct {
	Common
	InputType InputType
	MinLength *int
	MaxLength *int
	Pattern   string
	Multiple  bool
	Checked   bool
}

func (Input) Type() ElementType { return TypeInput }

func (e Input) clone() Element {
	e.MinLength = cloneInt(e.MinLength)
	e.MaxLength = cloneInt(e.MaxLength)
	return e
}

// Select is a <select> element.
type Select struct {
	Common
	Options  []Option
	Multiple bool
	Size     *int
}

func (Select) Type() ElementType { return TypeSelect }

func (e Select) clone() Element {
	e.Options = cloneOptions(e.Options)
	e.Size = cloneInt(e.Size)
	return e
}

// Textarea is a <textarea> element.
type Textarea struct {
	Common
	Rows *int
	Cols *int
}

func (Textarea) Type() ElementType { return TypeTextarea }

func (e Textarea) clone() Element {
	e.Rows = cloneInt(e.Rows)
	e.Cols = cloneInt(e.Cols)
	return e
}

// CheckboxGroup is a set of checkboxes sharing a name. A nil MaxSelect
// means no upper bound.
type CheckboxGroup struct {
	Common
	Options   []Option
	MinSelect int
	MaxSelect *int
}

func (CheckboxGroup) Type() ElementType { return TypeCheckboxGroup }

func (e CheckboxGroup) clone() Element {
	e.Options = cloneOptions(e.Options)
	e.MaxSelect = cloneInt(e.MaxSelect)
	return e
}

// RadioGroup is a set of radio buttons sharing a name.
type RadioGroup struct {
	Common
	Options []Option
}

func (RadioGroup) Type() ElementType { return TypeRadioGroup }

func (e RadioGroup) clone() Element {
	e.Options = cloneOptions(e.Options)
	return e
}

// Datalist is a text input backed by a list of suggestions.
type Datalist struct {
	Common
	Options []Option
}

func (Datalist) Type() ElementType { return TypeDatalist }

func (e Datalist) clone() Element {
	e.Options = cloneOptions(e.Options)
	return e
}

// Int returns a pointer to v, for the optional numeric attributes.
func Int(v int) *int {
	return &v
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}
