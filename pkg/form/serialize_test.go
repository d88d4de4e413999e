package form_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/schema"
	"github.com/goliatone/go-formdata/pkg/testsupport"
)

func TestToJSON_Golden(t *testing.T) {
	f := registrationForm(t)
	got, err := f.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	goldenPath := filepath.Join("testdata", "registration_form.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, append(got, '\n')) {
		return
	}
	want := testsupport.MustReadGolden(t, goldenPath)

	if diff := testsupport.CompareJSON(t, want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Equal(bytes.TrimSpace(want), got) {
		t.Fatalf("expected byte-identical rendering:\n%s", got)
	}
}

func TestSerialize_ConformsToSchema(t *testing.T) {
	f := registrationForm(t)
	value, err := f.ToMap()
	if err != nil {
		t.Fatalf("to map: %v", err)
	}
	if result := schema.Validate(value); !result.Valid {
		t.Fatalf("expected schema conformance, got %#v", result.Issues)
	}
}

func TestToJSON_Idempotent(t *testing.T) {
	f := registrationForm(t)
	first, err := f.ToJSON()
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := f.ToJSON()
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("serializer is not idempotent")
	}
	if f.String() != string(first) {
		t.Fatalf("String() differs from ToJSON()")
	}
}

func TestToJSON_DoesNotEscapeHTML(t *testing.T) {
	f := registrationForm(t)
	data, err := f.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if !bytes.Contains(data, []byte(`"Food & Cooking"`)) {
		t.Fatalf("expected literal ampersand in output")
	}
}

func TestSerialize_RegistrationExample(t *testing.T) {
	f, err := form.New("registration_form", form.MethodPost, "/submit")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := f.AddInput("username", form.InputText, form.InputConfig{Required: true}); err != nil {
		t.Fatalf("username: %v", err)
	}
	if err := f.AddInput("password", form.InputPassword, form.InputConfig{Required: true}); err != nil {
		t.Fatalf("password: %v", err)
	}
	if err := f.AddEmailInput("email", form.InputConfig{Required: true}); err != nil {
		t.Fatalf("email: %v", err)
	}

	out, err := f.ToMap()
	if err != nil {
		t.Fatalf("to map: %v", err)
	}
	body := out["form"].(map[string]any)
	header := body["form_header"].(map[string]any)
	if header["method"] != "POST" {
		t.Fatalf("expected POST, got %v", header["method"])
	}
	if _, ok := header["enctype"]; ok {
		t.Fatalf("expected unset enctype to be omitted")
	}

	elements := body["form_element_list"].([]any)
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}
	wantTypes := []string{"text", "password", "email"}
	for i, raw := range elements {
		element := raw.(map[string]any)
		if element["type"] != "input" {
			t.Fatalf("element %d: expected type input, got %v", i, element["type"])
		}
		if element["input_type"] != wantTypes[i] {
			t.Fatalf("element %d: expected %s, got %v", i, wantTypes[i], element["input_type"])
		}
		if element["required"] != true {
			t.Fatalf("element %d: expected required", i)
		}
		for _, key := range []string{"label", "placeholder", "min_length", "pattern"} {
			if _, ok := element[key]; ok {
				t.Fatalf("element %d: expected unset %s to be omitted", i, key)
			}
		}
	}
}

func TestSerialize_NullableFields(t *testing.T) {
	f := newForm(t)
	if err := f.AddSelect("s", form.Choices("a"), form.SelectConfig{}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := f.AddCheckboxGroup("c", form.Choices("a"), form.CheckboxGroupConfig{}); err != nil {
		t.Fatalf("checkbox group: %v", err)
	}

	out, err := f.ToMap()
	if err != nil {
		t.Fatalf("to map: %v", err)
	}
	elements := out["form"].(map[string]any)["form_element_list"].([]any)

	sel := elements[0].(map[string]any)
	if size, ok := sel["size"]; !ok || size != nil {
		t.Fatalf("expected explicit null size, got %v (present=%v)", size, ok)
	}
	group := elements[1].(map[string]any)
	if maxSelect, ok := group["max_select"]; !ok || maxSelect != nil {
		t.Fatalf("expected explicit null max_select, got %v (present=%v)", maxSelect, ok)
	}
	if group["min_select"] != float64(0) {
		t.Fatalf("expected min_select 0, got %v", group["min_select"])
	}
}

func TestSerialize_EmptyForm(t *testing.T) {
	f := newForm(t)
	data, err := f.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if !bytes.Contains(data, []byte(`"form_element_list": []`)) {
		t.Fatalf("expected empty element array, got:\n%s", data)
	}
	if result := schema.ValidateJSON(data); !result.Valid {
		t.Fatalf("empty form does not conform: %#v", result.Issues)
	}
}

func TestSerialize_OptionShapes(t *testing.T) {
	f := newForm(t)
	options := []form.Option{form.Choice("plain"), form.NewOption("v", "Label")}
	if err := f.AddSelect("mixed", options, form.SelectConfig{}); err != nil {
		t.Fatalf("select: %v", err)
	}
	data, err := f.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(data, []byte(`"options":["plain",{"value":"v","label":"Label"}]`)) {
		t.Fatalf("unexpected option encoding: %s", data)
	}
}

// Any sequence of successful builder calls must serialize to a conforming
// document with elements in call order.
func TestSerialize_RandomBuildsConform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputTypes := form.InputTypes()

	optionsFor := func() []form.Option {
		n := 1 + rng.Intn(4)
		out := make([]form.Option, n)
		for i := range out {
			if rng.Intn(2) == 0 {
				out[i] = form.Choice(fmt.Sprintf("choice-%d", i))
			} else {
				out[i] = form.NewOption(fmt.Sprintf("v%d", i), fmt.Sprintf("Label %d", i))
			}
		}
		return out
	}
	optionalInt := func(min int) *int {
		if rng.Intn(2) == 0 {
			return nil
		}
		return form.Int(min + rng.Intn(10))
	}

	for run := 0; run < 50; run++ {
		method := []form.Method{"get", "POST", "Post"}[rng.Intn(3)]
		f, err := form.New(fmt.Sprintf("form-%d", run), method, "/action")
		if err != nil {
			t.Fatalf("run %d: new: %v", run, err)
		}

		var names []string
		for i := 0; i < 1+rng.Intn(8); i++ {
			name := fmt.Sprintf("field_%d", i)
			var err error
			switch rng.Intn(7) {
			case 0:
				err = f.AddInput(name, inputTypes[rng.Intn(len(inputTypes))], form.InputConfig{
					Required: rng.Intn(2) == 0, MinLength: optionalInt(0), MaxLength: optionalInt(0), Pattern: "[a-z]+",
				})
			case 1:
				err = f.AddEmailInput(name, form.InputConfig{Multiple: rng.Intn(2) == 0, Placeholder: "a@b.c"})
			case 2:
				err = f.AddSelect(name, optionsFor(), form.SelectConfig{Multiple: rng.Intn(2) == 0, Size: optionalInt(1)})
			case 3:
				err = f.AddTextarea(name, form.TextareaConfig{Rows: optionalInt(1), Cols: optionalInt(1), Value: "text"})
			case 4:
				minSelect := rng.Intn(3)
				var maxSelect *int
				if rng.Intn(2) == 0 {
					maxSelect = form.Int(minSelect + rng.Intn(3))
				}
				err = f.AddCheckboxGroup(name, optionsFor(), form.CheckboxGroupConfig{MinSelect: minSelect, MaxSelect: maxSelect})
			case 5:
				err = f.AddRadioGroup(name, optionsFor(), form.RadioGroupConfig{DefaultValue: "v0"})
			case 6:
				err = f.AddDatalist(name, optionsFor(), form.DatalistConfig{Label: "List"})
			}
			if err != nil {
				t.Fatalf("run %d: add %s: %v", run, name, err)
			}
			names = append(names, name)
		}

		value, err := f.ToMap()
		if err != nil {
			t.Fatalf("run %d: to map: %v", run, err)
		}
		if result := schema.Validate(value); !result.Valid {
			t.Fatalf("run %d: schema issues: %#v", run, result.Issues)
		}
		elements := value["form"].(map[string]any)["form_element_list"].([]any)
		for i, raw := range elements {
			if got := raw.(map[string]any)["name"]; got != names[i] {
				t.Fatalf("run %d: element %d: expected %s, got %v", run, i, names[i], got)
			}
		}
	}
}
