package form_test

import (
	"testing"

	"github.com/goliatone/go-formdata/pkg/form"
)

// registrationForm exercises every element variant.
func registrationForm(t *testing.T) *form.FormData {
	t.Helper()

	f, err := form.New("registration_form", "post", "/register", form.WithEnctype("multipart/form-data"))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	steps := []func() error{
		func() error {
			return f.AddInput("username", form.InputText, form.InputConfig{
				Required: true, Label: "Username", MinLength: form.Int(3), MaxLength: form.Int(30),
			})
		},
		func() error {
			return f.AddEmailInput("email", form.InputConfig{
				Required: true, Label: "Email Address", Placeholder: "you@example.com",
			})
		},
		func() error {
			return f.AddInput("password", form.InputPassword, form.InputConfig{
				Required: true, Label: "Password", MinLength: form.Int(8),
			})
		},
		func() error {
			return f.AddInput("birth_date", form.InputDate, form.InputConfig{Required: true, Label: "Date of Birth"})
		},
		func() error {
			return f.AddInput("phone", form.InputTel, form.InputConfig{
				Label: "Phone Number", Pattern: "[0-9]{3}-[0-9]{3}-[0-9]{4}",
			})
		},
		func() error {
			return f.AddDatalist("country", form.Choices("United States", "Canada", "Japan"), form.DatalistConfig{
				Required: true, Label: "Country",
			})
		},
		func() error {
			return f.AddCheckboxGroup("interests", []form.Option{
				form.NewOption("tech", "Technology"),
				form.NewOption("sports", "Sports"),
				form.NewOption("food", "Food & Cooking"),
			}, form.CheckboxGroupConfig{Required: true, Label: "Interests", MinSelect: 1, MaxSelect: form.Int(3)})
		},
		func() error {
			return f.AddSelect("plan", []form.Option{
				form.NewOption("free", "Free"),
				form.NewOption("pro", "Pro"),
			}, form.SelectConfig{Label: "Plan"})
		},
		func() error {
			return f.AddRadioGroup("contact", []form.Option{
				form.NewOption("email", "Email"),
				form.NewOption("phone", "Phone"),
			}, form.RadioGroupConfig{Required: true, Label: "Preferred contact", DefaultValue: "email"})
		},
		func() error {
			return f.AddTextarea("bio", form.TextareaConfig{Label: "About you", Rows: form.Int(4), Cols: form.Int(40)})
		},
		func() error {
			return f.AddCheckbox("terms", form.CheckboxConfig{Required: true, Label: "I accept the terms"})
		},
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return f
}
