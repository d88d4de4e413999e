// Package samples builds the reference forms used by the CLI and examples.
package samples

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formdata/pkg/form"
)

// Builder returns a freshly built sample form.
type Builder func() (*form.FormData, error)

var registry = map[string]Builder{
	"login":        Login,
	"registration": Registration,
	"survey":       Survey,
}

// Names lists the available samples in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the named sample.
func Build(name string) (*form.FormData, error) {
	builder, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("samples: unknown sample %q (available: %v)", name, Names())
	}
	return builder()
}

// Login is a username/password form.
func Login() (*form.FormData, error) {
	f, err := form.New("login_form", form.MethodPost, "/login")
	if err != nil {
		return nil, err
	}
	return run(f,
		func() error {
			return f.AddInput("username", form.InputText, form.InputConfig{
				Required: true, Label: "Username", Placeholder: "Enter your username",
			})
		},
		func() error {
			return f.AddInput("password", form.InputPassword, form.InputConfig{
				Required: true, Label: "Password", Placeholder: "Enter your password",
			})
		},
	)
}

// Registration covers most input types plus a datalist and a checkbox group.
func Registration() (*form.FormData, error) {
	f, err := form.New("registration_form", form.MethodPost, "/register", form.WithEnctype("multipart/form-data"))
	if err != nil {
		return nil, err
	}
	return run(f,
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
			return f.AddInput("full_name", form.InputText, form.InputConfig{Required: true, Label: "Full Name"})
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
			return f.AddDatalist("country", form.Choices(
				"United States", "Canada", "United Kingdom", "Australia", "Germany", "France", "Japan",
			), form.DatalistConfig{Required: true, Label: "Country"})
		},
		func() error {
			return f.AddCheckboxGroup("interests", []form.Option{
				form.NewOption("tech", "Technology"),
				form.NewOption("sports", "Sports"),
				form.NewOption("music", "Music"),
				form.NewOption("travel", "Travel"),
				form.NewOption("food", "Food & Cooking"),
			}, form.CheckboxGroupConfig{Required: true, Label: "Interests", MinSelect: 1, MaxSelect: form.Int(3)})
		},
		func() error {
			return f.AddCheckbox("newsletter", form.CheckboxConfig{Label: "Subscribe to newsletter"})
		},
	)
}

// Survey shows the option-bearing elements and a textarea.
func Survey() (*form.FormData, error) {
	f, err := form.New("survey_form", form.MethodPost, "/survey")
	if err != nil {
		return nil, err
	}
	rating := []form.Option{
		form.NewOption("5", "Very Satisfied"),
		form.NewOption("4", "Satisfied"),
		form.NewOption("3", "Neutral"),
		form.NewOption("2", "Dissatisfied"),
		form.NewOption("1", "Very Dissatisfied"),
	}
	return run(f,
		func() error {
			return f.AddRadioGroup("satisfaction", rating, form.RadioGroupConfig{
				Required: true, Label: "How satisfied are you with our service?",
			})
		},
		func() error {
			return f.AddSelect("improvements", []form.Option{
				form.NewOption("speed", "Faster Service"),
				form.NewOption("quality", "Better Quality"),
				form.NewOption("price", "Lower Prices"),
				form.NewOption("support", "Better Support"),
			}, form.SelectConfig{Label: "What could we improve?", Multiple: true, Size: form.Int(4)})
		},
		func() error {
			return f.AddCheckboxGroup("channels", form.Choices("Email", "Phone", "Chat"), form.CheckboxGroupConfig{
				Label: "How did you contact us?",
			})
		},
		func() error {
			return f.AddTextarea("comments", form.TextareaConfig{
				Label: "Additional Comments", Rows: form.Int(4), Cols: form.Int(50),
				Placeholder: "Please share any additional feedback...",
			})
		},
		func() error {
			return f.AddInput("follow_up", form.InputCheckbox, form.InputConfig{Label: "You may contact me about my feedback"})
		},
	)
}

func run(f *form.FormData, steps ...func() error) (*form.FormData, error) {
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return f, nil
}
