package formdata_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	formdata "github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/loader"
	"github.com/goliatone/go-formdata/pkg/schema"
)

func TestNewAndValidate(t *testing.T) {
	f, err := formdata.New("login_form", "post", "/login")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := f.AddInput("username", form.InputText, form.InputConfig{Required: true, Label: "Username"}); err != nil {
		t.Fatalf("add username: %v", err)
	}
	if err := f.AddInput("password", form.InputPassword, form.InputConfig{Required: true, Label: "Password"}); err != nil {
		t.Fatalf("add password: %v", err)
	}
	if result := formdata.Validate(f); !result.Valid {
		t.Fatalf("expected conforming form, got %#v", result.Issues)
	}
	if result := formdata.Validate(nil); result.Valid {
		t.Fatalf("expected nil form to be invalid")
	}
}

func TestLoad_FromFS(t *testing.T) {
	files := fstest.MapFS{
		"forms/contact.yaml": &fstest.MapFile{Data: []byte(`
form:
  form_header: {form_id: contact, method: POST, action: /contact}
  form_element_list:
    - {type: input, input_type: email, name: email, required: true}
    - {type: textarea, name: message, rows: 6}
`)},
	}
	l := formdata.NewLoader(loader.WithFileSystem(files))

	f, err := formdata.Load(context.Background(), l, schema.SourceFromFS("forms/contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Header().FormID != "contact" || f.Len() != 2 {
		t.Fatalf("unexpected form: %s", f)
	}
}

func TestLoad_ReportsSchemaErrors(t *testing.T) {
	files := fstest.MapFS{
		"bad.json": &fstest.MapFile{Data: []byte(`{"form":{"form_header":{"form_id":"x","method":"PUT","action":"/"},"form_element_list":[]}}`)},
	}
	l := formdata.NewLoader(loader.WithFileSystem(files))
	_, err := formdata.Load(context.Background(), l, schema.SourceFromFS("bad.json"))
	if !errors.Is(err, schema.ErrNonConforming) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if !strings.Contains(err.Error(), "parse json bad.json") {
		t.Fatalf("expected format and location in error, got %v", err)
	}
}

func TestLoad_RequiresSource(t *testing.T) {
	if _, err := formdata.Load(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestSchemaIsBundled(t *testing.T) {
	if len(formdata.Schema()) == 0 {
		t.Fatalf("expected bundled schema")
	}
}
