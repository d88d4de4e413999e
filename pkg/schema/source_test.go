package schema

import "testing"

func TestParseSource(t *testing.T) {
	cases := []struct {
		raw      string
		kind     SourceKind
		location string
	}{
		{raw: "forms/login.json", kind: SourceKindFile, location: "forms/login.json"},
		{raw: "./forms/../forms/login.yaml", kind: SourceKindFile, location: "forms/login.yaml"},
		{raw: "https://example.com/forms/login.json", kind: SourceKindURL, location: "https://example.com/forms/login.json"},
	}
	for _, tc := range cases {
		src := ParseSource(tc.raw)
		if src == nil {
			t.Fatalf("%q: expected source", tc.raw)
		}
		if src.Kind() != tc.kind || src.Location() != tc.location {
			t.Fatalf("%q: got %s %q", tc.raw, src.Kind(), src.Location())
		}
	}
	if ParseSource("") != nil {
		t.Fatalf("expected nil source for blank input")
	}
}

func TestNewDocument(t *testing.T) {
	if _, err := NewDocument(nil, []byte("{}")); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromFS("x.json"), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}

	raw := []byte(`{"a":1}`)
	doc := MustNewDocument(SourceFromFS("x.json"), raw)
	raw[0] = 'X'
	if got := string(doc.Raw()); got != `{"a":1}` {
		t.Fatalf("document shares caller buffer: %s", got)
	}
}

func TestNewDocument_Format(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want Format
	}{
		"json object":   {raw: `  {"form": {}}`, want: FormatJSON},
		"block yaml":    {raw: "form:\n  form_header: {}\n", want: FormatYAML},
		"flow yaml":     {raw: "{form: {form_header: {form_id: x}}}", want: FormatYAML},
		"embedded file": {raw: string(Raw()), want: FormatJSON},
	}
	for name, tc := range cases {
		doc, err := NewDocument(SourceFromFS("form"), []byte(tc.raw))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if doc.Format() != tc.want {
			t.Fatalf("%s: expected %s, got %s", name, tc.want, doc.Format())
		}
		if doc.Len() != len(tc.raw) {
			t.Fatalf("%s: expected len %d, got %d", name, len(tc.raw), doc.Len())
		}
	}

	if _, err := NewDocument(SourceFromFS("blank.yaml"), []byte(" \n\t")); err == nil {
		t.Fatalf("expected error for whitespace-only payload")
	}
}
