// Package testsupport holds golden-file helpers shared by package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdata/pkg/form"
)

// MustReadGolden reads a fixture and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden rewrites a golden file when UPDATE_GOLDENS is set and
// reports whether it did, in which case the test should return early.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareJSON decodes both payloads and diffs the resulting trees, so
// whitespace differences do not count.
func CompareJSON(t *testing.T, want, got []byte) string {
	t.Helper()
	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		t.Fatalf("decode want: %v", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("decode got: %v", err)
	}
	return cmp.Diff(wantValue, gotValue)
}

// MustLoadForm parses a form fixture (JSON or YAML).
func MustLoadForm(t *testing.T, path string) *form.FormData {
	t.Helper()
	f, err := form.Parse(MustReadGolden(t, path))
	if err != nil {
		t.Fatalf("load form %s: %v", path, err)
	}
	return f
}
