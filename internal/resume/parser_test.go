package resume

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	return path
}

func TestParseNotFound(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "resume.docx", "binary stuff")

	_, err := Parse(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "resume.yaml", "name: Alice\nskills:\n  - Go\n  - Rust\n")

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expect := "NAME:\n  Alice\n\nSKILLS:\n  - Go\n  - Rust"
	if got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestParseYAMLUppercaseExtension(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "resume.YML", "name: Bob\n")

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got != "NAME:\n  Bob" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "resume.json", `{"name": "Alice", "work_experience": [{"company": "Acme", "title": "Engineer"}]}`)

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expect := "NAME:\n  Alice\n\nWORK EXPERIENCE:\n  -     company: Acme\n    title: Engineer"
	if got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestParseTextVerbatim(t *testing.T) {
	t.Parallel()

	content := "Alice Smith\n\nEngineer at Acme\n  - Go, Rust\n"
	path := writeFile(t, "resume.txt", content)

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got != content {
		t.Fatalf("expected verbatim content %q, got %q", content, got)
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "resume.yaml", "summary: Engineer\nskills:\n  - Go\nexperience:\n  acme:\n    years: 3\n")

	first, err := Parse(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := Parse(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first != second {
		t.Fatalf("expected identical output across runs:\n%q\n%q", first, second)
	}
}

func TestParsePDFMalformed(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "resume.pdf", "not really a pdf")

	_, err := Parse(path)
	if err == nil {
		t.Fatal("expected an extraction error for malformed pdf")
	}
}
