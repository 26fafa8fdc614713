package resume

import (
	"strings"
	"testing"
)

func TestFlattenSimpleMapping(t *testing.T) {
	t.Parallel()

	value := &Value{
		Kind: KindMapping,
		Pairs: []Pair{
			{Key: "name", Value: &Value{Kind: KindScalar, Scalar: "Alice"}},
			{Key: "skills", Value: &Value{
				Kind: KindSequence,
				Items: []*Value{
					{Kind: KindScalar, Scalar: "Go"},
					{Kind: KindScalar, Scalar: "Rust"},
				},
			}},
		},
	}

	expect := "NAME:\n  Alice\n\nSKILLS:\n  - Go\n  - Rust"
	if got := Flatten(value); got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestFlattenHeaderFormatting(t *testing.T) {
	t.Parallel()

	value := &Value{
		Kind: KindMapping,
		Pairs: []Pair{
			{Key: "work_experience", Value: &Value{Kind: KindScalar, Scalar: "5 years"}},
		},
	}

	got := Flatten(value)
	if !strings.HasPrefix(got, "WORK EXPERIENCE:\n") {
		t.Fatalf("expected underscore replaced and upper-cased header, got %q", got)
	}
}

func TestFlattenNestedMapping(t *testing.T) {
	t.Parallel()

	value := &Value{
		Kind: KindMapping,
		Pairs: []Pair{
			{Key: "contact", Value: &Value{
				Kind: KindMapping,
				Pairs: []Pair{
					{Key: "email", Value: &Value{Kind: KindScalar, Scalar: "a@example.com"}},
					{Key: "links", Value: &Value{
						Kind: KindSequence,
						Items: []*Value{
							{Kind: KindScalar, Scalar: "example.com"},
						},
					}},
				},
			}},
		},
	}

	expect := "CONTACT:\n  email: a@example.com\n  links: \n    - example.com"
	if got := Flatten(value); got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestFlattenBlankLineBetweenSections(t *testing.T) {
	t.Parallel()

	value := &Value{
		Kind: KindMapping,
		Pairs: []Pair{
			{Key: "first", Value: &Value{Kind: KindScalar, Scalar: "1"}},
			{Key: "second", Value: &Value{Kind: KindScalar, Scalar: "2"}},
		},
	}

	// every top-level header after the first is preceded by a blank line
	expect := "FIRST:\n  1\n\nSECOND:\n  2"
	if got := Flatten(value); got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestFlattenNonMappingTopLevel(t *testing.T) {
	t.Parallel()

	value := &Value{Kind: KindSequence, Items: []*Value{{Kind: KindScalar, Scalar: "x"}}}
	if got := Flatten(value); got != "" {
		t.Fatalf("expected empty output for non-mapping top level, got %q", got)
	}
}

func TestDecodeYAMLKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	input := "zeta: 1\nalpha: 2\nmiddle: 3\n"
	value, err := decodeYAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	keys := make([]string, 0, len(value.Pairs))
	for _, p := range value.Pairs {
		keys = append(keys, p.Key)
	}

	if len(keys) != 3 || keys[0] != "zeta" || keys[1] != "alpha" || keys[2] != "middle" {
		t.Fatalf("expected document order, got %v", keys)
	}
}

func TestDecodeJSONKeepsDocumentOrderAndLiterals(t *testing.T) {
	t.Parallel()

	input := `{"zeta": 1.50, "alpha": true, "middle": null, "omega": "done"}`
	value, err := decodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(value.Pairs) != 4 {
		t.Fatalf("expected 4 pairs, got %d", len(value.Pairs))
	}

	if value.Pairs[0].Key != "zeta" || value.Pairs[0].Value.Scalar != "1.50" {
		t.Fatalf("expected literal number preserved, got %q=%q", value.Pairs[0].Key, value.Pairs[0].Value.Scalar)
	}
	if value.Pairs[1].Value.Scalar != "true" {
		t.Fatalf("expected boolean scalar, got %q", value.Pairs[1].Value.Scalar)
	}
	if value.Pairs[2].Value.Scalar != "null" {
		t.Fatalf("expected null scalar, got %q", value.Pairs[2].Value.Scalar)
	}
}
