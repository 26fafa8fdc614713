package resume

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind enumerates the shapes a decoded resume value can take.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
)

// Value is a generic decoded resume node. Mapping pairs keep the document
// order, so flattening the same input twice yields byte-identical text.
type Value struct {
	Kind   Kind
	Pairs  []Pair
	Items  []*Value
	Scalar string
}

// Pair is a single mapping entry.
type Pair struct {
	Key   string
	Value *Value
}

func valueFromYAML(node *yaml.Node) (*Value, error) {
	if node == nil {
		return &Value{Kind: KindScalar}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return &Value{Kind: KindScalar}, nil
		}
		return valueFromYAML(node.Content[0])
	case yaml.AliasNode:
		return valueFromYAML(node.Alias)
	case yaml.MappingNode:
		v := &Value{Kind: KindMapping}
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := valueFromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			v.Pairs = append(v.Pairs, Pair{Key: node.Content[i].Value, Value: val})
		}
		return v, nil
	case yaml.SequenceNode:
		v := &Value{Kind: KindSequence}
		for _, item := range node.Content {
			val, err := valueFromYAML(item)
			if err != nil {
				return nil, err
			}
			v.Items = append(v.Items, val)
		}
		return v, nil
	case yaml.ScalarNode:
		return &Value{Kind: KindScalar, Scalar: node.Value}, nil
	default:
		return nil, fmt.Errorf("unexpected yaml node kind: %d", node.Kind)
	}
}

// valueFromJSON consumes exactly one JSON value from the decoder. The token
// walk keeps object keys in document order, which a plain map decode loses.
func valueFromJSON(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := &Value{Kind: KindMapping}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token: %v", keyTok)
				}
				val, err := valueFromJSON(dec)
				if err != nil {
					return nil, err
				}
				v.Pairs = append(v.Pairs, Pair{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return v, nil
		case '[':
			v := &Value{Kind: KindSequence}
			for dec.More() {
				val, err := valueFromJSON(dec)
				if err != nil {
					return nil, err
				}
				v.Items = append(v.Items, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return v, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter: %v", t)
		}
	case string:
		return &Value{Kind: KindScalar, Scalar: t}, nil
	case json.Number:
		return &Value{Kind: KindScalar, Scalar: t.String()}, nil
	case bool:
		return &Value{Kind: KindScalar, Scalar: strconv.FormatBool(t)}, nil
	case nil:
		return &Value{Kind: KindScalar, Scalar: "null"}, nil
	default:
		return nil, fmt.Errorf("unexpected json token: %v", tok)
	}
}

func decodeYAML(r io.Reader) (*Value, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return &Value{Kind: KindScalar}, nil
		}
		return nil, err
	}
	return valueFromYAML(&node)
}

func decodeJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return valueFromJSON(dec)
}

// Flatten renders a decoded resume into indented plain text. Each top-level
// key becomes a section header (upper-cased, underscores replaced with
// spaces) preceded by a blank line; nested values indent two spaces per
// level and sequence elements get a dash prefix.
func Flatten(v *Value) string {
	if v == nil || v.Kind != KindMapping {
		return ""
	}

	var b strings.Builder
	for _, p := range v.Pairs {
		header := strings.ToUpper(strings.ReplaceAll(p.Key, "_", " "))
		b.WriteString("\n")
		b.WriteString(header)
		b.WriteString(":\n")
		writeValue(&b, p.Value, 1)
	}

	return strings.TrimSpace(b.String())
}

func writeValue(b *strings.Builder, v *Value, depth int) {
	if v == nil {
		return
	}

	indent := strings.Repeat("  ", depth)

	switch v.Kind {
	case KindMapping:
		for _, p := range v.Pairs {
			b.WriteString(indent)
			b.WriteString(p.Key)
			b.WriteString(": ")
			if p.Value != nil && p.Value.Kind == KindScalar {
				b.WriteString(p.Value.Scalar)
				b.WriteString("\n")
				continue
			}
			b.WriteString("\n")
			writeValue(b, p.Value, depth+1)
		}
	case KindSequence:
		for _, item := range v.Items {
			b.WriteString(indent)
			b.WriteString("- ")
			if item.Kind == KindScalar {
				b.WriteString(item.Scalar)
				b.WriteString("\n")
				continue
			}
			writeValue(b, item, depth+1)
		}
	default:
		b.WriteString(indent)
		b.WriteString(v.Scalar)
		b.WriteString("\n")
	}
}
