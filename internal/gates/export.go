package gates

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
)

// MarshalYAML renders the store as a YAML mapping of section name to a
// mapping of flag name to bool. Node trees are used instead of Go maps so
// section and flag order survive.
func MarshalYAML(st *Store) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sec := range st.sections {
		flags := &yaml.Node{Kind: yaml.MappingNode}
		for _, fl := range sec.flags {
			flags.Content = append(flags.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fl.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(fl.Value)},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sec.Name},
			flags,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML reads a document produced by MarshalYAML back into a Store,
// keeping document order. Flag names go through the same normalization and
// checks as AddFlag. Values must be YAML booleans; null and strings are
// rejected.
func UnmarshalYAML(data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	st := NewStore()
	if len(doc.Content) == 0 {
		return st, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of sections at line %d", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i], root.Content[i+1]
		sec, err := st.AddSection(name.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", name.Line, err)
		}
		if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: section %q must be a mapping", body.Line, name.Value)
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, val := body.Content[j], body.Content[j+1]
			var b bool
			if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!bool" {
				return nil, fmt.Errorf("line %d: value of %q is not a boolean", val.Line, key.Value)
			}
			if err := val.Decode(&b); err != nil {
				return nil, fmt.Errorf("line %d: value of %q is not a boolean", val.Line, key.Value)
			}
			if _, err := sec.AddFlag(key.Value, b); err != nil {
				if errors.Is(err, gkerrors.ErrDuplicate) {
					return nil, fmt.Errorf("line %d: duplicate feature gate %q", key.Line, NormalizeName(key.Value))
				}
				return nil, fmt.Errorf("line %d: %w", key.Line, err)
			}
		}
	}
	return st, nil
}
