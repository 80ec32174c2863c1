package parser

import (
	"sort"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"github.com/cloudposse/treegen/pkg/tree"
)

var (
	// ErrTopLevelNotMapping is returned when a structured input does not
	// decode to a mapping of names to values at the top level.
	ErrTopLevelNotMapping = errors.New("top-level structure must be a mapping of names to values")

	// ErrUnsupportedValue is returned for values that are neither text
	// (file content) nor a nested mapping (subdirectory).
	ErrUnsupportedValue = errors.New("structure values must be strings or nested mappings")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FromYAML converts a YAML document into a canonical tree. String values
// become files with that content, nested mappings become directories.
// The decode goes through yaml.Node so that sibling order follows the
// document's own key order.
func FromYAML(data []byte) (*tree.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	// An empty or comment-only document decodes to nothing, which is not
	// a mapping.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrTopLevelNotMapping
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, ErrTopLevelNotMapping
	}

	root := tree.NewRoot()
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		child, err := yamlToNode(mapping.Content[i].Value, mapping.Content[i+1])
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
	return root, nil
}

func yamlToNode(name string, value *yaml.Node) (*tree.Node, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return nil, errors.Wrapf(ErrUnsupportedValue, "entry %q has type %s", name, value.Tag)
		}
		content := value.Value
		return tree.NewFile(name, &content), nil
	case yaml.MappingNode:
		dir := tree.NewDir(name)
		for i := 0; i+1 < len(value.Content); i += 2 {
			child, err := yamlToNode(value.Content[i].Value, value.Content[i+1])
			if err != nil {
				return nil, err
			}
			dir.Children = append(dir.Children, child)
		}
		return dir, nil
	case yaml.AliasNode:
		return yamlToNode(name, value.Alias)
	default:
		return nil, errors.Wrapf(ErrUnsupportedValue, "entry %q is a %v node", name, value.Kind)
	}
}

// FromJSON converts a JSON object into a canonical tree. The decoder
// does not preserve key order, so siblings are emitted in lexicographic
// key order.
func FromJSON(data []byte) (*tree.Node, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return mapToTree(m)
}

// FromTOML converts a TOML document into a canonical tree. Siblings are
// emitted in lexicographic key order.
func FromTOML(data []byte) (*tree.Node, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return mapToTree(m)
}

// FromJSON5 converts a JSON5 document into a canonical tree. JSON5
// additionally allows comments, unquoted keys, trailing commas and
// backtick-delimited multi-line literals; literals are dedented and
// rewritten as ordinary strings before decoding. Siblings are emitted in
// lexicographic key order.
func FromJSON5(data []byte) (*tree.Node, error) {
	normalized := quoteLiterals(NormalizeLiterals(string(data)))

	var m map[string]any
	if err := json5.Unmarshal([]byte(normalized), &m); err != nil {
		return nil, err
	}
	return mapToTree(m)
}

func mapToTree(m map[string]any) (*tree.Node, error) {
	root := tree.NewRoot()
	for _, key := range sortedKeys(m) {
		child, err := mapToNode(key, m[key])
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
	return root, nil
}

func mapToNode(name string, value any) (*tree.Node, error) {
	switch v := value.(type) {
	case string:
		return tree.NewFile(name, &v), nil
	case map[string]any:
		dir := tree.NewDir(name)
		for _, key := range sortedKeys(v) {
			child, err := mapToNode(key, v[key])
			if err != nil {
				return nil, err
			}
			dir.Children = append(dir.Children, child)
		}
		return dir, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedValue, "entry %q has type %T", name, value)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
