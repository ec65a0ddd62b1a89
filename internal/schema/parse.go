package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization format of a schema document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath derives the [Format] from a file extension. Anything that is
// not a YAML extension is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses a schema document from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a schema document into a [Config]. The top-level keys are the
// camelCase identifiers of the well-known directories, any other key is
// rejected, as are unknown fields within the nested items. Field names are
// matched case-sensitively in both formats, and file and directory names must
// be strings. A null value leaves the respective [Kind] unconfigured.
func Parse(data []byte, format Format) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrConfig, ErrEmptyDocument)
	}

	var raw map[string]*Item
	var err error

	switch format {
	case FormatYAML:
		raw, err = parseYAML(data)
	default:
		raw, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	cfg := NewConfig()

	for key, item := range raw {
		kind, ok := kindFromExternal(key)
		if !ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrConfig, ErrUnknownKind, key)
		}
		cfg.Set(kind, item)
	}

	return cfg, nil
}

func parseJSON(data []byte) (map[string]*Item, error) {
	var raw map[string]*Item

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrConfig)
	}

	// encoding/json folds the case of struct field names, so the field names
	// are checked again on the generic representation.
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for key, value := range generic {
		if err := checkJSONItem(value, key); err != nil {
			return nil, err
		}
	}

	return raw, nil
}

func checkJSONItem(value any, at string) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	for key, val := range obj {
		switch key {
		case fieldOptions:
			opts, _ := val.(map[string]any)
			for opt := range opts {
				if opt != fieldRepair && opt != fieldStrict {
					return fmt.Errorf("%w: unknown field %q in %s.%s", ErrConfig, opt, at, fieldOptions)
				}
			}

		case fieldFiles:

		case fieldDirs:
			dirs, _ := val.(map[string]any)
			for name, sub := range dirs {
				if err := checkJSONItem(sub, at+"."+fieldDirs+"."+name); err != nil {
					return err
				}
			}

		default:
			return fmt.Errorf("%w: unknown field %q in %s", ErrConfig, key, at)
		}
	}

	return nil
}

func parseYAML(data []byte) (map[string]*Item, error) {
	var doc yaml.Node

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrConfig, ErrEmptyDocument)
		}

		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := dec.Decode(&yaml.Node{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: more than one document", ErrConfig)
	}

	if len(doc.Content) > 0 {
		if root := yamlAlias(doc.Content[0]); root.Kind == yaml.MappingNode {
			for i := 1; i < len(root.Content); i += 2 {
				if err := checkYAMLItem(root.Content[i]); err != nil {
					return nil, err
				}
			}
		}
	}

	// [yaml.Node.Decode] does not know about unknown fields, the document is
	// decoded again with a strict decoder.
	var raw map[string]*Item

	strict := yaml.NewDecoder(bytes.NewReader(data))
	strict.KnownFields(true)

	if err := strict.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return raw, nil
}

func checkYAMLItem(node *yaml.Node) error {
	node = yamlAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], yamlAlias(node.Content[i+1])

		switch key.Value {
		case fieldFiles:
			if val.Kind != yaml.SequenceNode {
				continue
			}
			for _, name := range val.Content {
				if err := requireYAMLString(yamlAlias(name)); err != nil {
					return err
				}
			}

		case fieldDirs:
			if val.Kind != yaml.MappingNode {
				continue
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				if err := requireYAMLString(val.Content[j]); err != nil {
					return err
				}
				if err := checkYAMLItem(val.Content[j+1]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func requireYAMLString(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() != "!!str" {
		return fmt.Errorf("%w: %w: %q (%s) at line %d", ErrConfig, ErrNotString, node.Value, node.ShortTag(), node.Line)
	}

	return nil
}

func yamlAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

// MarshalJSON encodes the [Config] as a schema document with camelCase keys.
// Keys are emitted in sorted order, so the encoding is canonical.
func (c *Config) MarshalJSON() ([]byte, error) {
	doc := make(map[string]*Item, c.Len())

	if c != nil {
		for kind, item := range c.items {
			doc[kind.String()] = item
		}
	}

	return json.Marshal(doc) //nolint:wrapcheck
}
