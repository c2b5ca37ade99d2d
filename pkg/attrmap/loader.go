package attrmap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads a Map from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string, opts ...Option) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data, opts...)
	case ".json":
		return FromJSON(data, opts...)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Map.
func FromYAML(data []byte, opts ...Option) (*Map, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m, opts...), nil
}

// FromJSON parses JSON data into a Map.
func FromJSON(data []byte, opts ...Option) (*Map, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return New(m, opts...), nil
}
