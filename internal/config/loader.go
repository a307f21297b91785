package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "INVALID"
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file failed: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported format %s", format)
	}
}

// Parse decodes a document over the defaults of the preset it names, then validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	var head struct {
		Preset string `json:"preset" yaml:"preset"`
	}
	if err := unmarshal(data, format, &head); err != nil {
		return nil, fmt.Errorf("parsing %s failed: %w", format, err)
	}
	if head.Preset == "" {
		head.Preset = DefaultPreset
	}

	c, err := Preset(head.Preset)
	if err != nil {
		return nil, err
	}
	if err := unmarshal(data, format, c); err != nil {
		return nil, fmt.Errorf("parsing %s failed: %w", format, err)
	}
	c.Preset = head.Preset
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
