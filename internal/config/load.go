package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default values-file name.
const DefaultConfigFilename = "zoneplan.yaml"

// LoadValuesFile reads a YAML values file into a raw variable layer.
// Keys and types are checked later by Resolve, not here.
func LoadValuesFile(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}
	return ParseValues(data)
}

// ParseValues parses YAML data into a raw variable layer.
func ParseValues(data []byte) (Values, error) {
	var values Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if values == nil {
		values = Values{}
	}
	return values, nil
}

// FindConfigFile searches for zoneplan.yaml in the current directory,
// then walks up the directory tree.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("values file %s not found", DefaultConfigFilename)
}

// Save writes a variable layer to a YAML values file.
func Save(values Values, path string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal values: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write values file: %w", err)
	}

	return nil
}
