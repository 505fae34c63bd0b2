package patterns

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile represents a YAML catalog file
type CatalogFile struct {
	Patterns []Entry `yaml:"patterns"`
}

// LoadCatalog loads a vocabulary from a YAML file, replacing the built-in one.
// An empty path returns the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("catalog %s defines no patterns", path)
	}

	for i, e := range file.Patterns {
		if e.Pattern == "" {
			return nil, fmt.Errorf("catalog %s: entry %d has no pattern", path, i+1)
		}
		if !e.IsLightMapToggle() {
			if err := ValidatePattern(e.Pattern); err != nil {
				return nil, fmt.Errorf("catalog %s: %w", path, err)
			}
		}
	}

	return NewCatalog(file.Patterns), nil
}
