package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a fixture file by name from dir and returns its content as JSON
// bytes. Fixtures named *.yaml or *.yml are parsed as YAML and converted to
// JSON so downstream validation sees a single format. Read failures are
// returned unrecovered.
func Load(dir, name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("fixture name cannot be empty")
	}

	path := filepath.Join(dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		// Convert YAML to JSON first so validators only handle one format.
		var y any
		if err := yaml.Unmarshal(raw, &y); err != nil {
			return nil, fmt.Errorf("failed to parse YAML fixture %s: %w", path, err)
		}
		b, err := json.Marshal(y)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML fixture %s to JSON: %w", path, err)
		}
		return b, nil
	default:
		return raw, nil
	}
}
